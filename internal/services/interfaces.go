package services

import (
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListParams are the raw, untrusted filter inputs of a listing request.
// Unknown enum values degrade to "all"; page and limit are clamped.
type ListParams struct {
	Type      string
	Category  string
	DateRange string
	Page      int
	Limit     int
}

// RecordInput is the validated payload for recording one transaction.
// Category is a display name; it is resolved (and lazily created) per user.
type RecordInput struct {
	Type        string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// TransactionQueryServiceInterface turns raw filter parameters into one
// correct, paginated page of a user's transactions
type TransactionQueryServiceInterface interface {
	List(userID uuid.UUID, params ListParams) (*models.TransactionPage, error)
}

// TransactionServiceInterface defines transaction write operations and
// category listing
type TransactionServiceInterface interface {
	Record(userID uuid.UUID, input RecordInput) (*models.Transaction, error)
	RecordBatch(userID uuid.UUID, inputs []RecordInput) ([]models.Transaction, error)
	Delete(userID, transactionID uuid.UUID) error
	CategoryNames(userID uuid.UUID) ([]string, error)
}

// AnalyticsServiceInterface computes derived financial views over a user's
// transactions. Every operation is a pure read; empty inputs produce empty
// or zeroed outputs, never errors.
type AnalyticsServiceInterface interface {
	Summary(userID uuid.UUID, dateRange string) (*models.SummaryTotals, error)
	ExpensesByCategory(userID uuid.UUID, dateRange string) ([]models.CategoryExpense, error)
	MonthlySummary(userID uuid.UUID) ([]models.MonthlyTotal, error)
	CategoryTrend(userID uuid.UUID, categoryName string) ([]models.TrendPoint, error)
}

// TokenServiceInterface verifies identity-provider access tokens
type TokenServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyToken(tokenString string) (*models.IdentityClaims, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordTransactionCreated(transactionType string)
	RecordTransactionsImported(count int)
	RecordTransactionDeleted()
	RecordListQuery(duration time.Duration, err error)
	RecordAnalyticsQuery(operation string, duration time.Duration, err error)
}
