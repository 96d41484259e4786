package dto

import (
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListTransactionsQuery contains filtering and pagination options for
// transaction listing. Unknown enum values fall back to defaults rather
// than failing the request.
type ListTransactionsQuery struct {
	Type      string `query:"type"`
	Category  string `query:"category"`
	DateRange string `query:"dateRange"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// CreateTransactionRequest represents the request body for recording a transaction
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Date        string          `json:"date" validate:"required,transaction_date"`
	Description string          `json:"description" validate:"max=500"`
}

// BulkImportRequest represents the request body for importing multiple transactions
type BulkImportRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" validate:"required,min=1,max=500,dive"`
}

// TransactionResponse represents a single transaction on the wire
type TransactionResponse struct {
	ID          uuid.UUID       `json:"_id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	CurrentPage       int                   `json:"currentPage"`
	TotalPages        int                   `json:"totalPages"`
	TotalTransactions int64                 `json:"totalTransactions"`
}

// BulkImportResponse represents the response for a bulk import
type BulkImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// DeleteTransactionResponse confirms a deletion
type DeleteTransactionResponse struct {
	Message string `json:"message"`
}

// CategoriesResponse lists the user's category names
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// NewTransactionResponse maps a transaction model to its wire representation
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category.Name,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTransactionResponses maps a transaction slice to its wire representation
func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
