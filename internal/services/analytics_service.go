package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"
	"github.com/prakharmi/finance-assistant/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// Summary computes total income, total expense and net savings for a user
// over an optional date window. Types with no matching transactions total
// zero; net savings may be negative.
func (s *analyticsService) Summary(userID uuid.UUID, dateRange string) (*models.SummaryTotals, error) {
	start := time.Now()

	totals, err := s.summary(userID, dateRange)

	s.metrics.RecordAnalyticsQuery("summary", time.Since(start), err)
	return totals, err
}

func (s *analyticsService) summary(userID uuid.UUID, dateRange string) (*models.SummaryTotals, error) {
	since := resolveDateRangeFrom(dateRange, s.now())

	typeTotals, err := s.transactionRepo.SumByType(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	totals := &models.SummaryTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, tt := range typeTotals {
		switch tt.Type {
		case models.TransactionTypeIncome:
			totals.TotalIncome = tt.Total
		case models.TransactionTypeExpense:
			totals.TotalExpense = tt.Total
		}
	}
	totals.NetSavings = totals.TotalIncome.Sub(totals.TotalExpense)

	slog.Debug("summary computed",
		"user_id", userID,
		"date_range", dateRange,
		"net_savings", totals.NetSavings.String())

	return totals, nil
}

// ExpensesByCategory computes expense totals grouped by category for a user
// over an optional date window, sorted descending by total. Categories with
// no matching expenses are omitted, not zero-padded.
func (s *analyticsService) ExpensesByCategory(userID uuid.UUID, dateRange string) ([]models.CategoryExpense, error) {
	start := time.Now()

	expenses, err := s.expensesByCategory(userID, dateRange)

	s.metrics.RecordAnalyticsQuery("expenses_by_category", time.Since(start), err)
	return expenses, err
}

func (s *analyticsService) expensesByCategory(userID uuid.UUID, dateRange string) ([]models.CategoryExpense, error) {
	since := resolveDateRangeFrom(dateRange, s.now())

	expenses, err := s.transactionRepo.SumExpensesByCategory(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expenses by category: %w", err)
	}

	if expenses == nil {
		expenses = []models.CategoryExpense{}
	}
	return expenses, nil
}

// MonthlySummary computes all-time amount totals grouped by calendar year,
// month and type, ascending by (year, month). It deliberately takes no date
// range: the monthly chart always shows full history. A month that only has
// rows of one type gets no synthesized zero row for the other.
func (s *analyticsService) MonthlySummary(userID uuid.UUID) ([]models.MonthlyTotal, error) {
	start := time.Now()

	totals, err := s.monthlySummary(userID)

	s.metrics.RecordAnalyticsQuery("monthly_summary", time.Since(start), err)
	return totals, err
}

func (s *analyticsService) monthlySummary(userID uuid.UUID) ([]models.MonthlyTotal, error) {
	transactions, err := s.transactionRepo.GetAllWithFilter(models.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}

	type bucketKey struct {
		year  int
		month int
		typ   string
	}

	buckets := make(map[bucketKey]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		key := bucketKey{year: t.Date.Year(), month: int(t.Date.Month()), typ: t.Type}
		buckets[key] = buckets[key].Add(t.Amount)
	}

	totals := make([]models.MonthlyTotal, 0, len(buckets))
	for key, total := range buckets {
		totals = append(totals, models.MonthlyTotal{
			Year:        key.year,
			Month:       key.month,
			Type:        key.typ,
			TotalAmount: total,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		if totals[i].Month != totals[j].Month {
			return totals[i].Month < totals[j].Month
		}
		return totals[i].Type < totals[j].Type
	})

	return totals, nil
}

// CategoryTrend computes the monthly expense totals of one category,
// ascending by (year, month). A category name the user does not have
// yields an empty sequence, not an error.
func (s *analyticsService) CategoryTrend(userID uuid.UUID, categoryName string) ([]models.TrendPoint, error) {
	start := time.Now()

	points, err := s.categoryTrend(userID, categoryName)

	s.metrics.RecordAnalyticsQuery("category_trend", time.Since(start), err)
	return points, err
}

func (s *analyticsService) categoryTrend(userID uuid.UUID, categoryName string) ([]models.TrendPoint, error) {
	category, err := s.categoryRepo.GetByName(userID, categoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			slog.Debug("trend requested for unknown category",
				"user_id", userID,
				"category", categoryName)
			return []models.TrendPoint{}, nil
		}
		return nil, fmt.Errorf("failed to resolve trend category: %w", err)
	}

	transactions, err := s.transactionRepo.GetAllWithFilter(models.TransactionFilter{
		UserID:     userID,
		Type:       models.TransactionTypeExpense,
		CategoryID: &category.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute category trend: %w", err)
	}

	type bucketKey struct {
		year  int
		month int
	}

	buckets := make(map[bucketKey]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		key := bucketKey{year: t.Date.Year(), month: int(t.Date.Month())}
		buckets[key] = buckets[key].Add(t.Amount)
	}

	points := make([]models.TrendPoint, 0, len(buckets))
	for key, total := range buckets {
		points = append(points, models.TrendPoint{
			Year:        key.year,
			Month:       key.month,
			TotalAmount: total,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})

	return points, nil
}
