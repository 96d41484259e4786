package dto

import (
	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryResponse represents income, expense and savings totals on the wire
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetSavings   decimal.Decimal `json:"netSavings"`
}

// CategoryExpenseResponse represents one category's expense total
type CategoryExpenseResponse struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// MonthlyBucketID identifies a (year, month, type) aggregation bucket
type MonthlyBucketID struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Type  string `json:"type"`
}

// MonthlySummaryEntry represents one month-and-type total
type MonthlySummaryEntry struct {
	ID          MonthlyBucketID `json:"_id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// TrendBucketID identifies a (year, month) aggregation bucket
type TrendBucketID struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// TrendEntry represents one month's total for a single category
type TrendEntry struct {
	ID          TrendBucketID   `json:"_id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// NewSummaryResponse maps summary totals to their wire representation
func NewSummaryResponse(totals *models.SummaryTotals) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  totals.TotalIncome,
		TotalExpense: totals.TotalExpense,
		NetSavings:   totals.NetSavings,
	}
}

// NewCategoryExpenseResponses maps category expense totals to their wire representation
func NewCategoryExpenseResponses(expenses []models.CategoryExpense) []CategoryExpenseResponse {
	responses := make([]CategoryExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, CategoryExpenseResponse{
			Category:    e.Category,
			TotalAmount: e.TotalAmount,
		})
	}
	return responses
}

// NewMonthlySummaryEntries maps monthly totals to their wire representation
func NewMonthlySummaryEntries(totals []models.MonthlyTotal) []MonthlySummaryEntry {
	entries := make([]MonthlySummaryEntry, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, MonthlySummaryEntry{
			ID:          MonthlyBucketID{Year: t.Year, Month: t.Month, Type: t.Type},
			TotalAmount: t.TotalAmount,
		})
	}
	return entries
}

// NewTrendEntries maps trend points to their wire representation
func NewTrendEntries(points []models.TrendPoint) []TrendEntry {
	entries := make([]TrendEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, TrendEntry{
			ID:          TrendBucketID{Year: p.Year, Month: p.Month},
			TotalAmount: p.TotalAmount,
		})
	}
	return entries
}
