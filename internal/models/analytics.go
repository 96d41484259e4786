package models

import (
	"github.com/shopspring/decimal"
)

// TypeTotal is an amount sum grouped by transaction type.
type TypeTotal struct {
	Type  string
	Total decimal.Decimal
}

// SummaryTotals holds the per-type totals for a user over an optional date
// window. NetSavings may be negative.
type SummaryTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetSavings   decimal.Decimal
}

// CategoryExpense is the expense total of one category, joined to the
// category's display name. Categories with no matching expenses are never
// materialized as zero rows.
type CategoryExpense struct {
	Category    string
	TotalAmount decimal.Decimal
}

// MonthlyTotal is an amount sum grouped by calendar year, month and type.
// Months with no rows of a given type simply have no entry for that type;
// callers pivot absent types to zero.
type MonthlyTotal struct {
	Year        int
	Month       int
	Type        string
	TotalAmount decimal.Decimal
}

// TrendPoint is an expense sum for one category in one calendar month.
type TrendPoint struct {
	Year        int
	Month       int
	TotalAmount decimal.Decimal
}
