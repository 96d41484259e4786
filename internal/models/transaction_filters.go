package models

import (
	"time"

	"github.com/google/uuid"
)

// Coarse relative date windows accepted by listing and analytics filters.
// Anything else degrades to DateRangeAll.
const (
	DateRangeAll         = "all"
	DateRangeWeek        = "week"
	DateRangeMonth       = "month"
	DateRangeThreeMonths = "3months"
)

// FilterAll is the wildcard value for type and category filters.
const FilterAll = "all"

// TransactionFilter is the normalized, validated set of criteria for
// transaction retrieval. It is always scoped to one owner; unset optional
// fields mean "no constraint".
type TransactionFilter struct {
	UserID     uuid.UUID
	Type       string
	CategoryID *uuid.UUID
	Since      *time.Time
	Offset     int
	Limit      int
}

// TransactionPage is one page of a filtered listing plus its pagination
// metadata. TotalCount counts all matching rows before offset/limit.
type TransactionPage struct {
	Transactions []Transaction
	CurrentPage  int
	TotalPages   int
	TotalCount   int64
}
