package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"
	"github.com/prakharmi/finance-assistant/internal/repositories"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type transactionQueryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewTransactionQueryService creates a new transaction query service
func NewTransactionQueryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryServiceInterface {
	return &transactionQueryService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// List retrieves one page of a user's transactions matching the normalized
// filter parameters. A category filter naming a category the user does not
// have yields an empty page rather than an error: a filter on a nonexistent
// category matches nothing.
func (s *transactionQueryService) List(userID uuid.UUID, params ListParams) (*models.TransactionPage, error) {
	start := time.Now()

	page, err := s.list(userID, params)

	s.metrics.RecordListQuery(time.Since(start), err)
	return page, err
}

func (s *transactionQueryService) list(userID uuid.UUID, params ListParams) (*models.TransactionPage, error) {
	page, limit := normalizePagination(params.Page, params.Limit)

	filter := models.TransactionFilter{
		UserID: userID,
		Type:   normalizeTypeFilter(params.Type),
		Since:  resolveDateRangeFrom(params.DateRange, s.now()),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if params.Category != "" && params.Category != models.FilterAll {
		category, err := s.categoryRepo.GetByName(userID, params.Category)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				slog.Debug("listing filtered on unknown category",
					"user_id", userID,
					"category", params.Category)
				return emptyPage(page), nil
			}
			return nil, fmt.Errorf("failed to resolve category filter: %w", err)
		}
		filter.CategoryID = &category.ID
	}

	transactions, total, err := s.transactionRepo.GetWithFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &models.TransactionPage{
		Transactions: transactions,
		CurrentPage:  page,
		TotalPages:   totalPages(total, limit),
		TotalCount:   total,
	}, nil
}

func emptyPage(page int) *models.TransactionPage {
	return &models.TransactionPage{
		Transactions: []models.Transaction{},
		CurrentPage:  page,
		TotalPages:   0,
		TotalCount:   0,
	}
}

// normalizeTypeFilter maps a raw type parameter to a filter constraint.
// Empty string means no constraint; anything that is not a known type
// degrades to no constraint rather than rejecting the request.
func normalizeTypeFilter(raw string) string {
	if models.IsValidTransactionType(raw) {
		return raw
	}
	return ""
}

// normalizePagination clamps page and limit to sane values
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// totalPages computes ceil(total/limit), 0 when there are no matches
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// resolveDateRangeFrom maps a coarse date-range keyword to an inclusive
// lower bound relative to now. The upper bound is always "now" (no explicit
// filter). Unknown keywords mean no bound.
func resolveDateRangeFrom(dateRange string, now time.Time) *time.Time {
	var since time.Time

	switch dateRange {
	case models.DateRangeWeek:
		since = now.AddDate(0, 0, -7)
	case models.DateRangeMonth:
		since = now.AddDate(0, -1, 0)
	case models.DateRangeThreeMonths:
		since = now.AddDate(0, -3, 0)
	default:
		return nil
	}

	return &since
}
