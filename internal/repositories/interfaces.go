package repositories

import (
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines database operations for users
type UserRepositoryInterface interface {
	// GetOrCreateBySubject provisions a user row for an identity-provider
	// subject on first sight; concurrent losers fetch the winner's row.
	GetOrCreateBySubject(subject, email, displayName, avatarURL string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	GetBySubject(subject string) (*models.User, error)
}

// CategoryRepositoryInterface defines database operations for categories
type CategoryRepositoryInterface interface {
	// GetOrCreate resolves a category name to its row, creating it when
	// unseen. Relies on the (user_id, name) uniqueness constraint; on a
	// duplicate-key conflict the existing row is fetched instead.
	GetOrCreate(userID uuid.UUID, name string) (*models.Category, error)
	GetByName(userID uuid.UUID, name string) (*models.Category, error)
	ListNames(userID uuid.UUID) ([]string, error)
}

// TransactionRepositoryInterface defines database operations for transactions
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	DeleteByIDAndOwner(id, userID uuid.UUID) error

	// GetWithFilter retrieves one page of transactions matching the filter,
	// newest date first, plus the total match count before pagination.
	GetWithFilter(filter models.TransactionFilter) ([]models.Transaction, int64, error)

	// GetAllWithFilter retrieves every matching transaction ordered by date
	// ascending, for in-process aggregation.
	GetAllWithFilter(filter models.TransactionFilter) ([]models.Transaction, error)

	// SumByType sums amounts grouped by transaction type for one owner,
	// optionally bounded below by date.
	SumByType(userID uuid.UUID, since *time.Time) ([]models.TypeTotal, error)

	// SumExpensesByCategory sums expense amounts grouped by category, joined
	// to category names, ordered by total descending.
	SumExpensesByCategory(userID uuid.UUID, since *time.Time) ([]models.CategoryExpense, error)
}
