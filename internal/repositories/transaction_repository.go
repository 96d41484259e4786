package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.Preload("Category").First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// DeleteByIDAndOwner deletes a transaction only if it belongs to the given
// owner. A transaction owned by another user reports not-found so that its
// existence is not revealed across user boundaries.
func (r *transactionRepository) DeleteByIDAndOwner(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetWithFilter retrieves one page of transactions matching the filter
// along with the total match count. Results are ordered newest date first,
// ties broken by creation timestamp descending so pagination stays stable
// across pages.
func (r *transactionRepository) GetWithFilter(filter models.TransactionFilter) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.applyFilter(filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := query.Preload("Category").
		Offset(filter.Offset).Limit(filter.Limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetAllWithFilter retrieves every transaction matching the filter ordered
// by date ascending. Offset and Limit are ignored.
func (r *transactionRepository) GetAllWithFilter(filter models.TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.applyFilter(filter).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, nil
}

// SumByType calculates amount totals grouped by transaction type
func (r *transactionRepository) SumByType(userID uuid.UUID, since *time.Time) ([]models.TypeTotal, error) {
	var totals []models.TypeTotal

	query := r.db.Model(&models.Transaction{}).
		Select("type, SUM(amount) AS total").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	if err := query.Group("type").Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum transactions by type: %w", err)
	}

	return totals, nil
}

// SumExpensesByCategory calculates expense totals grouped by category,
// joined to the category display names, sorted descending by total. Groups
// with no matching expenses produce no row.
func (r *transactionRepository) SumExpensesByCategory(userID uuid.UUID, since *time.Time) ([]models.CategoryExpense, error) {
	var expenses []models.CategoryExpense

	query := r.db.Model(&models.Transaction{}).
		Select("categories.name AS category, SUM(transactions.amount) AS total_amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, models.TransactionTypeExpense)
	if since != nil {
		query = query.Where("transactions.date >= ?", *since)
	}

	if err := query.Group("categories.id, categories.name").
		Order("total_amount DESC").
		Scan(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	return expenses, nil
}

// applyFilter composes the WHERE clause for a normalized filter. Only the
// owner constraint is unconditional.
func (r *transactionRepository) applyFilter(filter models.TransactionFilter) *gorm.DB {
	query := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", filter.UserID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Since != nil {
		query = query.Where("date >= ?", *filter.Since)
	}

	return query
}
