package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prakharmi/finance-assistant/internal/models"
	"github.com/prakharmi/finance-assistant/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// Record stores a single transaction, creating its category on first use.
func (s *transactionService) Record(userID uuid.UUID, input RecordInput) (*models.Transaction, error) {
	transaction, err := s.buildTransaction(userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.metrics.RecordTransactionCreated(transaction.Type)

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"type", transaction.Type,
		"amount", transaction.Amount.String())

	return transaction, nil
}

// RecordBatch stores a set of transactions atomically. Categories are
// resolved up front so a batch with a repeated new category creates it
// once; the insert itself is all-or-nothing.
func (s *transactionService) RecordBatch(userID uuid.UUID, inputs []RecordInput) ([]models.Transaction, error) {
	if len(inputs) == 0 {
		return []models.Transaction{}, nil
	}

	transactions := make([]models.Transaction, 0, len(inputs))
	for i, input := range inputs {
		transaction, err := s.buildTransaction(userID, input)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction at index %d: %w", i, err)
		}
		transactions = append(transactions, *transaction)
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to record transaction batch: %w", err)
	}

	s.metrics.RecordTransactionsImported(len(transactions))

	slog.Info("transaction batch recorded",
		"user_id", userID,
		"count", len(transactions))

	return transactions, nil
}

// Delete removes a transaction owned by the given user. A transaction that
// does not exist or belongs to someone else reports ErrTransactionNotFound.
func (s *transactionService) Delete(userID, transactionID uuid.UUID) error {
	if err := s.transactionRepo.DeleteByIDAndOwner(transactionID, userID); err != nil {
		return err
	}

	s.metrics.RecordTransactionDeleted()

	slog.Info("transaction deleted",
		"transaction_id", transactionID,
		"user_id", userID)

	return nil
}

// CategoryNames returns the user's category names sorted alphabetically.
func (s *transactionService) CategoryNames(userID uuid.UUID) ([]string, error) {
	names, err := s.categoryRepo.ListNames(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *transactionService) buildTransaction(userID uuid.UUID, input RecordInput) (*models.Transaction, error) {
	categoryName := strings.TrimSpace(input.Category)
	if categoryName == "" {
		return nil, models.ErrMissingCategoryName
	}

	category, err := s.categoryRepo.GetOrCreate(userID, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Type:        input.Type,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	transaction.Category = *category

	return transaction, nil
}
