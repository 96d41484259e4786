package repositories

import (
	"errors"
	"fmt"

	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// GetOrCreate resolves a category name for a user, creating the row when it
// does not exist yet. Creation races on a brand-new name are settled by the
// (user_id, name) uniqueness constraint: the loser fetches the winner's row
// instead of erroring.
func (r *categoryRepository) GetOrCreate(userID uuid.UUID, name string) (*models.Category, error) {
	category, err := r.GetByName(userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, err
	}

	category = &models.Category{
		UserID: userID,
		Name:   name,
	}

	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return r.GetByName(userID, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetByName retrieves a category by its exact (case-sensitive) name, scoped
// to one user
func (r *categoryRepository) GetByName(userID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return &category, nil
}

// ListNames retrieves the distinct category names for a user, sorted by name
func (r *categoryRepository) ListNames(userID uuid.UUID) ([]string, error) {
	var names []string
	if err := r.db.Model(&models.Category{}).
		Where("user_id = ?", userID).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list category names: %w", err)
	}

	return names, nil
}
