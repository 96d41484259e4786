package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingCategoryName = errors.New("category name is required")
)

// Category is a user-defined label partitioning transactions. Names are
// case-sensitive and unique per user; the first transaction referencing a
// new name creates the row. Categories are never deleted.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("category owner is required")
	}

	if c.Name == "" {
		return ErrMissingCategoryName
	}

	if len(c.Name) > 100 {
		return errors.New("category name too long")
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
