package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrMissingSubject = errors.New("identity provider subject is required")
	ErrInvalidEmail   = errors.New("invalid email address")
)

// User is an account provisioned from the external identity provider.
// Subject is the provider-issued subject id; it is the stable key used
// to find-or-create the row on the first authenticated request.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Subject     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Categories   []Category    `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Subject == "" {
		return ErrMissingSubject
	}

	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.DisplayName == "" {
		return errors.New("display name is required")
	}

	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
