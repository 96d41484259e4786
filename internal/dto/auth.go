package dto

import (
	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/google/uuid"
)

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// NewUserProfileResponse maps a user model to its wire representation
func NewUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}
}
