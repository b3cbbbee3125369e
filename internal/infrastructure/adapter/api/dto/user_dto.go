package dto

import (
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// RegisterRequest represents a customer self-registration
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// RegisterResponse returns the new user's id
type RegisterResponse struct {
	Status string `json:"status"`
	UserID string `json:"userId"`
}

// UpdateProfileRequest renames a user
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SetRoleRequest changes a user's role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserResponse is the public view of a user record
type UserResponse struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	IsVerified     bool      `json:"isVerified"`
	Points         int64     `json:"points"`
	AssignedBunkID *string   `json:"assignedBunkId,omitempty"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProfileResponse wraps a user
type ProfileResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Role:           string(u.Role),
		IsVerified:     u.IsVerified,
		Points:         u.Points(),
		AssignedBunkID: u.AssignedBunkID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
