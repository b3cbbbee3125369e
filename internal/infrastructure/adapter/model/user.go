package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID             string    `gorm:"primaryKey;size:128"`
	Role           string    `gorm:"not null;size:20;index"`
	IsVerified     bool      `gorm:"not null;default:false"`
	Points         int64     `gorm:"not null;default:0;check:chk_users_points_non_negative,points >= 0"`
	AssignedBunkID *string   `gorm:"size:128;index"`
	FirstName      string    `gorm:"size:40"`
	LastName       string    `gorm:"size:80"`
	Email          string    `gorm:"size:255;index"`
	Phone          string    `gorm:"size:20"`
	Deleted        bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
