package model

import (
	"time"

	"gorm.io/datatypes"
)

// Identity represents stored credentials and claims
type Identity struct {
	UID             string            `gorm:"primaryKey;size:128"`
	Email           string            `gorm:"not null;size:255;uniqueIndex"`
	Phone           string            `gorm:"size:20"`
	PasswordHash    string            `gorm:"not null;size:100"`
	ContactVerified bool              `gorm:"not null;default:false"`
	Claims          datatypes.JSONMap `gorm:"not null"`
	CreatedAt       time.Time         `gorm:"not null"`
	UpdatedAt       time.Time         `gorm:"not null"`
}

// TableName specifies the table name for Identity
func (Identity) TableName() string {
	return "identities"
}
