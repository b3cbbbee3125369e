package model

import (
	"time"
)

// Bunk represents the database model for bunks
type Bunk struct {
	ID        string    `gorm:"primaryKey;size:128"`
	Name      string    `gorm:"not null;size:50;index"`
	Location  string    `gorm:"not null;size:200"`
	District  string    `gorm:"not null;size:200"`
	State     string    `gorm:"not null;size:200"`
	Pincode   string    `gorm:"not null;size:6"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Managers []BunkManager `gorm:"foreignKey:BunkID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Bunk
func (Bunk) TableName() string {
	return "bunks"
}

// BunkManager is one entry of a bunk's manager set
type BunkManager struct {
	BunkID    string    `gorm:"primaryKey;size:128"`
	ManagerID string    `gorm:"primaryKey;size:128;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for BunkManager
func (BunkManager) TableName() string {
	return "bunk_managers"
}
