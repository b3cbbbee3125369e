package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for audit records
type Transaction struct {
	ID            string            `gorm:"primaryKey;size:64"`
	Type          string            `gorm:"not null;size:50;index"`
	InitiatorID   string            `gorm:"not null;size:128;index"`
	InitiatorRole string            `gorm:"size:20"`
	TargetUID     string            `gorm:"size:128;index"`
	RequestID     *string           `gorm:"uniqueIndex;size:128"`
	Details       datatypes.JSONMap `gorm:"not null"`
	Timestamp     time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
