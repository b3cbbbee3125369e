package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GlobalConfig represents the configuration singleton row
type GlobalConfig struct {
	ID               string          `gorm:"primaryKey;size:32"`
	CreditPercentage decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	RedemptionRate   decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GlobalConfig
func (GlobalConfig) TableName() string {
	return "global_config"
}
