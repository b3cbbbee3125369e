package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GlobalConfigID is the id of the configuration singleton
const GlobalConfigID = "global"

var hundred = decimal.NewFromInt(100)

// GlobalConfig holds the program-wide tunables
type GlobalConfig struct {
	CreditPercentage decimal.Decimal // Points per 100 units spent, 0..100
	RedemptionRate   decimal.Decimal // Currency value of one point, > 0
	UpdatedAt        time.Time
}

// ValidCreditPercentage reports whether p lies in [0,100]
func ValidCreditPercentage(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

// ValidRedemptionRate reports whether r is positive
func ValidRedemptionRate(r decimal.Decimal) bool {
	return r.IsPositive()
}

// HasValidCreditPercentage checks the stored credit percentage
func (c *GlobalConfig) HasValidCreditPercentage() bool {
	return ValidCreditPercentage(c.CreditPercentage)
}

// HasValidRedemptionRate checks the stored redemption rate
func (c *GlobalConfig) HasValidRedemptionRate() bool {
	return ValidRedemptionRate(c.RedemptionRate)
}

// ConfigPatch is a partial update of the global config. Nil fields are left unchanged.
type ConfigPatch struct {
	CreditPercentage *decimal.Decimal
	RedemptionRate   *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing
func (p ConfigPatch) IsEmpty() bool {
	return p.CreditPercentage == nil && p.RedemptionRate == nil
}

// Apply merges the patch into c
func (c *GlobalConfig) Apply(p ConfigPatch, now time.Time) {
	if p.CreditPercentage != nil {
		c.CreditPercentage = *p.CreditPercentage
	}
	if p.RedemptionRate != nil {
		c.RedemptionRate = *p.RedemptionRate
	}
	c.UpdatedAt = now
}

// ToMap returns the patch as audit details
func (p ConfigPatch) ToMap() map[string]any {
	m := map[string]any{}
	if p.CreditPercentage != nil {
		m["creditPercentage"] = p.CreditPercentage.InexactFloat64()
	}
	if p.RedemptionRate != nil {
		m["redemptionRate"] = p.RedemptionRate.InexactFloat64()
	}
	return m
}
