package dto

import (
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// ConfigResponse is the public view of the global config. pointValue is
// the legacy name of redemptionRate.
type ConfigResponse struct {
	Status           string    `json:"status"`
	CreditPercentage float64   `json:"creditPercentage"`
	RedemptionRate   float64   `json:"redemptionRate"`
	PointValue       float64   `json:"pointValue"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewConfigResponse maps the config entity
func NewConfigResponse(c *entity.GlobalConfig) ConfigResponse {
	rate := c.RedemptionRate.InexactFloat64()
	return ConfigResponse{
		Status:           StatusSuccess,
		CreditPercentage: c.CreditPercentage.InexactFloat64(),
		RedemptionRate:   rate,
		PointValue:       rate,
		UpdatedAt:        c.UpdatedAt,
	}
}
