package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigRepository stores the global configuration singleton in a one-row table
type ConfigRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewConfigRepository creates a new ConfigRepository instance
func NewConfigRepository(db *gorm.DB, logger coreport.Logger) *ConfigRepository {
	return &ConfigRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Get returns the global config
func (r *ConfigRepository) Get(ctx context.Context) (*entity.GlobalConfig, error) {
	var configModel model.GlobalConfig
	result := r.db.WithContext(ctx).Where("id = ?", entity.GlobalConfigID).First(&configModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrConfigNotFound
		}
		r.logger.Error("Database error when reading global config", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.conflictOr(result.Error)
	}

	return &entity.GlobalConfig{
		CreditPercentage: configModel.CreditPercentage,
		RedemptionRate:   configModel.RedemptionRate,
		UpdatedAt:        configModel.UpdatedAt,
	}, nil
}

// Save creates or replaces the singleton
func (r *ConfigRepository) Save(ctx context.Context, config *entity.GlobalConfig) error {
	configModel := model.GlobalConfig{
		ID:               entity.GlobalConfigID,
		CreditPercentage: config.CreditPercentage,
		RedemptionRate:   config.RedemptionRate,
		UpdatedAt:        config.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&configModel)
	if result.Error != nil {
		r.logger.Error("Database error when saving global config", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.conflictOr(result.Error)
	}

	r.logger.Info("Global config saved", map[string]any{
		"credit_percentage": config.CreditPercentage.String(),
		"redemption_rate":   config.RedemptionRate.String(),
	})
	return nil
}
