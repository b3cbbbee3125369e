package admin

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

// Recognized keys of a config patch. pointValue and redemptionRate name the
// same setting.
const (
	keyCreditPercentage = "creditPercentage"
	keyPointValue       = "pointValue"
	keyRedemptionRate   = "redemptionRate"
)

// ParseConfigPatch turns a raw JSON object into a ConfigPatch. Unknown keys are
// ignored; a recognized key with the wrong type or an out-of-range value
// rejects the whole patch.
func ParseConfigPatch(raw []byte) (entity.ConfigPatch, error) {
	var patch entity.ConfigPatch

	if !gjson.ValidBytes(raw) {
		return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate, "updateData must be a JSON object")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate, "updateData must be a JSON object")
	}

	if v := root.Get(keyCreditPercentage); v.Exists() {
		d, err := numberField(keyCreditPercentage, v)
		if err != nil {
			return patch, err
		}
		if !entity.ValidCreditPercentage(d) {
			return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate, "creditPercentage must be between 0 and 100")
		}
		patch.CreditPercentage = &d
	}

	var rate *decimal.Decimal
	for _, key := range []string{keyPointValue, keyRedemptionRate} {
		v := root.Get(key)
		if !v.Exists() {
			continue
		}
		d, err := numberField(key, v)
		if err != nil {
			return patch, err
		}
		if !entity.ValidRedemptionRate(d) {
			return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate, key+" must be greater than 0")
		}
		if rate != nil && !rate.Equal(d) {
			return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate, "pointValue and redemptionRate disagree")
		}
		rate = &d
	}
	patch.RedemptionRate = rate

	if patch.IsEmpty() {
		return patch, errs.WithMessage(errs.ErrInvalidConfigUpdate,
			"updateData must contain creditPercentage, pointValue or redemptionRate")
	}
	return patch, nil
}

func numberField(key string, v gjson.Result) (decimal.Decimal, error) {
	if v.Type != gjson.Number {
		return decimal.Zero, errs.WithMessage(errs.ErrInvalidConfigUpdate, key+" must be a number")
	}
	d, err := decimal.NewFromString(v.Raw)
	if err != nil {
		return decimal.Zero, errs.WithMessage(errs.ErrInvalidConfigUpdate, fmt.Sprintf("%s is not a valid number", key))
	}
	return d, nil
}

// UpdateGlobalConfig merges a patch into the global config
func (s *Service) UpdateGlobalConfig(ctx context.Context, actorID string, updateData []byte) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		patch, err := ParseConfigPatch(updateData)
		if err != nil {
			return err
		}

		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			configs := s.uow.GetConfigRepository(txCtx)
			config, err := configs.Get(txCtx)
			if err != nil {
				if !errs.IsNotFoundError(err) {
					return err
				}
				config = &entity.GlobalConfig{}
			}

			previous := map[string]any{
				keyCreditPercentage: config.CreditPercentage.InexactFloat64(),
				keyRedemptionRate:   config.RedemptionRate.InexactFloat64(),
			}
			config.Apply(patch, s.timeProvider.Now().UTC())
			if err := configs.Save(txCtx, config); err != nil {
				return err
			}

			return s.audit(txCtx, entity.TypeUpdateGlobalConfig, actorID, map[string]any{
				"changes":  patch.ToMap(),
				"previous": previous,
			})
		})
	}()

	if err = s.finish("update_global_config", actorID, entity.GlobalConfigID, start, err); err != nil {
		return err
	}
	s.logger.Info("Global config updated", map[string]any{"actorId": actorID})
	return nil
}

// GetGlobalConfig returns the global config to any live user
func (s *Service) GetGlobalConfig(ctx context.Context, actorID string) (*entity.GlobalConfig, error) {
	if _, err := s.resolver.Require(ctx, actorID); err != nil {
		return nil, err
	}
	config, err := s.uow.GetConfigRepository(ctx).Get(ctx)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("Failed to read global config", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}
	return config, nil
}
