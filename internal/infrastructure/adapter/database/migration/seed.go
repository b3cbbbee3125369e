package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// SeedData describes the records a fresh installation needs
type SeedData struct {
	AdminUID         string
	AdminEmail       string
	AdminPassword    string
	AdminFirstName   string
	AdminLastName    string
	CreditPercentage decimal.Decimal
	RedemptionRate   decimal.Decimal
}

// Seeder creates the global config singleton and the first admin. Existing
// records are left untouched, so running it twice is harmless.
type Seeder struct {
	uow          persistence.UnitOfWork
	identities   identity.Provider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	uow persistence.UnitOfWork,
	identities identity.Provider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Seeder {
	return &Seeder{
		uow:          uow,
		identities:   identities,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Seed creates whatever is missing
func (s *Seeder) Seed(ctx context.Context, data SeedData) error {
	if err := s.seedConfig(ctx, data); err != nil {
		return fmt.Errorf("seeding global config: %w", err)
	}

	if data.AdminEmail == "" {
		s.logger.Warn("No admin email configured, skipping admin seed", nil)
		return nil
	}
	if err := s.seedAdmin(ctx, data); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	return nil
}

func (s *Seeder) seedConfig(ctx context.Context, data SeedData) error {
	if !entity.ValidCreditPercentage(data.CreditPercentage) || !entity.ValidRedemptionRate(data.RedemptionRate) {
		return errs.WithMessage(errs.ErrInvalidConfigUpdate, "seed credit percentage or redemption rate out of range")
	}

	return s.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetConfigRepository(txCtx)
		_, err := repo.Get(txCtx)
		if err == nil {
			s.logger.Debug("Global config already present", nil)
			return nil
		}
		if !errors.Is(err, errs.ErrConfigNotFound) {
			return err
		}

		s.logger.Info("Seeding global config", map[string]any{
			"credit_percentage": data.CreditPercentage.String(),
			"redemption_rate":   data.RedemptionRate.String(),
		})
		return repo.Save(txCtx, &entity.GlobalConfig{
			CreditPercentage: data.CreditPercentage,
			RedemptionRate:   data.RedemptionRate,
			UpdatedAt:        s.timeProvider.Now().UTC(),
		})
	})
}

func (s *Seeder) seedAdmin(ctx context.Context, data SeedData) error {
	_, err := s.identities.Get(ctx, data.AdminUID)
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		if _, err := s.identities.Create(ctx, identity.NewIdentity{
			UID:      data.AdminUID,
			Email:    data.AdminEmail,
			Password: data.AdminPassword,
		}); err != nil {
			return err
		}
		s.logger.Info("Admin identity created", map[string]any{"uid": data.AdminUID})
	case err != nil:
		return err
	}

	if err := s.identities.SetRoleClaims(ctx, data.AdminUID, entity.RoleAdmin); err != nil {
		return err
	}
	if err := s.identities.MarkContactVerified(ctx, data.AdminUID); err != nil {
		return err
	}

	return s.uow.Execute(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		_, err := users.GetByID(txCtx, data.AdminUID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}

		admin, err := entity.NewCustomer(data.AdminUID, data.AdminFirstName, data.AdminLastName, data.AdminEmail, "", s.timeProvider)
		if err != nil {
			return err
		}
		admin.ChangeRole(entity.RoleAdmin, s.timeProvider)
		admin.MarkVerified(s.timeProvider)
		return users.Create(txCtx, admin)
	})
}
