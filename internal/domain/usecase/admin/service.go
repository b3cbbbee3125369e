// Package admin implements the admin-only operations: bunk lifecycle,
// manager assignment, role changes, user deletion and global configuration.
// Every mutation runs in one unit of work and appends exactly one audit record.
package admin

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Service implements usecase.AdminUseCase
type Service struct {
	uow          persistence.UnitOfWork
	resolver     *access.Resolver
	identities   identity.Provider
	sessions     identity.SessionRevoker
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.LedgerMetrics
	logger       coreport.Logger
}

// NewService creates a new admin Service
func NewService(
	uow persistence.UnitOfWork,
	resolver *access.Resolver,
	identities identity.Provider,
	sessions identity.SessionRevoker,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.LedgerMetrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		resolver:     resolver,
		identities:   identities,
		sessions:     sessions,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// audit appends the record for an admin operation
func (s *Service) audit(txCtx context.Context, txType entity.TransactionType, actorID string, details map[string]any) error {
	record, err := entity.NewTransaction(s.idGenerator.NewID(), txType, actorID, entity.RoleAdmin, details, s.timeProvider)
	if err != nil {
		return err
	}
	return s.uow.GetTransactionRepository(txCtx).Append(txCtx, record)
}

// liveUser loads a user that has not been deleted
func (s *Service) liveUser(txCtx context.Context, uid string) (*entity.User, error) {
	user, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, uid)
	if err != nil {
		return nil, err
	}
	if user.Deleted {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

// detachFromBunk removes managerID from bunkID's manager set. A bunk that no
// longer exists is ignored.
func (s *Service) detachFromBunk(txCtx context.Context, managerID, bunkID string) error {
	if bunkID == "" {
		return nil
	}
	bunks := s.uow.GetBunkRepository(txCtx)
	bunk, err := bunks.GetByID(txCtx, bunkID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Warn("Manager assigned to a missing bunk", map[string]any{
				"managerId": managerID,
				"bunkId":    bunkID,
			})
			return nil
		}
		return err
	}
	bunk.RemoveManager(managerID, s.timeProvider)
	return bunks.Update(txCtx, bunk)
}

// finish records metrics and hides unexpected failures behind ErrInternalServer
func (s *Service) finish(operation, actorID, targetID string, start time.Time, err error) error {
	elapsed := s.timeProvider.Since(start)
	if err == nil {
		s.metrics.ObserveOperation(operation, "success", elapsed)
		return nil
	}

	kind := errs.KindOf(err)
	s.metrics.ObserveOperation(operation, string(kind), elapsed)

	opErr := &errs.OperationError{Operation: operation, ActorID: actorID, TargetID: targetID, Err: err}
	if kind != errs.KindInternal {
		s.logger.Info("Admin operation rejected", opErr.LogFields())
		return err
	}
	s.logger.Error("Admin operation failed", opErr.LogFields())
	return errs.ErrInternalServer
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}
