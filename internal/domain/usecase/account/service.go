// Package account covers customer registration, self-service reads and the
// contact verification trigger.
package account

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Service implements usecase.AccountUseCase
type Service struct {
	uow          persistence.UnitOfWork
	resolver     *access.Resolver
	identities   identity.Provider
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new account Service
func NewService(
	uow persistence.UnitOfWork,
	resolver *access.Resolver,
	identities identity.Provider,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		resolver:     resolver,
		identities:   identities,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Service) audit(
	txCtx context.Context,
	txType entity.TransactionType,
	initiatorID string,
	initiatorRole entity.Role,
	details map[string]any,
) error {
	record, err := entity.NewTransaction(s.idGenerator.NewID(), txType, initiatorID, initiatorRole, details, s.timeProvider)
	if err != nil {
		return err
	}
	return s.uow.GetTransactionRepository(txCtx).Append(txCtx, record)
}

// internal logs err and replaces anything without a caller-facing kind
func (s *Service) internal(operation, actorID string, err error) error {
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	opErr := &errs.OperationError{Operation: operation, ActorID: actorID, TargetID: actorID, Err: err}
	s.logger.Error("Account operation failed", opErr.LogFields())
	return errs.ErrInternalServer
}

func historyLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	return min(limit, maxHistoryLimit)
}
