// Package ledger credits and redeems loyalty points. Each operation reads the
// manager, customer, global config and bunk records, checks them, writes the
// new balance and appends one audit record, all inside a single unit of work.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// Operation names used in logs and metrics
const (
	OperationCredit = "credit_points"
	OperationRedeem = "redeem_points"
)

// Service implements usecase.LedgerUseCase
type Service struct {
	uow          persistence.UnitOfWork
	resolver     *access.Resolver
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.LedgerMetrics
	logger       coreport.Logger
}

// NewService creates a new ledger Service
func NewService(
	uow persistence.UnitOfWork,
	resolver *access.Resolver,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.LedgerMetrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		resolver:     resolver,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// checkPreconditions runs the checks that need no transaction, in order:
// authentication, manager role, self-dealing, id shape.
func (s *Service) checkPreconditions(ctx context.Context, actorID, customerID, bunkID, requestID string) error {
	if actorID == "" {
		return errs.ErrUnauthenticated
	}
	if _, err := s.resolver.Require(ctx, actorID, entity.RoleManager); err != nil {
		return err
	}
	if customerID == actorID {
		return errs.ErrSelfDealing
	}
	if err := validation.RequireID("customerId", customerID); err != nil {
		return err
	}
	if err := validation.RequireID("bunkId", bunkID); err != nil {
		return err
	}
	if requestID != "" && !validation.IsValidID(requestID) {
		return errs.Invalidf("requestId is malformed")
	}
	return nil
}

// ledgerState is what one credit or redeem reads
type ledgerState struct {
	manager  *entity.User
	customer *entity.User
	config   *entity.GlobalConfig
	bunk     *entity.Bunk
}

// loadState reads the four records and applies the checks shared by credit
// and redeem. The order of the returned errors is part of the contract.
func (s *Service) loadState(txCtx context.Context, actorID, customerID, bunkID string) (*ledgerState, error) {
	users := s.uow.GetUserRepository(txCtx)

	manager, err := users.GetByID(txCtx, actorID)
	if err != nil {
		return nil, err
	}
	customer, err := users.GetByIDForUpdate(txCtx, customerID)
	if err != nil {
		return nil, err
	}
	config, err := s.uow.GetConfigRepository(txCtx).Get(txCtx)
	if err != nil {
		return nil, err
	}
	// The bunk is read now but its absence is reported after the
	// assignment and verification checks.
	bunk, bunkErr := s.uow.GetBunkRepository(txCtx).GetByID(txCtx, bunkID)
	if bunkErr != nil && !errors.Is(bunkErr, errs.ErrBunkNotFound) {
		return nil, bunkErr
	}

	if manager.Deleted {
		return nil, errs.ErrUserNotFound
	}
	if customer.Deleted {
		return nil, errs.WithMessage(errs.ErrUserNotFound, "customer not found")
	}
	if !manager.IsManagerOf(bunkID) {
		return nil, errs.ErrWrongBunk
	}
	if !customer.IsVerified {
		return nil, errs.ErrCustomerNotVerified
	}
	if bunkErr != nil {
		return nil, bunkErr
	}

	return &ledgerState{
		manager:  manager,
		customer: customer,
		config:   config,
		bunk:     bunk,
	}, nil
}

// appendRecord writes the audit record for a ledger operation
func (s *Service) appendRecord(
	txCtx context.Context,
	txType entity.TransactionType,
	actorID, requestID string,
	details map[string]any,
) error {
	record, err := entity.NewTransaction(s.idGenerator.NewID(), txType, actorID, entity.RoleManager, details, s.timeProvider)
	if err != nil {
		return err
	}
	record.WithRequestID(requestID)
	return s.uow.GetTransactionRepository(txCtx).Append(txCtx, record)
}

// finish records metrics and turns unexpected failures into ErrInternalServer.
// Errors with a caller-facing kind pass through untouched.
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
		s.logger.Info("Ledger operation rejected", opErr.LogFields())
		return err
	}

	s.logger.Error("Ledger operation failed", opErr.LogFields())
	return errs.ErrInternalServer
}
