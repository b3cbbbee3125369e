package account

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
)

// CustomerTransactions returns records whose target is the actor, newest first
func (s *Service) CustomerTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error) {
	if _, err := s.resolver.Require(ctx, actorID); err != nil {
		return nil, err
	}
	return s.list(ctx, actorID, persistence.TransactionFilter{TargetUID: actorID, Limit: historyLimit(limit)})
}

// ManagerTransactions returns records the manager initiated, newest first
func (s *Service) ManagerTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error) {
	if _, err := s.resolver.Require(ctx, actorID, entity.RoleManager); err != nil {
		return nil, err
	}
	return s.list(ctx, actorID, persistence.TransactionFilter{InitiatorID: actorID, Limit: historyLimit(limit)})
}

func (s *Service) list(ctx context.Context, actorID string, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	records, err := s.uow.GetTransactionRepository(ctx).List(ctx, filter)
	if err != nil {
		return nil, s.internal("list_transactions", actorID, err)
	}
	return records, nil
}
