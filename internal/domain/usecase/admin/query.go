package admin

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
)

// ListTransactions returns the most recent audit records, newest first
func (s *Service) ListTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error) {
	if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	records, err := s.uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{
		Limit: normalizeLimit(limit),
	})
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}
	return records, nil
}
