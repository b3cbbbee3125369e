package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// CreditPoints adds floor(amountSpent * creditPercentage / 100) points to a
// verified customer on behalf of the manager assigned to the bunk
func (s *Service) CreditPoints(ctx context.Context, req usecase.CreditRequest) (*usecase.CreditResult, error) {
	start := s.timeProvider.Now()

	result, err := s.creditPoints(ctx, req)
	if err = s.finish(OperationCredit, req.ActorID, req.CustomerID, start, err); err != nil {
		return nil, err
	}

	if !result.Replayed {
		s.metrics.AddPoints(OperationCredit, result.PointsAdded)
		s.logger.Info("Points credited", map[string]any{
			"managerId":   req.ActorID,
			"customerId":  req.CustomerID,
			"bunkId":      req.BunkID,
			"amountSpent": req.AmountSpent,
			"pointsAdded": result.PointsAdded,
			"newPoints":   result.NewPoints,
		})
	}
	return result, nil
}

func (s *Service) creditPoints(ctx context.Context, req usecase.CreditRequest) (*usecase.CreditResult, error) {
	if err := s.checkPreconditions(ctx, req.ActorID, req.CustomerID, req.BunkID, req.RequestID); err != nil {
		return nil, err
	}
	if !validation.IsPositiveAmount(req.AmountSpent) {
		return nil, errs.WithMessage(errs.ErrInvalidAmount, "amountSpent must be a positive number")
	}

	var result *usecase.CreditResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		replay, err := s.findReplay(txCtx, req.RequestID, entity.TypeCredit, req.ActorID, req.CustomerID)
		if err != nil {
			return err
		}
		if replay != nil {
			result = creditResultFrom(replay)
			return nil
		}

		state, err := s.loadState(txCtx, req.ActorID, req.CustomerID, req.BunkID)
		if err != nil {
			return err
		}

		if !state.config.HasValidCreditPercentage() {
			return errs.ErrInvalidCreditPercentage
		}

		pointsToAdd, err := entity.CreditPointsFor(req.AmountSpent, state.config.CreditPercentage)
		if err != nil {
			return err
		}
		if pointsToAdd == 0 {
			return errs.ErrZeroYieldCredit
		}

		customer := state.customer
		if err := customer.Credit(pointsToAdd, s.timeProvider); err != nil {
			return err
		}
		if err := s.uow.GetUserRepository(txCtx).UpdatePoints(txCtx, customer.ID, customer.Points()); err != nil {
			return err
		}

		details := map[string]any{
			entity.DetailTargetUID:       customer.ID,
			entity.DetailAmountSpent:     req.AmountSpent,
			entity.DetailPointsChange:    pointsToAdd,
			entity.DetailResultingPoints: customer.Points(),
			entity.DetailBunkID:          state.bunk.ID,
			entity.DetailBunk:            state.bunk.Snapshot().ToMap(),
		}
		if err := s.appendRecord(txCtx, entity.TypeCredit, req.ActorID, req.RequestID, details); err != nil {
			return err
		}

		result = &usecase.CreditResult{
			NewPoints:   customer.Points(),
			PointsAdded: pointsToAdd,
		}
		return nil
	})
	if errors.Is(err, errs.ErrDuplicateRequest) && req.RequestID != "" {
		replay, err := s.replayAfterRace(ctx, req.RequestID, entity.TypeCredit, req.ActorID, req.CustomerID)
		if err != nil {
			return nil, err
		}
		return creditResultFrom(replay), nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
