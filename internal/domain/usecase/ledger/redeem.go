package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// RedeemPoints removes points from a verified customer and returns their
// currency value at the configured redemption rate, unrounded
func (s *Service) RedeemPoints(ctx context.Context, req usecase.RedeemRequest) (*usecase.RedeemResult, error) {
	start := s.timeProvider.Now()

	result, err := s.redeemPoints(ctx, req)
	if err = s.finish(OperationRedeem, req.ActorID, req.CustomerID, start, err); err != nil {
		return nil, err
	}

	if !result.Replayed {
		s.metrics.AddPoints(OperationRedeem, req.PointsToRedeem)
		s.logger.Info("Points redeemed", map[string]any{
			"managerId":      req.ActorID,
			"customerId":     req.CustomerID,
			"bunkId":         req.BunkID,
			"pointsRedeemed": req.PointsToRedeem,
			"redeemedValue":  result.RedeemedValue.String(),
			"newPoints":      result.NewPoints,
		})
	}
	return result, nil
}

func (s *Service) redeemPoints(ctx context.Context, req usecase.RedeemRequest) (*usecase.RedeemResult, error) {
	if err := s.checkPreconditions(ctx, req.ActorID, req.CustomerID, req.BunkID, req.RequestID); err != nil {
		return nil, err
	}
	if !validation.IsPositivePoints(req.PointsToRedeem) {
		return nil, errs.WithMessage(errs.ErrInvalidAmount, "pointsToRedeem must be a positive integer")
	}

	var result *usecase.RedeemResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		replay, err := s.findReplay(txCtx, req.RequestID, entity.TypeRedeem, req.ActorID, req.CustomerID)
		if err != nil {
			return err
		}
		if replay != nil {
			result = redeemResultFrom(replay)
			return nil
		}

		state, err := s.loadState(txCtx, req.ActorID, req.CustomerID, req.BunkID)
		if err != nil {
			return err
		}

		customer := state.customer
		if customer.Points() < req.PointsToRedeem {
			return errs.WithMessage(errs.ErrInsufficientPoints,
				fmt.Sprintf("insufficient points: balance %d, requested %d", customer.Points(), req.PointsToRedeem))
		}
		if !state.config.HasValidRedemptionRate() {
			return errs.ErrInvalidRedemptionRate
		}

		redeemedValue := entity.RedeemedValueFor(req.PointsToRedeem, state.config.RedemptionRate)
		if err := customer.Redeem(req.PointsToRedeem, s.timeProvider); err != nil {
			return err
		}
		if err := s.uow.GetUserRepository(txCtx).UpdatePoints(txCtx, customer.ID, customer.Points()); err != nil {
			return err
		}

		details := map[string]any{
			entity.DetailTargetUID:       customer.ID,
			entity.DetailPointsToRedeem:  req.PointsToRedeem,
			entity.DetailPointsChange:    -req.PointsToRedeem,
			entity.DetailRedeemedValue:   redeemedValue.String(),
			entity.DetailResultingPoints: customer.Points(),
			entity.DetailBunkID:          state.bunk.ID,
			entity.DetailBunk:            state.bunk.Snapshot().ToMap(),
		}
		if err := s.appendRecord(txCtx, entity.TypeRedeem, req.ActorID, req.RequestID, details); err != nil {
			return err
		}

		result = &usecase.RedeemResult{
			NewPoints:     customer.Points(),
			RedeemedValue: redeemedValue,
		}
		return nil
	})
	if errors.Is(err, errs.ErrDuplicateRequest) && req.RequestID != "" {
		replay, err := s.replayAfterRace(ctx, req.RequestID, entity.TypeRedeem, req.ActorID, req.CustomerID)
		if err != nil {
			return nil, err
		}
		return redeemResultFrom(replay), nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
