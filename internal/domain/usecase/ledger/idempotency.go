package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
)

// findReplay looks up an earlier record written for requestID. It returns
// nil when the request id is unused. A record written by a different
// operation, initiator or customer is ErrDuplicateRequest.
func (s *Service) findReplay(
	txCtx context.Context,
	requestID string,
	txType entity.TransactionType,
	actorID, customerID string,
) (*entity.Transaction, error) {
	if requestID == "" {
		return nil, nil
	}

	record, err := s.uow.GetTransactionRepository(txCtx).GetByRequestID(txCtx, requestID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if record.Type != txType || record.InitiatorID != actorID || record.TargetUID != customerID {
		return nil, errs.ErrDuplicateRequest
	}

	s.logger.Info("Replaying ledger request", map[string]any{
		"requestId":     requestID,
		"transactionId": record.ID,
		"type":          string(txType),
	})
	return record, nil
}

// replayAfterRace runs when Append lost the unique request id index to a
// concurrent request. The losing unit of work is already rolled back, so
// the winner's record is read in a fresh one.
func (s *Service) replayAfterRace(
	ctx context.Context,
	requestID string,
	txType entity.TransactionType,
	actorID, customerID string,
) (*entity.Transaction, error) {
	var record *entity.Transaction
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		var err error
		record, err = s.findReplay(txCtx, requestID, txType, actorID, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errs.ErrDuplicateRequest
	}
	return record, nil
}

func creditResultFrom(record *entity.Transaction) *usecase.CreditResult {
	return &usecase.CreditResult{
		NewPoints:   record.ResultingPoints(),
		PointsAdded: record.PointsChange(),
		Replayed:    true,
	}
}

func redeemResultFrom(record *entity.Transaction) *usecase.RedeemResult {
	value := decimal.Zero
	switch v := record.Details[entity.DetailRedeemedValue].(type) {
	case float64:
		value = decimal.NewFromFloat(v)
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			value = d
		}
	}
	return &usecase.RedeemResult{
		NewPoints:     record.ResultingPoints(),
		RedeemedValue: value,
		Replayed:      true,
	}
}
