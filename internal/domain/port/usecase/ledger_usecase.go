package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// CreditRequest asks the ledger to credit a customer for an amount spent at a bunk
type CreditRequest struct {
	ActorID     string
	CustomerID  string
	BunkID      string
	AmountSpent float64
	RequestID   string // Optional idempotency key
}

// CreditResult is the outcome of a credit
type CreditResult struct {
	NewPoints   int64
	PointsAdded int64
	Replayed    bool // True when served from an earlier request with the same id
}

// RedeemRequest asks the ledger to redeem a customer's points at a bunk
type RedeemRequest struct {
	ActorID        string
	CustomerID     string
	BunkID         string
	PointsToRedeem int64
	RequestID      string
}

// RedeemResult is the outcome of a redemption
type RedeemResult struct {
	NewPoints     int64
	RedeemedValue decimal.Decimal
	Replayed      bool
}

// LedgerUseCase credits and redeems loyalty points
type LedgerUseCase interface {
	// CreditPoints adds floor(amountSpent * creditPercentage / 100) points to a verified customer
	CreditPoints(ctx context.Context, req CreditRequest) (*CreditResult, error)

	// RedeemPoints removes points from a verified customer and reports their currency value
	RedeemPoints(ctx context.Context, req RedeemRequest) (*RedeemResult, error)
}
