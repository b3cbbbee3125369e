package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles credit and redeem requests
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Credit handles POST /v1/ledger/credit
func (h *LedgerHandler) Credit(c *gin.Context) {
	var req dto.CreditRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	var amount float64
	if req.AmountSpent != nil {
		amount = *req.AmountSpent
	}

	result, err := h.ledger.CreditPoints(c.Request.Context(), usecase.CreditRequest{
		ActorID:     middleware.ActorID(c),
		CustomerID:  req.CustomerID,
		BunkID:      req.BunkID,
		AmountSpent: amount,
		RequestID:   req.RequestID,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditResponse{
		Status:      dto.StatusSuccess,
		NewPoints:   result.NewPoints,
		PointsAdded: result.PointsAdded,
		Replayed:    result.Replayed,
	})
}

// Redeem handles POST /v1/ledger/redeem
func (h *LedgerHandler) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	var points int64
	if req.PointsToRedeem != nil {
		points = *req.PointsToRedeem
	}

	result, err := h.ledger.RedeemPoints(c.Request.Context(), usecase.RedeemRequest{
		ActorID:        middleware.ActorID(c),
		CustomerID:     req.CustomerID,
		BunkID:         req.BunkID,
		PointsToRedeem: points,
		RequestID:      req.RequestID,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{
		Status:        dto.StatusSuccess,
		NewPoints:     result.NewPoints,
		RedeemedValue: result.RedeemedValue.InexactFloat64(),
		Replayed:      result.Replayed,
	})
}
