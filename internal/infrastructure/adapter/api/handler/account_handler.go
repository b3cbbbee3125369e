package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves the self-service endpoints of customers and managers
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// GetProfile handles GET /v1/me
func (h *AccountHandler) GetProfile(c *gin.Context) {
	user, err := h.accounts.GetProfile(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Status: dto.StatusSuccess, User: dto.NewUserResponse(user)})
}

// UpdateProfile handles PATCH /v1/me/profile and, for admins,
// PATCH /v1/admin/users/:uid/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	err := h.accounts.UpdateUserProfile(c.Request.Context(), usecase.UpdateProfileRequest{
		ActorID:   middleware.ActorID(c),
		TargetUID: c.Param("uid"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// CustomerTransactions handles GET /v1/me/transactions
func (h *AccountHandler) CustomerTransactions(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	records, err := h.accounts.CustomerTransactions(c.Request.Context(), middleware.ActorID(c), limit)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(records))
}

// AssignedBunk handles GET /v1/manager/bunk
func (h *AccountHandler) AssignedBunk(c *gin.Context) {
	bunk, err := h.accounts.GetAssignedBunk(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.BunkEnvelope{Status: dto.StatusSuccess, Bunk: dto.NewBunkResponse(bunk)})
}

// ManagerTransactions handles GET /v1/manager/transactions
func (h *AccountHandler) ManagerTransactions(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	records, err := h.accounts.ManagerTransactions(c.Request.Context(), middleware.ActorID(c), limit)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(records))
}
