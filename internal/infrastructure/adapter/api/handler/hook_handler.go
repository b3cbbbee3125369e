package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// HookHandler receives notifications from the identity side
type HookHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewHookHandler creates a new hook handler instance
func NewHookHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *HookHandler {
	return &HookHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// ContactVerified handles POST /v1/hooks/contact-verified
func (h *HookHandler) ContactVerified(c *gin.Context) {
	var req dto.ContactVerifiedRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	if err := h.accounts.HandleContactVerified(c.Request.Context(), req.UID); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}
