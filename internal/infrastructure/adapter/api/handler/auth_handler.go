package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the public login and registration endpoints
type AuthHandler struct {
	sessions usecase.SessionUseCase
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(sessions usecase.SessionUseCase, accounts usecase.AccountUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		accounts: accounts,
		logger:   logger,
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	token, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:    dto.StatusSuccess,
		Token:     token.Value,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
	})
}

// Register handles POST /v1/customers/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	uid, err := h.accounts.RegisterCustomer(c.Request.Context(), usecase.RegisterCustomerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{Status: dto.StatusSuccess, UserID: uid})
}
