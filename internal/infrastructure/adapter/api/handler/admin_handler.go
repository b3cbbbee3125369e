package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// maxConfigPatchBytes bounds the raw config patch body
const maxConfigPatchBytes = 4 << 10

// AdminHandler serves the admin-only endpoints
type AdminHandler struct {
	admin  usecase.AdminUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// CreateBunk handles POST /v1/admin/bunks
func (h *AdminHandler) CreateBunk(c *gin.Context) {
	var req dto.CreateBunkRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	bunkID, err := h.admin.CreateBunk(c.Request.Context(), usecase.CreateBunkRequest{
		ActorID:  middleware.ActorID(c),
		Name:     req.Name,
		Location: req.Location,
		District: req.District,
		State:    req.State,
		Pincode:  req.Pincode,
	})
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateBunkResponse{Status: dto.StatusSuccess, BunkID: bunkID})
}

// ListBunks handles GET /v1/admin/bunks
func (h *AdminHandler) ListBunks(c *gin.Context) {
	bunks, err := h.admin.ListBunks(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBunkListResponse(bunks))
}

// DeleteBunk handles DELETE /v1/admin/bunks/:bunkId
func (h *AdminHandler) DeleteBunk(c *gin.Context) {
	if err := h.admin.DeleteBunk(c.Request.Context(), middleware.ActorID(c), c.Param("bunkId")); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// AssignManager handles POST /v1/admin/bunks/:bunkId/managers
func (h *AdminHandler) AssignManager(c *gin.Context) {
	var req dto.AssignManagerRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	err := h.admin.AssignManagerToBunk(c.Request.Context(), middleware.ActorID(c), req.ManagerUID, c.Param("bunkId"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// UnassignManager handles DELETE /v1/admin/bunks/:bunkId/managers/:managerUid
func (h *AdminHandler) UnassignManager(c *gin.Context) {
	err := h.admin.UnassignManagerFromBunk(c.Request.Context(), middleware.ActorID(c), c.Param("managerUid"), c.Param("bunkId"))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// SetUserRole handles PUT /v1/admin/users/:uid/role
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	var req dto.SetRoleRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	if err := h.admin.SetUserRole(c.Request.Context(), middleware.ActorID(c), c.Param("uid"), req.Role); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// DeleteUser handles DELETE /v1/admin/users/:uid
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.admin.DeleteUser(c.Request.Context(), middleware.ActorID(c), c.Param("uid")); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// GetConfig handles GET /v1/admin/config
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.admin.GetGlobalConfig(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewConfigResponse(cfg))
}

// UpdateConfig handles PATCH /v1/admin/config. The body is passed through
// unparsed so the use case can check the raw JSON types.
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxConfigPatchBytes)
	body, err := c.GetRawData()
	if err != nil {
		middleware.AbortWithError(c, h.logger, errs.Invalidf("unreadable request body"))
		return
	}

	if err := h.admin.UpdateGlobalConfig(c.Request.Context(), middleware.ActorID(c), body); err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success())
}

// ListTransactions handles GET /v1/admin/transactions
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}

	records, err := h.admin.ListTransactions(c.Request.Context(), middleware.ActorID(c), limit)
	if err != nil {
		middleware.AbortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(records))
}
