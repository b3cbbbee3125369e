package routes

import (
	"net/http"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth    *handler.AuthHandler
	Account *handler.AccountHandler
	Ledger  *handler.LedgerHandler
	Admin   *handler.AdminHandler
	Hooks   *handler.HookHandler
	Health  *handler.HealthHandler
}

// Guards are the middlewares protecting route groups
type Guards struct {
	Authenticate gin.HandlerFunc
	Webhook      gin.HandlerFunc
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, guards Guards) {
	router.GET("/healthz", h.Health.Health)

	v1 := router.Group("/v1")

	// Public
	v1.POST("/auth/login", h.Auth.Login)
	v1.POST("/customers/register", h.Auth.Register)
	v1.POST("/hooks/contact-verified", guards.Webhook, h.Hooks.ContactVerified)

	authed := v1.Group("", guards.Authenticate)
	{
		me := authed.Group("/me")
		me.GET("", h.Account.GetProfile)
		me.PATCH("/profile", h.Account.UpdateProfile)
		me.GET("/transactions", h.Account.CustomerTransactions)

		ledger := authed.Group("/ledger")
		ledger.POST("/credit", h.Ledger.Credit)
		ledger.POST("/redeem", h.Ledger.Redeem)

		manager := authed.Group("/manager")
		manager.GET("/bunk", h.Account.AssignedBunk)
		manager.GET("/transactions", h.Account.ManagerTransactions)

		admin := authed.Group("/admin")
		admin.POST("/bunks", h.Admin.CreateBunk)
		admin.GET("/bunks", h.Admin.ListBunks)
		admin.DELETE("/bunks/:bunkId", h.Admin.DeleteBunk)
		admin.POST("/bunks/:bunkId/managers", h.Admin.AssignManager)
		admin.DELETE("/bunks/:bunkId/managers/:managerUid", h.Admin.UnassignManager)
		admin.PUT("/users/:uid/role", h.Admin.SetUserRole)
		admin.PATCH("/users/:uid/profile", h.Account.UpdateProfile)
		admin.DELETE("/users/:uid", h.Admin.DeleteUser)
		admin.GET("/config", h.Admin.GetConfig)
		admin.PATCH("/config", h.Admin.UpdateConfig)
		admin.GET("/transactions", h.Admin.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API. extra runs
// after logging, e.g. the metrics middleware.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, ids coreport.IDGenerator, extra ...gin.HandlerFunc) {
	router.Use(middleware.RequestID(ids))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(extra...)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errs.WithMessage(errs.ErrNotFound, "route not found")))
	})
}

// CORSOptions mirrors the cors section of the config
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// WithCORS wraps the engine so preflight requests never reach gin routing
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   opts.AllowedMethods,
		AllowedHeaders:   opts.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: opts.AllowCredentials,
		MaxAge:           opts.MaxAge,
	})(next)
}
