// Package app wires configuration, adapters and use cases into a runnable
// HTTP service
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Option customizes New
type Option func(*options)

type options struct {
	timeProvider coreport.TimeProvider
	bcryptCost   int
}

// WithTimeProvider replaces the wall clock
func WithTimeProvider(tp coreport.TimeProvider) Option {
	return func(o *options) { o.timeProvider = tp }
}

// WithBcryptCost sets the password hashing cost
func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

// App holds the wired service
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	DB           *database.Manager
	UoW          persistence.UnitOfWork
	Identities   *identity.Provider
	Issuer       *auth.JWTIssuer
	Revoker      identityport.SessionRevoker
	Metrics      *metrics.Metrics

	Ledger  *ledger.Service
	Admin   *admin.Service
	Account *account.Service
	Session *session.Service

	router  *gin.Engine
	closers []func() error
}

// NewLogger builds the zap logger described by the logger section
func NewLogger(cfg *config.Config) (coreport.Logger, error) {
	return logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
		Compress:   cfg.Logger.Compress,
		CallerInfo: cfg.Logger.CallerInfo,
	})
}

// New connects to the database and wires every component. It does not
// migrate or seed.
func New(ctx context.Context, cfg *config.Config, log coreport.Logger, opts ...Option) (*App, error) {
	o := options{bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeProvider == nil {
		o.timeProvider = timeprovider.NewRealTimeProvider()
	}

	a := &App{
		Config:       cfg,
		Logger:       log,
		TimeProvider: o.timeProvider,
	}

	a.DB = database.NewManager(database.CreateConfigFromViperConfig(cfg), log, o.timeProvider)
	if _, err := a.DB.Connect(); err != nil {
		return nil, err
	}
	a.closers = append(a.closers, a.DB.Close)

	if err := a.wire(ctx, o); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, o options) error {
	cfg := a.Config
	tp := a.TimeProvider
	log := a.Logger

	a.UoW = a.DB.CreateUnitOfWork()
	ids := idgen.NewUUIDGenerator()

	identityRepo := repository.NewIdentityRepository(a.DB.DB(), tp, log)
	a.Identities = identity.NewProvider(identityRepo, tp, log, o.bcryptCost)

	issuer, err := auth.NewJWTIssuer(auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	}, tp)
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}
	a.Issuer = issuer

	switch cfg.Auth.RevocationStore {
	case "redis":
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		revoker, err := auth.NewRedisRevoker(dialCtx, auth.RedisOptions{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}, cfg.Auth.TokenTTL, tp)
		if err != nil {
			return err
		}
		a.Revoker = revoker
		a.closers = append(a.closers, revoker.Close)
	default:
		a.Revoker = auth.NewMemoryRevoker(cfg.Auth.TokenTTL, tp)
	}

	var ledgerMetrics coreport.LedgerMetrics = metrics.Noop{}
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New(metrics.Options{Namespace: cfg.Metrics.Namespace})
		ledgerMetrics = a.Metrics
		if sqlDB, err := a.DB.SQLDB(); err == nil {
			if err := a.Metrics.RegisterDBStats(sqlDB, cfg.Database.Database); err != nil {
				log.Warn("Failed to register database stats collector", map[string]any{"error": err.Error()})
			}
		}
	}

	resolver := access.NewResolver(a.UoW, log)
	a.Ledger = ledger.NewService(a.UoW, resolver, ids, tp, ledgerMetrics, log)
	a.Admin = admin.NewService(a.UoW, resolver, a.Identities, a.Revoker, ids, tp, ledgerMetrics, log)
	a.Account = account.NewService(a.UoW, resolver, a.Identities, ids, tp, log)
	a.Session = session.NewService(a.UoW, a.Identities, a.Issuer, log)

	a.router = a.buildRouter(ids)
	return nil
}

func (a *App) buildRouter(ids coreport.IDGenerator) *gin.Engine {
	if a.Config.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	var extra []gin.HandlerFunc
	if a.Metrics != nil {
		extra = append(extra, a.Metrics.Middleware())
	}
	routes.SetupMiddlewares(router, a.Logger, ids, extra...)

	if a.Metrics != nil {
		router.GET(a.Config.Metrics.Path, gin.WrapH(a.Metrics.Handler()))
	}

	routes.SetupRoutes(router, routes.Handlers{
		Auth:    handler.NewAuthHandler(a.Session, a.Account, a.Logger),
		Account: handler.NewAccountHandler(a.Account, a.Logger),
		Ledger:  handler.NewLedgerHandler(a.Ledger, a.Logger),
		Admin:   handler.NewAdminHandler(a.Admin, a.Logger),
		Hooks:   handler.NewHookHandler(a.Account, a.Logger),
		Health:  handler.NewHealthHandler(a.DB, a.Logger),
	}, routes.Guards{
		Authenticate: middleware.Authenticate(a.Issuer, a.Revoker, a.Logger),
		Webhook:      middleware.WebhookSecret(a.Config.Auth.WebhookSecret, a.Logger),
	})
	return router
}

// Handler returns the router wrapped with CORS
func (a *App) Handler() http.Handler {
	c := a.Config.CORS
	return routes.WithCORS(a.router, routes.CORSOptions{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   c.AllowedMethods,
		AllowedHeaders:   c.AllowedHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	})
}

// Migrate applies pending schema migrations
func (a *App) Migrate(ctx context.Context) error {
	return a.DB.MigrationManager().MigrateAll(ctx)
}

// Seed creates the global config and the first admin when missing
func (a *App) Seed(ctx context.Context) error {
	credit, err := decimal.NewFromString(a.Config.Seed.CreditPercentage)
	if err != nil {
		return fmt.Errorf("seed.creditPercentage: %w", err)
	}
	rate, err := decimal.NewFromString(a.Config.Seed.RedemptionRate)
	if err != nil {
		return fmt.Errorf("seed.redemptionRate: %w", err)
	}

	seeder := migration.NewSeeder(a.UoW, a.Identities, a.TimeProvider, a.Logger)
	return seeder.Seed(ctx, migration.SeedData{
		AdminUID:         a.Config.Seed.AdminUID,
		AdminEmail:       a.Config.Seed.AdminEmail,
		AdminPassword:    a.Config.Seed.AdminPassword,
		AdminFirstName:   a.Config.Seed.AdminFirstName,
		AdminLastName:    a.Config.Seed.AdminLastName,
		CreditPercentage: credit,
		RedemptionRate:   rate,
	})
}

// Server builds the http.Server for the configured address and timeouts
func (a *App) Server() *http.Server {
	s := a.Config.Server
	return &http.Server{
		Addr:              net.JoinHostPort(s.Host, strconv.Itoa(s.Port)),
		Handler:           a.Handler(),
		ReadTimeout:       s.ReadTimeout,
		WriteTimeout:      s.WriteTimeout,
		ReadHeaderTimeout: s.ReadHeaderTimeout,
		IdleTimeout:       s.IdleTimeout,
	}
}

// Close releases every resource in reverse order of acquisition
func (a *App) Close() error {
	var errList []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errList = append(errList, err)
		}
	}
	a.closers = nil
	return errors.Join(errList...)
}
