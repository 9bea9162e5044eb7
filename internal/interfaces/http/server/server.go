// Package server assembles the gin engine: middleware chain, repositories,
// services, handlers and routes.
package server

import (
	"fmt"
	"net/http"
	"time"

	financeapp "github.com/contas/backend/internal/application/finance"
	partnerapp "github.com/contas/backend/internal/application/partner"
	"github.com/contas/backend/internal/infrastructure/config"
	"github.com/contas/backend/internal/infrastructure/logger"
	"github.com/contas/backend/internal/infrastructure/persistence"
	"github.com/contas/backend/internal/interfaces/http/dto"
	"github.com/contas/backend/internal/interfaces/http/handler"
	"github.com/contas/backend/internal/interfaces/http/middleware"
	"github.com/contas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options are the dependencies of the engine
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *persistence.Database
	Version string
	// Tracing adds the otelgin middleware. Requires a tracer provider.
	Tracing bool
}

// NewEngine builds the gin engine serving the contas API
func NewEngine(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()
	// amounts are emitted as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Middleware order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Logger - Request-scoped logger and access log
	// 3. Recovery - Catch panics, answer with the error envelope
	// 4. Tracing - Server span per request (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal, "An unexpected error occurred", middleware.GetRequestID(c)))
	}))
	if opts.Tracing {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName))
		engine.Use(middleware.SpanAttributes())
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	counterpartyRepo := persistence.NewGormCounterpartyRepository(opts.DB.DB)
	obligationRepo := persistence.NewGormObligationRepository(opts.DB.DB)

	counterpartyService := partnerapp.NewCounterpartyService(counterpartyRepo)
	obligationService := financeapp.NewObligationService(obligationRepo, counterpartyRepo,
		financeapp.WithMonthlyQuota(cfg.Finance.MonthlyQuota),
	)

	obligationHandler := handler.NewObligationHandler(obligationService)
	counterpartyHandler := handler.NewCounterpartyHandler(counterpartyService, obligationService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, opts.Version, opts.DB)

	engine.NoRoute(systemHandler.NoRoute)
	engine.NoMethod(systemHandler.NoMethod)

	groups := []*router.DomainGroup{
		obligationHandler.Routes(),
		counterpartyHandler.Routes(),
		systemHandler.Routes(),
	}
	r := router.NewRouter(engine)
	for _, group := range groups {
		r.Register(group)
		for _, route := range group.Routes() {
			log.Debug("Route registered",
				zap.String("group", group.Name()),
				zap.String("method", route.Method),
				zap.String("path", route.Path),
			)
		}
	}
	r.Setup()

	return engine, nil
}
