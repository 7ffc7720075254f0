// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/freteops/frete-service/config"
	"github.com/freteops/frete-service/internal/http"
	"github.com/freteops/frete-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var handler *http.Handler
	if services != nil && dbComponents != nil {
		handler = http.NewHandler(
			dbComponents.FreteRepo,
			dbComponents.PedidoRepo,
			services.Ingest,
			services.Leilao,
			services.Summary,
			http.WithSummaryCacheTTL(cfg.Freight.SummaryCacheTTL),
		)
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers and the database ping for health monitoring
	if dbComponents != nil {
		if dbComponents.FretesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_fretes", dbComponents.FretesCircuitBreaker)
		}
		if dbComponents.PedidosCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_pedidos", dbComponents.PedidosCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return db.HealthCheck(ctx)
			}))
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.UserRepo != nil && dbComponents.TokenRepo != nil {
			authService = service.NewAuthService(
				dbComponents.UserRepo,
				dbComponents.TokenRepo,
				cfg.Auth,
			)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		AuthService:       authService,
	}
	if dbComponents != nil {
		routerCfg.UserRepo = dbComponents.UserRepo
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
