// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/freteops/frete-service/config"
	"github.com/freteops/frete-service/internal/circuitbreaker"
	"github.com/freteops/frete-service/internal/repository"
	"github.com/freteops/frete-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	FreteRepo             repository.FreteRepositoryInterface
	PedidoRepo            repository.PedidoRepositoryInterface
	LoggingService        service.LoggingService
	FretesCircuitBreaker  *circuitbreaker.CircuitBreaker
	PedidosCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	UserRepo              repository.UserRepositoryInterface
	TokenRepo             repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, chunkSize int) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	fretesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-fretes",
	})

	pedidosCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-pedidos",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	freteRepo := repository.NewFreteRepository(db, chunkSize)
	freteRepoWithCB := repository.NewFreteRepositoryWithCircuitBreaker(freteRepo, fretesCB)

	pedidoRepo := repository.NewPedidoRepository(db, chunkSize)
	pedidoRepoWithCB := repository.NewPedidoRepositoryWithCircuitBreaker(pedidoRepo, pedidosCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Bootstrap the admin account when one is configured
	if err := initializeDefaultAdmin(userRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default admin user")
	}

	return &DatabaseComponents{
		DB:                    db,
		FreteRepo:             freteRepoWithCB,
		PedidoRepo:            pedidoRepoWithCB,
		LoggingService:        loggingService,
		FretesCircuitBreaker:  fretesCB,
		PedidosCircuitBreaker: pedidosCB,
		LogsCircuitBreaker:    logsCB,
		UserRepo:              userRepo,
		TokenRepo:             tokenRepo,
	}
}
