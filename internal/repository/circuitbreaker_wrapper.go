// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/freteops/frete-service/internal/circuitbreaker"
	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

// FreteRepositoryWithCircuitBreaker wraps FreteRepository with circuit breaker protection.
type FreteRepositoryWithCircuitBreaker struct {
	repo           *FreteRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFreteRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFreteRepositoryWithCircuitBreaker(repo *FreteRepository, cb *circuitbreaker.CircuitBreaker) *FreteRepositoryWithCircuitBreaker {
	return &FreteRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListWithFilters lists freight quotes with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) ListWithFilters(ctx context.Context, filter dto.FreteFilter, s *dto.Sort) ([]model.Frete, error) {
	var result []model.Frete
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListWithFilters(ctx, filter, s)
		return cbErr
	})
	return result, err
}

// ListByCEP lists quotes for a destination with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) ListByCEP(ctx context.Context, cep string) ([]model.Frete, error) {
	var result []model.Frete
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByCEP(ctx, cep)
		return cbErr
	})
	return result, err
}

// DistinctUFs returns the state set with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) DistinctUFs(ctx context.Context) ([]string, error) {
	var result []string
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DistinctUFs(ctx)
		return cbErr
	})
	return result, err
}

// DistinctTransportadoras returns the carrier set with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) DistinctTransportadoras(ctx context.Context) ([]string, error) {
	var result []string
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DistinctTransportadoras(ctx)
		return cbErr
	})
	return result, err
}

// InsertBatch inserts quotes with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) InsertBatch(ctx context.Context, fretes []model.Frete) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.InsertBatch(ctx, fretes)
		return cbErr
	})
	return result, err
}

// DeleteByUF removes quotes for a state with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DeleteByUF(ctx, uf)
		return cbErr
	})
	return result, err
}

// DeleteByTransportadora removes quotes for a carrier with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) DeleteByTransportadora(ctx context.Context, transportadora string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DeleteByTransportadora(ctx, transportadora)
		return cbErr
	})
	return result, err
}

// SummaryByUF runs the per-state aggregation with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) SummaryByUF(ctx context.Context) ([]model.FreteSummary, error) {
	var result []model.FreteSummary
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SummaryByUF(ctx)
		return cbErr
	})
	return result, err
}

// SummaryByTransportadora runs the per-carrier aggregation with circuit breaker protection.
func (r *FreteRepositoryWithCircuitBreaker) SummaryByTransportadora(ctx context.Context) ([]model.TransportadoraSummary, error) {
	var result []model.TransportadoraSummary
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SummaryByTransportadora(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FreteRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PedidoRepositoryWithCircuitBreaker wraps PedidoRepository with circuit breaker protection.
type PedidoRepositoryWithCircuitBreaker struct {
	repo           *PedidoRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPedidoRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPedidoRepositoryWithCircuitBreaker(repo *PedidoRepository, cb *circuitbreaker.CircuitBreaker) *PedidoRepositoryWithCircuitBreaker {
	return &PedidoRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListWithFilters lists orders with circuit breaker protection.
func (r *PedidoRepositoryWithCircuitBreaker) ListWithFilters(ctx context.Context, filter dto.PedidoFilter, s *dto.Sort) ([]model.Pedido, error) {
	var result []model.Pedido
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListWithFilters(ctx, filter, s)
		return cbErr
	})
	return result, err
}

// InsertBatch inserts orders with circuit breaker protection.
func (r *PedidoRepositoryWithCircuitBreaker) InsertBatch(ctx context.Context, pedidos []model.Pedido) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.InsertBatch(ctx, pedidos)
		return cbErr
	})
	return result, err
}

// DeleteByUF removes orders for a state with circuit breaker protection.
func (r *PedidoRepositoryWithCircuitBreaker) DeleteByUF(ctx context.Context, uf string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DeleteByUF(ctx, uf)
		return cbErr
	})
	return result, err
}

// DeleteAll removes every order with circuit breaker protection.
func (r *PedidoRepositoryWithCircuitBreaker) DeleteAll(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DeleteAll(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PedidoRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
