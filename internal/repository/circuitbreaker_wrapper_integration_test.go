//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freteops/frete-service/internal/circuitbreaker"
	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

func TestFreteRepositoryWithCircuitBreaker_InsertAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewFreteRepository(db, 1000)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewFreteRepositoryWithCircuitBreaker(repo, cb)

	fretes := []model.Frete{
		{CEP: "01000", UF: "SP", Transportadora: "Acme", Frete: 10, Prazo: 3},
		{CEP: "20000", UF: "RJ", Transportadora: "Beta", Frete: 12, Prazo: 5},
	}
	inserted, err := wrappedRepo.InsertBatch(ctx, fretes)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// List via circuit breaker wrapper
	listed, err := wrappedRepo.ListWithFilters(ctx, dto.FreteFilter{UFs: []string{"SP"}}, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].Transportadora)
}

func TestFreteRepositoryWithCircuitBreaker_Summaries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewFreteRepository(db, 1000)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewFreteRepositoryWithCircuitBreaker(repo, cb)

	_, err := wrappedRepo.InsertBatch(ctx, []model.Frete{
		{CEP: "01000", UF: "SP", Transportadora: "Acme", Frete: 10, Prazo: 2},
		{CEP: "02000", UF: "SP", Transportadora: "Acme", Frete: 20, Prazo: 4},
		{CEP: "20000", UF: "RJ", Transportadora: "Beta", Frete: 30, Prazo: 6},
	})
	require.NoError(t, err)

	byUF, err := wrappedRepo.SummaryByUF(ctx)
	require.NoError(t, err)
	assert.Len(t, byUF, 2)

	byCarrier, err := wrappedRepo.SummaryByTransportadora(ctx)
	require.NoError(t, err)
	require.Len(t, byCarrier, 2)
}

func TestFreteRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewFreteRepository(db, 1000)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewFreteRepositoryWithCircuitBreaker(repo, cb)

	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}

func TestPedidoRepositoryWithCircuitBreaker_InsertAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPedidoRepository(db, 1000)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewPedidoRepositoryWithCircuitBreaker(repo, cb)

	inserted, err := wrappedRepo.InsertBatch(ctx, []model.Pedido{
		{CEP: "01000", UF: "SP", PedidoID: "PED-1"},
		{CEP: "20000", UF: "RJ", PedidoID: "PED-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	deleted, err := wrappedRepo.DeleteByUF(ctx, "SP")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := wrappedRepo.ListWithFilters(ctx, dto.PedidoFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	total, err := wrappedRepo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestLogsRepositoryWithCircuitBreaker_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	entries := []*LogEntryDocument{
		{
			Level:     "info",
			Message:   "Entry 1",
			RequestID: "req-1",
			Timestamp: time.Now(),
		},
		{
			Level:     "error",
			Message:   "Entry 2",
			RequestID: "req-2",
			Timestamp: time.Now(),
		},
	}

	err := wrappedRepo.CreateMany(ctx, entries)
	assert.NoError(t, err)
}

func TestLogsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	entry := &LogEntryDocument{
		Level:      "info",
		Message:    "Test query",
		RequestID:  "query-test-id",
		ActionType: "upload_fretes",
		Timestamp:  time.Now(),
	}
	_ = wrappedRepo.Create(ctx, entry)

	// Query via circuit breaker wrapper
	entries, err := wrappedRepo.Query(ctx, LogQueryOptions{RequestID: "query-test-id"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 1)

	// Audit-trail filter
	byAction, err := wrappedRepo.Query(ctx, LogQueryOptions{ActionType: "upload_fretes"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(byAction), 1)
}

func TestLogsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "info",
		Message:   "Count test 1",
		Timestamp: time.Now(),
	})
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "error",
		Message:   "Count test 2",
		Timestamp: time.Now(),
	})

	// Count via circuit breaker wrapper
	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(2))

	// Count with filter
	countFiltered, err := wrappedRepo.Count(ctx, LogQueryOptions{Level: "info"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countFiltered, int64(1))
}

func TestLogsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}
