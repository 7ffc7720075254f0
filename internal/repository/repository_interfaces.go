// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
)

// FreteRepositoryInterface defines the interface for freight quote repository operations.
type FreteRepositoryInterface interface {
	ListWithFilters(ctx context.Context, filter dto.FreteFilter, s *dto.Sort) ([]model.Frete, error)
	ListByCEP(ctx context.Context, cep string) ([]model.Frete, error)
	DistinctUFs(ctx context.Context) ([]string, error)
	DistinctTransportadoras(ctx context.Context) ([]string, error)
	InsertBatch(ctx context.Context, fretes []model.Frete) (int, error)
	DeleteByUF(ctx context.Context, uf string) (int64, error)
	DeleteByTransportadora(ctx context.Context, transportadora string) (int64, error)
	SummaryByUF(ctx context.Context) ([]model.FreteSummary, error)
	SummaryByTransportadora(ctx context.Context) ([]model.TransportadoraSummary, error)
}

// PedidoRepositoryInterface defines the interface for order repository operations.
type PedidoRepositoryInterface interface {
	ListWithFilters(ctx context.Context, filter dto.PedidoFilter, s *dto.Sort) ([]model.Pedido, error)
	InsertBatch(ctx context.Context, pedidos []model.Pedido) (int, error)
	DeleteByUF(ctx context.Context, uf string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
