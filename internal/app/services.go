// Package app provides service initialization.
package app

import (
	"github.com/freteops/frete-service/config"
	"github.com/freteops/frete-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Ingest  *service.IngestService
	Leilao  *service.LeilaoService
	Summary *service.SummaryService
}

// InitializeServices initializes business logic services on top of the
// database components. Returns nil when the database is unavailable,
// since every freight service reads or writes the catalog.
func InitializeServices(dbComponents *DatabaseComponents, cfg config.Config) *ServiceComponents {
	if dbComponents == nil {
		return nil
	}

	ingest := service.NewIngestService(dbComponents.FreteRepo, dbComponents.PedidoRepo)

	var leilao *service.LeilaoService
	if cfg.Cache.Size > 0 {
		resolutionCache := service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
		leilao = service.NewLeilaoServiceWithCache(dbComponents.FreteRepo, resolutionCache, cfg.Freight.AuctionParallelism)
	} else {
		leilao = service.NewLeilaoService(dbComponents.FreteRepo, cfg.Freight.AuctionParallelism)
	}

	summary := service.NewSummaryService(dbComponents.FreteRepo, cfg.Freight.SummaryMode)

	return &ServiceComponents{
		Ingest:  ingest,
		Leilao:  leilao,
		Summary: summary,
	}
}
