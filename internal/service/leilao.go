package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/metrics"
	"github.com/freteops/frete-service/internal/repository"
	"github.com/freteops/frete-service/internal/service/cache"
)

// LeilaoService runs freight auctions: it resolves the carriers serving a
// destination and flags the cheapest and fastest offers.
type LeilaoService struct {
	freteRepo       repository.FreteRepositoryInterface
	resolutionCache cache.Cache
	parallelism     int
}

// NewLeilaoService creates an auction service. parallelism bounds how many
// destinations a batch resolves concurrently; values below 1 mean serial.
func NewLeilaoService(freteRepo repository.FreteRepositoryInterface, parallelism int) *LeilaoService {
	return NewLeilaoServiceWithCache(freteRepo, nil, parallelism)
}

// NewLeilaoServiceWithCache creates an auction service backed by a resolution
// cache. A nil cache disables caching.
func NewLeilaoServiceWithCache(freteRepo repository.FreteRepositoryInterface, resolutionCache cache.Cache, parallelism int) *LeilaoService {
	if parallelism < 1 {
		parallelism = 1
	}
	return &LeilaoService{
		freteRepo:       freteRepo,
		resolutionCache: resolutionCache,
		parallelism:     parallelism,
	}
}

// ResolveForCEP returns one offer per carrier for the destination, in the
// order carriers are first seen in the store. When a carrier quotes the
// same CEP more than once only a strictly lower cost replaces the kept
// offer, so the first-seen quote wins cost ties.
func (s *LeilaoService) ResolveForCEP(ctx context.Context, cep string) ([]model.TransportadoraFrete, error) {
	if s.resolutionCache != nil {
		if offers, ok := s.resolutionCache.Get(cep); ok {
			return offers, nil
		}
	}

	fretes, err := s.freteRepo.ListByCEP(ctx, cep)
	if err != nil {
		return nil, err
	}

	resolved := resolveFretes(fretes)
	if s.resolutionCache != nil {
		s.resolutionCache.Set(cep, resolved)
	}
	return resolved, nil
}

// InvalidateResolutions drops all cached resolutions. Call it after catalog
// writes so auctions do not serve offers from before the import.
func (s *LeilaoService) InvalidateResolutions() {
	if s.resolutionCache != nil {
		s.resolutionCache.Clear()
	}
}

func resolveFretes(fretes []model.Frete) []model.TransportadoraFrete {
	index := make(map[string]int, len(fretes))
	resolved := make([]model.TransportadoraFrete, 0, len(fretes))
	for _, f := range fretes {
		nome := f.NomeTransportadora()
		if i, seen := index[nome]; seen {
			if f.Frete < resolved[i].Frete {
				resolved[i].Frete = f.Frete
				resolved[i].Prazo = f.Prazo
			}
			continue
		}
		index[nome] = len(resolved)
		resolved = append(resolved, model.TransportadoraFrete{
			Transportadora: nome,
			Frete:          f.Frete,
			Prazo:          f.Prazo,
			Atende:         true,
		})
	}
	return resolved
}

// marcarVencedores flags every offer tied at the minimum cost and at the
// minimum lead time, and returns the first carrier found at each minimum.
func marcarVencedores(resolved []model.TransportadoraFrete) (maisBarato, maisRapido string) {
	if len(resolved) == 0 {
		return "", ""
	}

	minFrete := resolved[0].Frete
	minPrazo := resolved[0].Prazo
	for _, r := range resolved[1:] {
		if r.Frete < minFrete {
			minFrete = r.Frete
		}
		if r.Prazo < minPrazo {
			minPrazo = r.Prazo
		}
	}

	for i := range resolved {
		resolved[i].IsMaisBarato = resolved[i].Frete == minFrete
		resolved[i].IsMaisRapido = resolved[i].Prazo == minPrazo
		if maisBarato == "" && resolved[i].IsMaisBarato {
			maisBarato = resolved[i].Transportadora
		}
		if maisRapido == "" && resolved[i].IsMaisRapido {
			maisRapido = resolved[i].Transportadora
		}
	}
	return maisBarato, maisRapido
}

// RunAuction auctions a single order across all carriers quoting its CEP.
// An order nobody serves still yields a result: empty carriers, no winners.
func (s *LeilaoService) RunAuction(ctx context.Context, pedido model.Pedido) (*model.LeilaoResult, error) {
	start := time.Now()

	resolved, err := s.ResolveForCEP(ctx, pedido.CEP)
	if err != nil {
		metrics.RecordAuction(time.Since(start), "error")
		return nil, err
	}

	result := buildResult(pedido, resolved)
	metrics.RecordAuction(time.Since(start), "success")
	return result, nil
}

func buildResult(pedido model.Pedido, resolved []model.TransportadoraFrete) *model.LeilaoResult {
	// Copy before flagging so memoized resolutions stay clean.
	transportadoras := make([]model.TransportadoraFrete, len(resolved))
	copy(transportadoras, resolved)

	maisBarato, maisRapido := marcarVencedores(transportadoras)
	return &model.LeilaoResult{
		Pedido:             pedido,
		Transportadoras:    transportadoras,
		VencedorMaisBarato: maisBarato,
		VencedorMaisRapido: maisRapido,
	}
}

// RunAuctionBatch auctions many orders. Destinations resolve concurrently,
// bounded by the configured parallelism, and each unique CEP is resolved
// once. The returned slice has one slot per input order in input order;
// a failing destination fills its slots with the error and never touches
// the others.
func (s *LeilaoService) RunAuctionBatch(ctx context.Context, pedidos []model.Pedido) []model.LeilaoOutcome {
	metrics.AuctionBatchSize.Observe(float64(len(pedidos)))
	if len(pedidos) == 0 {
		return []model.LeilaoOutcome{}
	}

	type resolution struct {
		offers []model.TransportadoraFrete
		err    error
	}

	ceps := make([]string, 0, len(pedidos))
	seen := make(map[string]struct{}, len(pedidos))
	for _, p := range pedidos {
		if _, ok := seen[p.CEP]; ok {
			continue
		}
		seen[p.CEP] = struct{}{}
		ceps = append(ceps, p.CEP)
	}

	resolutions := make([]resolution, len(ceps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, cep := range ceps {
		g.Go(func() error {
			offers, err := s.ResolveForCEP(gctx, cep)
			resolutions[i] = resolution{offers: offers, err: err}
			// Errors stay in the slot; the group never aborts.
			return nil
		})
	}
	_ = g.Wait()

	byCEP := make(map[string]resolution, len(ceps))
	for i, cep := range ceps {
		byCEP[cep] = resolutions[i]
	}

	outcomes := make([]model.LeilaoOutcome, len(pedidos))
	for i, p := range pedidos {
		res := byCEP[p.CEP]
		if res.err != nil {
			metrics.AuctionsTotal.WithLabelValues("error").Inc()
			outcomes[i] = model.LeilaoOutcome{Pedido: p, Err: res.err.Error()}
			continue
		}
		metrics.AuctionsTotal.WithLabelValues("success").Inc()
		outcomes[i] = model.LeilaoOutcome{Pedido: p, Result: buildResult(p, res.offers)}
	}
	return outcomes
}
