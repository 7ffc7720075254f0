// Package service contains the business logic for the freight service.
package service

import (
	"context"
	"sort"

	"github.com/freteops/frete-service/config"
	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/repository"
)

// SummarizeByUF groups quotes by state and returns destination counts and
// cost/lead-time means. Groups with no quotes never appear; emission order
// is unspecified.
func SummarizeByUF(fretes []model.Frete) []model.FreteSummary {
	type acc struct {
		count     int
		somaFrete float64
		somaPrazo float64
	}
	groups := make(map[string]*acc)
	for _, f := range fretes {
		g := groups[f.UF]
		if g == nil {
			g = &acc{}
			groups[f.UF] = g
		}
		g.count++
		g.somaFrete += f.Frete
		g.somaPrazo += float64(f.Prazo)
	}

	summaries := make([]model.FreteSummary, 0, len(groups))
	for uf, g := range groups {
		summaries = append(summaries, model.FreteSummary{
			UF:         uf,
			QtdCEPs:    g.count,
			MediaFrete: g.somaFrete / float64(g.count),
			MediaPrazo: g.somaPrazo / float64(g.count),
		})
	}
	return summaries
}

// SummarizeByTransportadora groups quotes by carrier. Unnamed carriers
// group under the "Não informado" sentinel. Each summary carries the
// sorted set of states the carrier serves.
func SummarizeByTransportadora(fretes []model.Frete) []model.TransportadoraSummary {
	type acc struct {
		count     int
		somaFrete float64
		somaPrazo float64
		ufs       map[string]struct{}
	}
	groups := make(map[string]*acc)
	for _, f := range fretes {
		nome := f.NomeTransportadora()
		g := groups[nome]
		if g == nil {
			g = &acc{ufs: make(map[string]struct{})}
			groups[nome] = g
		}
		g.count++
		g.somaFrete += f.Frete
		g.somaPrazo += float64(f.Prazo)
		g.ufs[f.UF] = struct{}{}
	}

	summaries := make([]model.TransportadoraSummary, 0, len(groups))
	for nome, g := range groups {
		ufs := make([]string, 0, len(g.ufs))
		for uf := range g.ufs {
			ufs = append(ufs, uf)
		}
		sort.Strings(ufs)
		summaries = append(summaries, model.TransportadoraSummary{
			Transportadora: nome,
			QtdCEPs:        g.count,
			MediaFrete:     g.somaFrete / float64(g.count),
			MediaPrazo:     g.somaPrazo / float64(g.count),
			UFs:            ufs,
		})
	}
	return summaries
}

// SummaryService computes catalog summaries using one of two strategies:
// the server tier pushes the grouping into Mongo aggregation pipelines,
// the client tier lists the rows and groups in-process. The tier is fixed
// by configuration, never chosen per-request.
type SummaryService struct {
	repo repository.FreteRepositoryInterface
	mode string
}

// NewSummaryService creates a summary service with the configured tier.
func NewSummaryService(repo repository.FreteRepositoryInterface, mode string) *SummaryService {
	return &SummaryService{repo: repo, mode: mode}
}

// ByUF returns the per-state summary.
func (s *SummaryService) ByUF(ctx context.Context) ([]model.FreteSummary, error) {
	if s.mode != config.SummaryModeClient {
		return s.repo.SummaryByUF(ctx)
	}
	fretes, err := s.repo.ListWithFilters(ctx, dto.FreteFilter{}, nil)
	if err != nil {
		return nil, err
	}
	return SummarizeByUF(fretes), nil
}

// ByTransportadora returns the per-carrier summary.
func (s *SummaryService) ByTransportadora(ctx context.Context) ([]model.TransportadoraSummary, error) {
	if s.mode != config.SummaryModeClient {
		return s.repo.SummaryByTransportadora(ctx)
	}
	fretes, err := s.repo.ListWithFilters(ctx, dto.FreteFilter{}, nil)
	if err != nil {
		return nil, err
	}
	return SummarizeByTransportadora(fretes), nil
}
