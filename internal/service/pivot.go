package service

import (
	"sort"

	"github.com/freteops/frete-service/internal/domain/model"
)

// BuildPivot turns flat rows into a dense destinations × carriers matrix.
// Destination keys and carrier names come out sorted, so two runs over the
// same rows always produce identical output. Duplicate (destination,
// carrier) rows keep the cheapest offer, first seen winning cost ties,
// mirroring quote resolution.
func BuildPivot(rows []model.PivotRow) model.Pivot {
	type key struct{ chave, transportadora string }

	best := make(map[key]model.PivotRow)
	chaveSet := make(map[string]struct{})
	carrierSet := make(map[string]struct{})
	for _, row := range rows {
		if row.Transportadora == "" {
			row.Transportadora = model.TransportadoraNaoInformada
		}
		chaveSet[row.Chave] = struct{}{}
		carrierSet[row.Transportadora] = struct{}{}

		k := key{row.Chave, row.Transportadora}
		if kept, ok := best[k]; !ok || row.Frete < kept.Frete {
			best[k] = row
		}
	}

	chaves := make([]string, 0, len(chaveSet))
	for c := range chaveSet {
		chaves = append(chaves, c)
	}
	sort.Strings(chaves)

	transportadoras := make([]string, 0, len(carrierSet))
	for t := range carrierSet {
		transportadoras = append(transportadoras, t)
	}
	sort.Strings(transportadoras)

	cells := make(map[string]map[string]model.PivotCell, len(chaves))
	for _, chave := range chaves {
		row := make(map[string]model.PivotCell, len(transportadoras))

		// Per-destination minimums over serving carriers only.
		minFrete, minPrazo := 0.0, 0
		first := true
		for _, t := range transportadoras {
			offer, ok := best[key{chave, t}]
			if !ok {
				continue
			}
			if first || offer.Frete < minFrete {
				minFrete = offer.Frete
			}
			if first || offer.Prazo < minPrazo {
				minPrazo = offer.Prazo
			}
			first = false
		}

		for _, t := range transportadoras {
			offer, ok := best[key{chave, t}]
			if !ok {
				row[t] = model.PivotCell{}
				continue
			}
			frete := offer.Frete
			prazo := offer.Prazo
			row[t] = model.PivotCell{
				Atende:       true,
				Frete:        &frete,
				Prazo:        &prazo,
				IsMaisBarato: frete == minFrete,
				IsMaisRapido: prazo == minPrazo,
			}
		}
		cells[chave] = row
	}

	return model.Pivot{
		Chaves:          chaves,
		Transportadoras: transportadoras,
		Cells:           cells,
	}
}

// PivotRowsFromFretes adapts stored quotes to pivot rows, keyed by CEP.
func PivotRowsFromFretes(fretes []model.Frete) []model.PivotRow {
	rows := make([]model.PivotRow, 0, len(fretes))
	for _, f := range fretes {
		rows = append(rows, model.PivotRow{
			Chave:          f.CEP,
			UF:             f.UF,
			Transportadora: f.NomeTransportadora(),
			Frete:          f.Frete,
			Prazo:          f.Prazo,
		})
	}
	return rows
}

// PivotRowsFromOutcomes adapts batch auction outcomes to pivot rows, keyed
// by order id with CEP fallback. Failed slots and unserved orders add no
// rows; their keys simply have no serving carriers in the matrix.
func PivotRowsFromOutcomes(outcomes []model.LeilaoOutcome) []model.PivotRow {
	var rows []model.PivotRow
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		for _, t := range o.Result.Transportadoras {
			rows = append(rows, model.PivotRow{
				Chave:          o.Pedido.Chave(),
				UF:             o.Pedido.UF,
				Transportadora: t.Transportadora,
				Frete:          t.Frete,
				Prazo:          t.Prazo,
			})
		}
	}
	return rows
}
