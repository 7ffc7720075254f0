package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/metrics"
	"github.com/freteops/frete-service/internal/tabular"
)

const naoAtende = "Não atende"

// formatBRL renders a cost the way the exported reports always have:
// Brazilian currency with a comma decimal ("R$ 1.234,56").
func formatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, b.String(), fracPart)
}

func vencedorLabel(cell model.PivotCell) string {
	switch {
	case cell.IsMaisBarato:
		return "Mais Barato"
	case cell.IsMaisRapido:
		return "Mais Rápido"
	case cell.Atende:
		return "Atende"
	default:
		return naoAtende
	}
}

// ExportFilename builds the timestamped attachment name for a report kind,
// e.g. pedidos_leilao_2026-08-31T12-34-56.xlsx.
func ExportFilename(kind string, at time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", kind, at.UTC().Format("2006-01-02T15-04-05"))
}

// BuildLeilaoWorkbook renders batch auction outcomes as a two-sheet
// workbook: "Leilão" pivots one row per order with a Frete/Prazo/Vencedor
// column triplet per carrier, "Detalhes" lists every (order, carrier)
// offer flat. Failed slots are skipped; orders nobody serves still get a
// row of "Não atende" cells.
func BuildLeilaoWorkbook(outcomes []model.LeilaoOutcome) ([]byte, error) {
	pivot := BuildPivot(PivotRowsFromOutcomes(outcomes))

	header := []string{"Pedido ID", "Cliente", "CEP", "UF"}
	widths := []float64{15, 25, 12, 5}
	for _, t := range pivot.Transportadoras {
		header = append(header, t+" - Frete", t+" - Prazo", t+" - Vencedor")
		widths = append(widths, 15, 12, 15)
	}

	var leilaoRows [][]interface{}
	var detalheRows [][]interface{}
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		p := o.Pedido

		row := []interface{}{p.PedidoID, p.Cliente, p.CEP, p.UF}
		for _, t := range pivot.Transportadoras {
			cell := pivot.Cell(p.Chave(), t)
			if cell.Atende {
				row = append(row, formatBRL(*cell.Frete), fmt.Sprintf("%d dia(s)", *cell.Prazo), vencedorLabel(cell))
			} else {
				row = append(row, naoAtende, naoAtende, naoAtende)
			}
		}
		leilaoRows = append(leilaoRows, row)

		for _, t := range o.Result.Transportadoras {
			detalheRows = append(detalheRows, []interface{}{
				p.PedidoID, p.Cliente, p.CEP, p.UF,
				t.Transportadora, t.Frete, t.Prazo,
				simNao(t.IsMaisBarato), simNao(t.IsMaisRapido),
			})
		}
	}

	sheets := []tabular.Sheet{
		{
			Name:   "Leilão",
			Header: header,
			Rows:   leilaoRows,
			Widths: widths,
		},
		{
			Name:   "Detalhes",
			Header: []string{"Pedido ID", "Cliente", "CEP", "UF", "Transportadora", "Frete", "Prazo (dias)", "Mais Barato", "Mais Rápido"},
			Rows:   detalheRows,
			Widths: []float64{15, 25, 12, 5, 25, 15, 12, 12, 12},
		},
	}

	var buf bytes.Buffer
	if err := tabular.EncodeWorkbook(&buf, sheets); err != nil {
		metrics.RecordExport("leilao", "error")
		return nil, err
	}
	metrics.RecordExport("leilao", "success")
	return buf.Bytes(), nil
}

// BuildCatalogWorkbook renders the freight catalog comparison matrix with
// the same column triplet shape as the auction sheet, keyed by CEP.
func BuildCatalogWorkbook(fretes []model.Frete) ([]byte, error) {
	pivot := BuildPivot(PivotRowsFromFretes(fretes))

	ufByCEP := make(map[string]string, len(fretes))
	for _, f := range fretes {
		if _, ok := ufByCEP[f.CEP]; !ok {
			ufByCEP[f.CEP] = f.UF
		}
	}

	header := []string{"CEP", "UF"}
	widths := []float64{12, 5}
	for _, t := range pivot.Transportadoras {
		header = append(header, t+" - Frete", t+" - Prazo", t+" - Vencedor")
		widths = append(widths, 15, 12, 15)
	}

	rows := make([][]interface{}, 0, len(pivot.Chaves))
	for _, cep := range pivot.Chaves {
		row := []interface{}{cep, ufByCEP[cep]}
		for _, t := range pivot.Transportadoras {
			cell := pivot.Cell(cep, t)
			if cell.Atende {
				row = append(row, formatBRL(*cell.Frete), fmt.Sprintf("%d dia(s)", *cell.Prazo), vencedorLabel(cell))
			} else {
				row = append(row, naoAtende, naoAtende, naoAtende)
			}
		}
		rows = append(rows, row)
	}

	sheets := []tabular.Sheet{
		{
			Name:   "Fretes",
			Header: header,
			Rows:   rows,
			Widths: widths,
		},
	}

	var buf bytes.Buffer
	if err := tabular.EncodeWorkbook(&buf, sheets); err != nil {
		metrics.RecordExport("catalogo", "error")
		return nil, err
	}
	metrics.RecordExport("catalogo", "success")
	return buf.Bytes(), nil
}

func simNao(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}
