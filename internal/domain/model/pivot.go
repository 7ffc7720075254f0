package model

// PivotCell is one (destination, carrier) slot of a comparison matrix.
// Frete and Prazo are nil when the carrier does not serve the destination,
// and such a cell is never flagged cheapest or fastest.
type PivotCell struct {
	Atende       bool     `json:"atende"`
	Frete        *float64 `json:"frete"`
	Prazo        *int     `json:"prazo"`
	IsMaisBarato bool     `json:"isMaisBarato"`
	IsMaisRapido bool     `json:"isMaisRapido"`
}

// PivotRow is the flat input shape consumed by the pivot builder. Both the
// freight catalog (destination key = CEP) and the auction view (destination
// key = order id, CEP fallback) feed rows through it.
type PivotRow struct {
	Chave          string
	UF             string
	Transportadora string
	Frete          float64
	Prazo          int
}

// Pivot is a dense destinations × carriers comparison matrix.
// Chaves and Transportadoras are sorted ascending; Cells has an entry for
// every (chave, transportadora) pair.
type Pivot struct {
	Chaves          []string                        `json:"chaves"`
	Transportadoras []string                        `json:"transportadoras"`
	Cells           map[string]map[string]PivotCell `json:"cells"`
}

// Cell returns the cell for a (destination, carrier) pair. Unknown pairs
// come back as a non-serving cell.
func (p Pivot) Cell(chave, transportadora string) PivotCell {
	if row, ok := p.Cells[chave]; ok {
		if cell, ok := row[transportadora]; ok {
			return cell
		}
	}
	return PivotCell{}
}
