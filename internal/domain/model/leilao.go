package model

// TransportadoraFrete is one carrier's best offer for a destination, with the
// auction flags filled in. Flags are computed only across carriers that serve
// the destination; all carriers tied at the minimum are flagged.
type TransportadoraFrete struct {
	Transportadora string  `json:"transportadora"`
	Frete          float64 `json:"frete"`
	Prazo          int     `json:"prazo"`
	IsMaisBarato   bool    `json:"isMaisBarato"`
	IsMaisRapido   bool    `json:"isMaisRapido"`
	Atende         bool    `json:"atende"`
}

// LeilaoResult is the outcome of a freight auction for one order.
//
// VencedorMaisBarato and VencedorMaisRapido name the first carrier found at
// the respective minimum in resolution order; they are empty when no carrier
// serves the destination. Resolution order follows store row order, so the
// single-name winner under a tie depends on insertion order.
type LeilaoResult struct {
	Pedido             Pedido                `json:"pedido"`
	Transportadoras    []TransportadoraFrete `json:"transportadoras"`
	VencedorMaisBarato string                `json:"vencedorMaisBarato,omitempty"`
	VencedorMaisRapido string                `json:"vencedorMaisRapido,omitempty"`
}

// Atendido reports whether at least one carrier serves the order destination.
func (r LeilaoResult) Atendido() bool {
	return len(r.Transportadoras) > 0
}

// LeilaoOutcome is one slot of a batch auction: either a result or that
// order's failure. Slots are positioned by input order, so one bad
// destination never discards the other results.
type LeilaoOutcome struct {
	Pedido Pedido        `json:"pedido"`
	Result *LeilaoResult `json:"result,omitempty"`
	Err    string        `json:"error,omitempty"`
}

// OK reports whether the slot carries a result.
func (o LeilaoOutcome) OK() bool {
	return o.Result != nil
}
