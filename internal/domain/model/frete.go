// Package model defines the core domain entities for the freight service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransportadoraNaoInformada is the sentinel carrier name used when a quote
// arrives without a carrier. Summaries, resolution and pivots all group
// unnamed carriers under this value.
const TransportadoraNaoInformada = "Não informado"

// Frete is a carrier's offer to ship to a destination CEP.
//
// @Description Freight quote: carrier, destination and price/lead-time
// @Example {"cep": "01000", "uf": "SP", "transportadora": "Acme", "frete": 10.5, "prazo": 3}
type Frete struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	// CEP is the destination postal code. Stored digits-only after ingestion.
	CEP string `bson:"cep" json:"cep" example:"01000"`
	// UF is the destination state code.
	UF string `bson:"uf" json:"uf" example:"SP"`
	// Transportadora is the carrier name, never empty in stored records.
	Transportadora string `bson:"transportadora" json:"transportadora" example:"Acme"`
	// Frete is the shipping cost.
	Frete float64 `bson:"frete" json:"frete" example:"10.50"`
	// Prazo is the lead time in days.
	Prazo     int       `bson:"prazo" json:"prazo" example:"3"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// NomeTransportadora returns the carrier name, falling back to the
// unknown-carrier sentinel for records stored before normalization.
func (f Frete) NomeTransportadora() string {
	if f.Transportadora == "" {
		return TransportadoraNaoInformada
	}
	return f.Transportadora
}

// FreteSummary aggregates quotes by UF. Derived, never persisted.
type FreteSummary struct {
	UF         string  `bson:"uf" json:"uf"`
	QtdCEPs    int     `bson:"qtd_ceps" json:"qtdCeps"`
	MediaFrete float64 `bson:"media_frete" json:"mediaFrete"`
	MediaPrazo float64 `bson:"media_prazo" json:"mediaPrazo"`
}

// TransportadoraSummary aggregates quotes by carrier. Derived, never persisted.
// UFs holds the distinct states the carrier serves, sorted ascending.
type TransportadoraSummary struct {
	Transportadora string   `bson:"transportadora" json:"transportadora"`
	QtdCEPs        int      `bson:"qtd_ceps" json:"qtdCeps"`
	MediaFrete     float64  `bson:"media_frete" json:"mediaFrete"`
	MediaPrazo     float64  `bson:"media_prazo" json:"mediaPrazo"`
	UFs            []string `bson:"ufs" json:"ufs"`
}
