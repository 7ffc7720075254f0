package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pedido is a shipment request awaiting a carrier decision.
//
// @Description Order: destination plus optional external id and customer name
// @Example {"cep": "01000", "uf": "SP", "pedido_id": "PED-1", "cliente": "ACME Ltda"}
type Pedido struct {
	ID  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CEP string             `bson:"cep" json:"cep" example:"01000"`
	UF  string             `bson:"uf" json:"uf" example:"SP"`
	// PedidoID is the external order identifier, optional.
	PedidoID string `bson:"pedido_id,omitempty" json:"pedido_id,omitempty" example:"PED-1"`
	// Cliente is the customer name, optional.
	Cliente   string    `bson:"cliente,omitempty" json:"cliente,omitempty" example:"ACME Ltda"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// Chave returns the key identifying the order in auction pivots:
// the external order id when present, the destination CEP otherwise.
func (p Pedido) Chave() string {
	if p.PedidoID != "" {
		return p.PedidoID
	}
	return p.CEP
}
