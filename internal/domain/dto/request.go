// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Sort orders. Any value other than "desc" sorts ascending.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort selects a single-field ordering for list endpoints.
type Sort struct {
	Field string `json:"field" form:"sort" example:"frete"`
	Order string `json:"order" form:"order" example:"asc"`
}

// Descending reports whether the sort order is descending.
func (s Sort) Descending() bool {
	return strings.EqualFold(s.Order, SortDesc)
}

// FreteFilter narrows freight-quote queries. Zero values mean "no filter".
//
// @Description Freight quote filter: state/carrier multi-select, cost and
// @Description lead-time ranges, CEP substring
type FreteFilter struct {
	// UFs restricts to any of the given states.
	UFs []string `json:"uf,omitempty" form:"uf"`
	// Transportadoras restricts to any of the given carriers.
	Transportadoras []string `json:"transportadora,omitempty" form:"transportadora"`
	// CEP matches as a case-insensitive substring of the postal code.
	CEP      string   `json:"cep,omitempty" form:"cep"`
	FreteMin *float64 `json:"freteMin,omitempty" form:"frete_min"`
	FreteMax *float64 `json:"freteMax,omitempty" form:"frete_max"`
	PrazoMin *int     `json:"prazoMin,omitempty" form:"prazo_min"`
	PrazoMax *int     `json:"prazoMax,omitempty" form:"prazo_max"`
} // @name FreteFilter

// PedidoFilter narrows order queries.
type PedidoFilter struct {
	UFs []string `json:"uf,omitempty" form:"uf"`
	// CEP matches as a case-insensitive substring.
	CEP string `json:"cep,omitempty" form:"cep"`
	// Cliente matches as a case-insensitive substring of the customer name.
	Cliente string `json:"cliente,omitempty" form:"cliente"`
} // @name PedidoFilter

// SimularLeilaoRequest asks for a freight auction on a single ad-hoc order.
//
// @Description Request to auction one destination across all carriers
// @Example {"cep": "01000", "uf": "SP", "pedido_id": "PED-1"}
type SimularLeilaoRequest struct {
	CEP      string `json:"cep" binding:"required" example:"01000"`
	UF       string `json:"uf" binding:"required" example:"SP"`
	PedidoID string `json:"pedido_id,omitempty" example:"PED-1"`
	Cliente  string `json:"cliente,omitempty" example:"ACME Ltda"`
} // @name SimularLeilaoRequest

// Validate performs custom validation on the auction request.
func (r *SimularLeilaoRequest) Validate() error {
	if strings.TrimSpace(r.CEP) == "" {
		return &ValidationError{Field: "cep", Message: "cep is required"}
	}
	if strings.TrimSpace(r.UF) == "" {
		return &ValidationError{Field: "uf", Message: "uf is required"}
	}
	return nil
}

// LeilaoBatchRequest selects the stored orders to auction. The filter is
// applied server-side; matching orders are auctioned in store order.
type LeilaoBatchRequest struct {
	Filter PedidoFilter `json:"filter"`
	Sort   *Sort        `json:"sort,omitempty"`
} // @name LeilaoBatchRequest

// UpdateUserRequest carries the mutable user-administration fields.
type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty"`
	Role           *string `json:"role,omitempty" example:"admin"`
	Active         *bool   `json:"active,omitempty"`
	EmailConfirmed *bool   `json:"email_confirmed,omitempty"`
} // @name UpdateUserRequest

// Validate checks the role value when one is provided.
func (r *UpdateUserRequest) Validate() error {
	if r.Role != nil && *r.Role != "user" && *r.Role != "admin" {
		return &ValidationError{Field: "role", Message: "role must be \"user\" or \"admin\""}
	}
	return nil
}
