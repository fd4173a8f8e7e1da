package request

import (
	"strings"

	"vetdesk/internal/usecase"
)

type AddCartItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// CartQuantityRequest carries a signed delta; the engine floors the resulting
// quantity at 1. A zero delta is accepted and leaves the line unchanged.
type CartQuantityRequest struct {
	Delta int `json:"delta"`
}

// UnlockServiceRequest asks for a coverage-block bypass fee simulation.
type UnlockServiceRequest struct {
	Kind      string `json:"kind" binding:"required"`
	AddToCart bool   `json:"add_to_cart"`
}

// ResolveKind maps the wire value onto an unlock kind; empty means invalid.
func (r UnlockServiceRequest) ResolveKind() usecase.UnlockKind {
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case "grace", "anticipation":
		return usecase.UnlockGrace
	case "limit", "extra_allowance":
		return usecase.UnlockLimit
	}
	return ""
}
