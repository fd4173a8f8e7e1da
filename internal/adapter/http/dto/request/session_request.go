package request

import (
	"strings"

	"vetdesk/internal/usecase"
)

// LookupRequest is the front-desk identification payload. Identifier may
// arrive masked (e.g. "529.982.247-25"); normalization happens in the use
// case.
type LookupRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Kind       string `json:"kind" binding:"required"`
}

// ResolveKind maps the wire value onto a lookup kind; empty means invalid.
func (r LookupRequest) ResolveKind() usecase.LookupKind {
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case "tax_id", "cpf":
		return usecase.LookupByTaxID
	case "phone":
		return usecase.LookupByPhone
	}
	return ""
}
