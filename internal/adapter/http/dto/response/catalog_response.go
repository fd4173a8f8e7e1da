package response

import "vetdesk/internal/usecase"

type CoverageTagResponse struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// CatalogServiceResponse pairs a catalog entry with its gate outcome for the
// current session. Blocked reflects the outcome, never the tag text.
type CatalogServiceResponse struct {
	ID                   string                `json:"id"`
	Code                 string                `json:"code"`
	Name                 string                `json:"name"`
	Category             string                `json:"category"`
	ListPriceCents       int64                 `json:"list_price_cents"`
	CopayCents           int64                 `json:"copay_cents"`
	Tags                 []CoverageTagResponse `json:"tags,omitempty"`
	Interaction          string                `json:"interaction"`
	Outcome              string                `json:"outcome"`
	Blocked              bool                  `json:"blocked"`
	BlockMessage         string                `json:"block_message,omitempty"`
	AnticipationFeeCents int64                 `json:"anticipation_fee_cents,omitempty"`
	LimitFeeCents        int64                 `json:"limit_fee_cents,omitempty"`
}

func FromCatalogEntry(entry usecase.CatalogEntry) CatalogServiceResponse {
	svc := entry.Service
	out := CatalogServiceResponse{
		ID:                   svc.ID,
		Code:                 svc.Code,
		Name:                 svc.Name,
		Category:             string(svc.Category),
		ListPriceCents:       int64(svc.ListPrice),
		CopayCents:           int64(svc.Copay),
		Interaction:          string(svc.Interaction),
		Outcome:              string(entry.Outcome),
		Blocked:              entry.Outcome.Blocking(),
		BlockMessage:         svc.BlockMessage,
		AnticipationFeeCents: int64(svc.AnticipationFee),
		LimitFeeCents:        int64(svc.LimitFee),
	}
	for _, t := range svc.Tags {
		out.Tags = append(out.Tags, CoverageTagResponse{Label: t.Label, Severity: string(t.Severity)})
	}
	return out
}

func FromCatalogEntries(entries []usecase.CatalogEntry) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromCatalogEntry(e))
	}
	return out
}
