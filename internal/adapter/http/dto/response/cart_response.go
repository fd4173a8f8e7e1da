package response

import (
	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"
)

// Monetary fields are BRL minor units (centavos); the UI formats them.

type CartLineResponse struct {
	ServiceID            string `json:"service_id"`
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	ListPriceCents       int64  `json:"list_price_cents"`
	CopayCents           int64  `json:"copay_cents"`
	Quantity             int    `json:"quantity"`
	AnticipationFeeCents int64  `json:"anticipation_fee_cents,omitempty"`
	LimitFeeCents        int64  `json:"limit_fee_cents,omitempty"`
}

type CartTotalsResponse struct {
	CopayTotalCents        int64 `json:"copay_total_cents"`
	AnticipationTotalCents int64 `json:"anticipation_total_cents"`
	LimitFeeTotalCents     int64 `json:"limit_fee_total_cents"`
	GrandTotalCents        int64 `json:"grand_total_cents"`
	ItemCount              int   `json:"item_count"`
}

type CartResponse struct {
	Items  []CartLineResponse `json:"items"`
	Totals CartTotalsResponse `json:"totals"`
}

func FromCart(cart entities.Cart, totals entities.CartTotals) CartResponse {
	items := make([]CartLineResponse, 0, len(cart))
	for _, line := range cart {
		items = append(items, CartLineResponse{
			ServiceID:            line.ServiceID,
			Code:                 line.Code,
			Name:                 line.Name,
			Category:             string(line.Category),
			ListPriceCents:       int64(line.ListPrice),
			CopayCents:           int64(line.Copay),
			Quantity:             line.Quantity,
			AnticipationFeeCents: int64(line.AnticipationFee),
			LimitFeeCents:        int64(line.LimitFee),
		})
	}
	return CartResponse{Items: items, Totals: fromTotals(totals)}
}

func fromTotals(t entities.CartTotals) CartTotalsResponse {
	return CartTotalsResponse{
		CopayTotalCents:        int64(t.CopayTotal),
		AnticipationTotalCents: int64(t.AnticipationTotal),
		LimitFeeTotalCents:     int64(t.LimitFeeTotal),
		GrandTotalCents:        int64(t.GrandTotal),
		ItemCount:              t.ItemCount,
	}
}

// CartActionResponse reports the gate decision of an add attempt. Blocked
// outcomes are 200s: the decision itself succeeded.
type CartActionResponse struct {
	Outcome      string       `json:"outcome"`
	Added        bool         `json:"added"`
	Forwarded    bool         `json:"forwarded"`
	BlockMessage string       `json:"block_message,omitempty"`
	Cart         CartResponse `json:"cart"`
}

func FromCartAction(res usecase.CartActionResult) CartActionResponse {
	return CartActionResponse{
		Outcome:      string(res.Outcome),
		Added:        res.Added,
		Forwarded:    res.Forwarded,
		BlockMessage: res.BlockMessage,
		Cart:         FromCart(res.Cart, res.Totals),
	}
}

type UnlockResponse struct {
	ServiceID   string       `json:"service_id"`
	Kind        string       `json:"kind"`
	PaymentID   string       `json:"payment_id"`
	AddedToCart bool         `json:"added_to_cart"`
	Cart        CartResponse `json:"cart"`
}

func FromUnlock(res usecase.UnlockResult) UnlockResponse {
	return UnlockResponse{
		ServiceID:   res.ServiceID,
		Kind:        string(res.Kind),
		PaymentID:   res.PaymentID,
		AddedToCart: res.AddedToCart,
		Cart:        FromCart(res.Cart, res.Totals),
	}
}
