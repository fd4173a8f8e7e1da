package entities

// CartLine is one selected service inside a cart.
//
// Invariants:
//   - Quantity is always >= 1.
//   - A service id appears in at most one line per cart.
//   - AnticipationFee/LimitFee are fixed at first insertion; re-adding the
//     same service only increments the quantity.
type CartLine struct {
	ServiceID       string          `json:"service_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Category        ServiceCategory `json:"category"`
	ListPrice       Cents           `json:"list_price"`
	Copay           Cents           `json:"copay"`
	Quantity        int             `json:"quantity"`
	AnticipationFee Cents           `json:"anticipation_fee,omitempty"`
	LimitFee        Cents           `json:"limit_fee,omitempty"`
}

// Cart is an ordered collection of cart lines. The zero value is an empty,
// usable cart. All operations are value-level: they return the resulting
// cart and never fail.
type Cart []CartLine

// CartTotals is the derived pricing summary of a cart.
type CartTotals struct {
	CopayTotal        Cents `json:"copay_total"`
	AnticipationTotal Cents `json:"anticipation_total"`
	LimitFeeTotal     Cents `json:"limit_fee_total"`
	GrandTotal        Cents `json:"grand_total"`
	ItemCount         int   `json:"item_count"`
}

// AddItem appends a line for svc with quantity 1, or increments the existing
// line's quantity when the service is already in the cart. Fees apply only at
// first insertion; fees passed for an existing line are ignored.
func (c Cart) AddItem(svc Service, anticipationFee, limitFee Cents) Cart {
	for i, line := range c {
		if line.ServiceID == svc.ID {
			out := append(Cart(nil), c...)
			out[i].Quantity++
			return out
		}
	}
	return append(append(Cart(nil), c...), CartLine{
		ServiceID:       svc.ID,
		Code:            svc.Code,
		Name:            svc.Name,
		Category:        svc.Category,
		ListPrice:       svc.ListPrice,
		Copay:           svc.Copay,
		Quantity:        1,
		AnticipationFee: anticipationFee,
		LimitFee:        limitFee,
	})
}

// UpdateQuantity applies delta to the line with the given service id,
// flooring the result at 1. Unknown ids are a no-op.
func (c Cart) UpdateQuantity(serviceID string, delta int) Cart {
	out := append(Cart(nil), c...)
	for i, line := range out {
		if line.ServiceID == serviceID {
			q := line.Quantity + delta
			if q < 1 {
				q = 1
			}
			out[i].Quantity = q
			break
		}
	}
	return out
}

// RemoveItem deletes the line with the given service id regardless of its
// quantity. Unknown ids are a no-op.
func (c Cart) RemoveItem(serviceID string) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ServiceID != serviceID {
			out = append(out, line)
		}
	}
	return out
}

// Contains reports whether the cart has a line for the given service id.
func (c Cart) Contains(serviceID string) bool {
	for _, line := range c {
		if line.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// Totals derives the pricing summary. Pure and idempotent.
func (c Cart) Totals() CartTotals {
	var t CartTotals
	for _, line := range c {
		q := Cents(line.Quantity)
		t.CopayTotal += line.Copay * q
		t.AnticipationTotal += line.AnticipationFee * q
		t.LimitFeeTotal += line.LimitFee * q
		t.ItemCount += line.Quantity
	}
	t.GrandTotal = t.CopayTotal + t.AnticipationTotal + t.LimitFeeTotal
	return t
}
