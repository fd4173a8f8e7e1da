package entities

import "testing"

func svcFixture(id string, copay Cents) Service {
	return Service{
		ID:        id,
		Code:      "SVC-" + id,
		Name:      "Service " + id,
		Category:  CategoryConsultation,
		ListPrice: copay * 3,
		Copay:     copay,
		Coverage:  CoverageCovered,
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("adds new line with quantity 1", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0)
		if len(c) != 1 {
			t.Fatalf("expected 1 line, got %d", len(c))
		}
		if c[0].Quantity != 1 || c[0].Copay != 2500 {
			t.Fatalf("unexpected line: %+v", c[0])
		}
	})

	t.Run("re-adding increments quantity instead of duplicating", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0)
		c = c.AddItem(svcFixture("s1", 2500), 0, 0)
		if len(c) != 1 {
			t.Fatalf("expected 1 line, got %d", len(c))
		}
		if c[0].Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", c[0].Quantity)
		}
	})

	t.Run("fees apply only at first insertion", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 1500, 0)
		c = c.AddItem(svcFixture("s1", 2500), 9999, 9999)
		if c[0].AnticipationFee != 1500 || c[0].LimitFee != 0 {
			t.Fatalf("fees on existing line must be untouched: %+v", c[0])
		}
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		base := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0)
		_ = base.AddItem(svcFixture("s1", 2500), 0, 0)
		if base[0].Quantity != 1 {
			t.Fatalf("receiver was mutated: %+v", base[0])
		}
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("applies positive delta", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0).UpdateQuantity("s1", 3)
		if c[0].Quantity != 4 {
			t.Fatalf("expected 4, got %d", c[0].Quantity)
		}
	})

	t.Run("floors at 1 and never removes", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0)
		for _, delta := range []int{-1, -5, -100} {
			got := c.UpdateQuantity("s1", delta)
			if len(got) != 1 || got[0].Quantity != 1 {
				t.Fatalf("delta %d: expected quantity floored at 1, got %+v", delta, got)
			}
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		c := Cart{}.AddItem(svcFixture("s1", 2500), 0, 0).UpdateQuantity("missing", 2)
		if len(c) != 1 || c[0].Quantity != 1 {
			t.Fatalf("unexpected cart: %+v", c)
		}
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := Cart{}.
		AddItem(svcFixture("s1", 2500), 0, 0).
		AddItem(svcFixture("s2", 4000), 0, 0).
		UpdateQuantity("s1", 4)

	c = c.RemoveItem("s1")
	if len(c) != 1 || c[0].ServiceID != "s2" {
		t.Fatalf("expected only s2 left, got %+v", c)
	}

	c = c.RemoveItem("missing")
	if len(c) != 1 {
		t.Fatalf("remove of unknown id must be a no-op, got %+v", c)
	}
}

func TestCart_Totals(t *testing.T) {
	t.Run("empty cart is all zeros", func(t *testing.T) {
		tot := Cart{}.Totals()
		if tot != (CartTotals{}) {
			t.Fatalf("expected zero totals, got %+v", tot)
		}
	})

	t.Run("sums per-quantity and grand total is additive", func(t *testing.T) {
		c := Cart{}.
			AddItem(svcFixture("s1", 2500), 1500, 0).
			AddItem(svcFixture("s2", 4000), 0, 3000)
		c = c.UpdateQuantity("s1", 1) // qty 2

		tot := c.Totals()
		if tot.CopayTotal != 2*2500+4000 {
			t.Fatalf("copay total: %d", tot.CopayTotal)
		}
		if tot.AnticipationTotal != 2*1500 {
			t.Fatalf("anticipation total: %d", tot.AnticipationTotal)
		}
		if tot.LimitFeeTotal != 3000 {
			t.Fatalf("limit fee total: %d", tot.LimitFeeTotal)
		}
		if tot.GrandTotal != tot.CopayTotal+tot.AnticipationTotal+tot.LimitFeeTotal {
			t.Fatalf("grand total not additive: %+v", tot)
		}
		if tot.ItemCount != 3 {
			t.Fatalf("item count: %d", tot.ItemCount)
		}
	})
}
