package request

import (
	"testing"

	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"
)

func TestLookupRequest_ResolveKind(t *testing.T) {
	cases := map[string]usecase.LookupKind{
		"tax_id": usecase.LookupByTaxID,
		"cpf":    usecase.LookupByTaxID,
		" CPF ":  usecase.LookupByTaxID,
		"phone":  usecase.LookupByPhone,
		"email":  "",
		"":       "",
	}
	for in, want := range cases {
		r := LookupRequest{Identifier: "x", Kind: in}
		if got := r.ResolveKind(); got != want {
			t.Fatalf("kind %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestUnlockServiceRequest_ResolveKind(t *testing.T) {
	cases := map[string]usecase.UnlockKind{
		"grace":           usecase.UnlockGrace,
		"anticipation":    usecase.UnlockGrace,
		"limit":           usecase.UnlockLimit,
		"extra_allowance": usecase.UnlockLimit,
		"vip":             "",
	}
	for in, want := range cases {
		r := UnlockServiceRequest{Kind: in}
		if got := r.ResolveKind(); got != want {
			t.Fatalf("kind %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestScheduleRequest_ResolveLocation(t *testing.T) {
	if got := (ScheduleRequest{Location: " Clinic "}).ResolveLocation(); got != entities.LocationClinic {
		t.Fatalf("expected clinic, got %q", got)
	}
	if got := (ScheduleRequest{Location: "home"}).ResolveLocation(); got != entities.LocationHome {
		t.Fatalf("expected home, got %q", got)
	}
	if got := (ScheduleRequest{Location: "moon"}).ResolveLocation(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestPrescriptionRequest_ToItem(t *testing.T) {
	item := PrescriptionRequest{Name: " Prednisolona ", Dosage: "5mg"}.ToItem()
	if item.Name != "Prednisolona" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}
	if item.ID != "" {
		t.Fatalf("expected empty id before creation, got %q", item.ID)
	}
}

func TestAnamnesisRequest_ToPatch(t *testing.T) {
	complaint := "coceira"
	review := []string{"pele"}
	patch := AnamnesisRequest{ChiefComplaint: &complaint, SystemReview: &review}.ToPatch()
	if patch.ChiefComplaint == nil || *patch.ChiefComplaint != "coceira" {
		t.Fatalf("chief complaint not carried over")
	}
	if patch.History != nil {
		t.Fatalf("absent field must stay nil")
	}
	if patch.SystemReview == nil || len(*patch.SystemReview) != 1 {
		t.Fatalf("system review not carried over")
	}
}
