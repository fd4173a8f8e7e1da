package usecase

import (
	"context"
	"errors"
	"testing"

	"vetdesk/internal/domain/entities"
	mock_interfaces "vetdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	uc      *SessionUseCase
	att     *AttendanceUseCase
	catalog *mock_interfaces.MockICatalogRepository
	lookup  *mock_interfaces.MockIAccountLookup
	gateway *mock_interfaces.MockIPaymentGateway
}

// newSessionFixture wires a real attendance use case (backed by a permissive
// repo mock) under the session orchestrator, with the remaining collaborators
// mocked.
func newSessionFixture(t *testing.T) sessionFixture {
	ctrl := gomock.NewController(t)

	repo := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	lookup := mock_interfaces.NewMockIAccountLookup(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	att := NewAttendanceUseCase(repo, nil)
	return sessionFixture{
		uc:      NewSessionUseCase(att, catalog, lookup, gateway, nil),
		att:     att,
		catalog: catalog,
		lookup:  lookup,
		gateway: gateway,
	}
}

func activeAccount(patients ...entities.Patient) *entities.LookupResult {
	return &entities.LookupResult{
		Guardian:      entities.Guardian{ID: "g-1", Name: "Ana", TaxID: "52998224725"},
		Patients:      patients,
		AccountStatus: entities.AccountActive,
	}
}

func coveredSvc(id string) entities.Service {
	return entities.Service{
		ID:          id,
		Name:        "svc " + id,
		Copay:       2500,
		Coverage:    entities.CoverageCovered,
		Interaction: entities.InteractionAddToCart,
	}
}

func graceSvc(id string) entities.Service {
	return entities.Service{
		ID:              id,
		Name:            "svc " + id,
		Copay:           4000,
		Coverage:        entities.CoverageGracePeriod,
		Interaction:     entities.InteractionAddToCart,
		AnticipationFee: 1500,
		BlockMessage:    "service in grace period",
	}
}

func TestSessionUseCase_LookupValidation(t *testing.T) {
	fx := newSessionFixture(t)

	if _, err := fx.uc.Lookup(context.Background(), "123", LookupByTaxID); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
	if _, err := fx.uc.Lookup(context.Background(), "123456789", LookupByPhone); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier for 9-digit phone, got %v", err)
	}

	// Masked input is normalized to digits before validation.
	fx.lookup.EXPECT().Lookup(gomock.Any(), "52998224725").Return(nil, nil)
	if _, err := fx.uc.Lookup(context.Background(), "529.982.247-25", LookupByTaxID); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestSessionUseCase_LookupFlows(t *testing.T) {
	t.Run("no plan routes to plans offer", func(t *testing.T) {
		fx := newSessionFixture(t)
		res := activeAccount(entities.Patient{ID: "p-1", Name: "Rex"})
		res.AccountStatus = entities.AccountNoPlan
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(res, nil)

		snap, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Flow != FlowPlansOffer || snap.Attendance != nil {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("delinquent blocks until settled", func(t *testing.T) {
		fx := newSessionFixture(t)
		res := activeAccount(entities.Patient{ID: "p-1", Name: "Rex"})
		res.AccountStatus = entities.AccountDelinquent
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(res, nil)

		snap, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Flow != FlowBlockedDelinquent || !snap.DelinquencyBlocked || snap.ActivePatientID != "p-1" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}

		if _, err := fx.uc.SelectPatient(context.Background(), "p-1"); !errors.Is(err, ErrDelinquencyBlocked) {
			t.Fatalf("expected ErrDelinquencyBlocked, got %v", err)
		}

		fx.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)
		snap, err = fx.uc.SettleDelinquency(context.Background())
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if snap.DelinquencyBlocked {
			t.Fatalf("block must lift after settlement")
		}
		if snap.Flow != FlowClinical || snap.Attendance == nil {
			t.Fatalf("single-patient account must auto-start after settlement: %+v", snap)
		}
	})

	t.Run("active single patient auto-starts", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(activeAccount(entities.Patient{ID: "p-1", Name: "Rex"}), nil)

		snap, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Flow != FlowClinical || snap.Attendance == nil || snap.Attendance.PatientID != "p-1" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("active multi patient requires selection", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(activeAccount(entities.Patient{ID: "p-1"}, entities.Patient{ID: "p-2"}), nil)

		snap, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Flow != FlowPatientSelection || snap.Attendance != nil {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}

		if _, err := fx.uc.SelectPatient(context.Background(), "p-9"); !errors.Is(err, ErrUnknownPatient) {
			t.Fatalf("expected ErrUnknownPatient, got %v", err)
		}

		snap, err = fx.uc.SelectPatient(context.Background(), "p-2")
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if snap.Flow != FlowClinical || snap.Attendance == nil || snap.Attendance.PatientID != "p-2" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("lookup rejected while attendance active", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(activeAccount(entities.Patient{ID: "p-1"}), nil)

		if _, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID); !errors.Is(err, ErrAttendanceActive) {
			t.Fatalf("expected ErrAttendanceActive, got %v", err)
		}
	})
}

func TestSessionUseCase_CartGate(t *testing.T) {
	t.Run("allowed service lands in the standalone cart", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s1").Return(coveredSvc("s1"), nil)

		res, err := fx.uc.AddServiceToCart(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeAllowed || !res.Added || len(res.Cart) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("grace period blocks with message", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s2").Return(graceSvc("s2"), nil)

		res, err := fx.uc.AddServiceToCart(context.Background(), "s2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeGracePeriod || res.Added || len(res.Cart) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.BlockMessage != "service in grace period" {
			t.Fatalf("unexpected block message: %q", res.BlockMessage)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Service{}, nil)

		if _, err := fx.uc.AddServiceToCart(context.Background(), "missing"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("cart ops target the clinical cart when an attendance is active", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(activeAccount(entities.Patient{ID: "p-1"}), nil)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s1").Return(coveredSvc("s1"), nil)

		if _, err := fx.uc.Lookup(context.Background(), "52998224725", LookupByTaxID); err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if _, err := fx.uc.AddServiceToCart(context.Background(), "s1"); err != nil {
			t.Fatalf("add: %v", err)
		}

		snap := fx.uc.Snapshot(context.Background())
		if snap.Attendance == nil || len(snap.Attendance.Cart) != 1 {
			t.Fatalf("expected item on the clinical cart: %+v", snap.Attendance)
		}
	})
}

func TestSessionUseCase_UnlockService(t *testing.T) {
	t.Run("wrong kind is rejected", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s2").Return(graceSvc("s2"), nil)

		if _, err := fx.uc.UnlockService(context.Background(), "s2", UnlockLimit, false); !errors.Is(err, ErrServiceNotBlocked) {
			t.Fatalf("expected ErrServiceNotBlocked, got %v", err)
		}
	})

	t.Run("unlock and add attaches the anticipation fee", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s2").Return(graceSvc("s2"), nil)
		fx.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)

		res, err := fx.uc.UnlockService(context.Background(), "s2", UnlockGrace, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AddedToCart || len(res.Cart) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Cart[0].AnticipationFee != 1500 || res.Cart[0].LimitFee != 0 {
			t.Fatalf("unexpected fees: %+v", res.Cart[0])
		}
	})

	t.Run("unlock only opens the gate for a later add", func(t *testing.T) {
		fx := newSessionFixture(t)
		fx.catalog.EXPECT().GetByID(gomock.Any(), "s2").Return(graceSvc("s2"), nil).Times(2)
		fx.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)

		if _, err := fx.uc.UnlockService(context.Background(), "s2", UnlockGrace, false); err != nil {
			t.Fatalf("unlock: %v", err)
		}

		// Gate now resolves to allowed; the plain add carries no fee.
		res, err := fx.uc.AddServiceToCart(context.Background(), "s2")
		if err != nil {
			t.Fatalf("add after unlock: %v", err)
		}
		if res.Outcome != OutcomeAllowed || !res.Added {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Cart[0].AnticipationFee != 0 {
			t.Fatalf("plain add after unlock must not carry a fee: %+v", res.Cart[0])
		}
	})
}

func TestSessionUseCase_GoHomeResetCompleteness(t *testing.T) {
	fx := newSessionFixture(t)
	ctx := context.Background()

	fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(activeAccount(entities.Patient{ID: "p-1"}), nil)
	fx.catalog.EXPECT().GetByID(gomock.Any(), "s1").Return(coveredSvc("s1"), nil)
	fx.catalog.EXPECT().GetByID(gomock.Any(), "s3").Return(coveredSvc("s3"), nil)
	fx.catalog.EXPECT().GetByID(gomock.Any(), "s2").Return(graceSvc("s2"), nil)
	fx.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)

	if _, err := fx.uc.Lookup(ctx, "52998224725", LookupByTaxID); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := fx.uc.AddServiceToCart(ctx, "s1"); err != nil {
		t.Fatalf("add s1: %v", err)
	}
	if _, err := fx.uc.AddServiceToCart(ctx, "s3"); err != nil {
		t.Fatalf("add s3: %v", err)
	}
	if _, err := fx.uc.UnlockService(ctx, "s2", UnlockGrace, false); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	if err := fx.uc.GoHome(ctx); err != nil {
		t.Fatalf("go home: %v", err)
	}

	snap := fx.uc.Snapshot(ctx)
	if snap.Attendance != nil {
		t.Fatalf("attendance must be discarded")
	}
	if len(snap.UnlockedServiceIDs) != 0 {
		t.Fatalf("unlocked set must be empty: %v", snap.UnlockedServiceIDs)
	}
	if snap.Flow != FlowIdle || snap.Guardian != nil || snap.ActivePatientID != "" {
		t.Fatalf("lookup context must be dropped: %+v", snap)
	}
	if snap.DelinquencyBlocked || snap.BudgetSaved || snap.FinalizeFeePaid {
		t.Fatalf("session flags must be cleared: %+v", snap)
	}

	cart, totals := fx.uc.CartState(ctx)
	if len(cart) != 0 || totals.ItemCount != 0 {
		t.Fatalf("standalone cart must start empty after reset: %+v", cart)
	}
}

func TestSessionUseCase_FinalizeAttendance(t *testing.T) {
	fx := newSessionFixture(t)
	ctx := context.Background()

	fx.lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(activeAccount(entities.Patient{ID: "p-1"}), nil)
	fx.catalog.EXPECT().GetByID(gomock.Any(), "s1").Return(coveredSvc("s1"), nil)

	if _, err := fx.uc.Lookup(ctx, "52998224725", LookupByTaxID); err != nil {
		t.Fatalf("lookup: %v", err)
	}

	// Predicate unmet: rejected before any payment is simulated.
	if _, err := fx.uc.FinalizeAttendance(ctx); !errors.Is(err, ErrCannotFinalize) {
		t.Fatalf("expected ErrCannotFinalize, got %v", err)
	}

	if _, err := fx.uc.AddServiceToCart(ctx, "s1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := fx.att.UpdateAnamnesis(ctx, AnamnesisPatch{ChiefComplaint: strPtr("itching"), Weight: strPtr("4.5")}); err != nil {
		t.Fatalf("anamnesis: %v", err)
	}
	if _, err := fx.att.Schedule(ctx, "2026-01-20", "14:30", entities.LocationClinic); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	fx.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-9", "approved", nil, nil)
	a, err := fx.uc.FinalizeAttendance(ctx)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if a.Status != entities.StatusFinished {
		t.Fatalf("expected finished, got %s", a.Status)
	}
	if !fx.uc.Snapshot(ctx).FinalizeFeePaid {
		t.Fatalf("finalize fee flag must be set")
	}
}
