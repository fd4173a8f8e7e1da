package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetdesk/internal/adapter/http/handlers/mocks"
	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSessionHandler_Lookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/lookup", h.Lookup)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/lookup", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/lookup", h.Lookup)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/lookup", bytes.NewBufferString(`{"identifier":"52998224725","kind":"email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("account not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/lookup", h.Lookup)

		uc.EXPECT().Lookup(gomock.Any(), "00000000000", usecase.LookupByTaxID).Return(usecase.SessionSnapshot{}, usecase.ErrAccountNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/lookup", bytes.NewBufferString(`{"identifier":"00000000000","kind":"cpf"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/lookup", h.Lookup)

		uc.EXPECT().Lookup(gomock.Any(), "529.982.247-25", usecase.LookupByTaxID).Return(usecase.SessionSnapshot{
			Flow:          usecase.FlowClinical,
			Guardian:      &entities.Guardian{ID: "gdn-001", Name: "Helena Prado"},
			AccountStatus: entities.AccountActive,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/lookup", bytes.NewBufferString(`{"identifier":"529.982.247-25","kind":"tax_id"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["flow"] != "clinical" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_SelectPatient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown patient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/patients/:patient_id/select", h.SelectPatient)

		uc.EXPECT().SelectPatient(gomock.Any(), "pat-x").Return(usecase.SessionSnapshot{}, usecase.ErrUnknownPatient)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/patients/pat-x/select", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delinquency blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/patients/:patient_id/select", h.SelectPatient)

		uc.EXPECT().SelectPatient(gomock.Any(), "pat-005").Return(usecase.SessionSnapshot{}, usecase.ErrDelinquencyBlocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/patients/pat-005/select", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/session/patients/:patient_id/select", h.SelectPatient)

		uc.EXPECT().SelectPatient(gomock.Any(), "pat-002").Return(usecase.SessionSnapshot{
			Flow:            usecase.FlowClinical,
			ActivePatientID: "pat-002",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/patients/pat-002/select", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GoHome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.POST("/v1/session/home", h.GoHome)

	uc.EXPECT().GoHome(gomock.Any()).Return(nil)
	uc.EXPECT().Snapshot(gomock.Any()).Return(usecase.SessionSnapshot{Flow: usecase.FlowIdle})

	req := httptest.NewRequest(http.MethodPost, "/v1/session/home", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["flow"] != "idle" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapSessionError(t *testing.T) {
	if got := mapSessionError(usecase.ErrInvalidIdentifier); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSessionError(usecase.ErrLookupInFlight); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSessionError(usecase.ErrAttendanceActive); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSessionError(usecase.ErrAccountNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSessionError(usecase.ErrDelinquencyBlocked); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSessionError(usecase.ErrGatewayNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapSessionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
