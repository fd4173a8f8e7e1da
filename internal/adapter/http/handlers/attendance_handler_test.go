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

func TestAttendanceHandler_GetAttendance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no active attendance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.GET("/v1/attendance", h.GetAttendance)

		att.EXPECT().Current(gomock.Any()).Return(entities.Attendance{}, false)

		req := httptest.NewRequest(http.MethodGet, "/v1/attendance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("derives can_finalize on read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.GET("/v1/attendance", h.GetAttendance)

		att.EXPECT().Current(gomock.Any()).Return(entities.Attendance{
			ID:        "att-1",
			Status:    entities.StatusScheduled,
			Step:      entities.StepSummary,
			Cart:      entities.Cart{{ServiceID: "svc-1", Copay: 3000, Quantity: 1}},
			Anamnesis: entities.AnamnesisData{ChiefComplaint: "coceira", Vitals: entities.AnamnesisVitals{Weight: "4.5"}},
			Schedule:  &entities.ScheduleInfo{Date: "2026-01-20", Time: "14:30", Location: entities.LocationClinic},
		}, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/attendance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["can_finalize"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAttendanceHandler_Schedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/schedule", h.Schedule)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/schedule", bytes.NewBufferString(`{"date":"2026-01-20","time":"14:30","location":"moon"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/schedule", h.Schedule)

		att.EXPECT().Schedule(gomock.Any(), "2026-01-20", "14:30", entities.LocationHome).Return(entities.Attendance{
			ID:       "att-1",
			Status:   entities.StatusScheduled,
			Schedule: &entities.ScheduleInfo{Date: "2026-01-20", Time: "14:30", Location: entities.LocationHome},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/schedule", bytes.NewBufferString(`{"date":"2026-01-20","time":"14:30","location":"home"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "scheduled" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAttendanceHandler_Finish(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cannot finalize maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/finish", h.Finish)

		session.EXPECT().FinalizeAttendance(gomock.Any()).Return(entities.Attendance{}, usecase.ErrCannotFinalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/finish", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/finish", h.Finish)

		session.EXPECT().FinalizeAttendance(gomock.Any()).Return(entities.Attendance{ID: "att-1", Status: entities.StatusFinished}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/finish", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "finished" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAttendanceHandler_Prescriptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/prescriptions", h.AddPrescription)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/prescriptions", bytes.NewBufferString(`{"dosage":"5mg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.POST("/v1/attendance/prescriptions", h.AddPrescription)

		att.EXPECT().AddPrescription(gomock.Any(), entities.PrescriptionItem{Name: "Prednisolona", Dosage: "5mg"}).Return(entities.Attendance{
			ID:            "att-1",
			Prescriptions: []entities.PrescriptionItem{{ID: "rx-1", Name: "Prednisolona", Dosage: "5mg"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/attendance/prescriptions", bytes.NewBufferString(`{"name":"Prednisolona","dosage":"5mg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		session := mocks.NewMockISessionUseCase(ctrl)
		h := NewAttendanceHandler(att, session)

		r := gin.New()
		r.DELETE("/v1/attendance/prescriptions/:item_id", h.RemovePrescription)

		att.EXPECT().RemovePrescription(gomock.Any(), "rx-1").Return(entities.Attendance{ID: "att-1"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/attendance/prescriptions/rx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapAttendanceError(t *testing.T) {
	if got := mapAttendanceError(usecase.ErrNoActiveAttendance); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAttendanceError(usecase.ErrAttendanceActive); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAttendanceError(usecase.ErrInvalidStep); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAttendanceError(usecase.ErrCannotFinalize); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAttendanceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
