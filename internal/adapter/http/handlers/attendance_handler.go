package handlers

import (
	"errors"
	"net/http"

	request "vetdesk/internal/adapter/http/dto/request"
	response "vetdesk/internal/adapter/http/dto/response"
	"vetdesk/internal/domain/entities"
	"vetdesk/internal/usecase"
	"vetdesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidAttendancePayload = pkg.NewDomainErrorSimple("INVALID_ATTENDANCE_INPUT", "Invalid attendance payload", http.StatusBadRequest)
)

// AttendanceHandler handles HTTP requests for the attendance lifecycle and
// the wizard content. Finalization and budget recording go through the
// session use case because they carry session-level flags and the closing
// payment.

type AttendanceHandler struct {
	attendance usecase.IAttendanceUseCase
	session    usecase.ISessionUseCase
}

func NewAttendanceHandler(att usecase.IAttendanceUseCase, session usecase.ISessionUseCase) *AttendanceHandler {
	return &AttendanceHandler{attendance: att, session: session}
}

func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	a, ok := h.attendance.Current(c.Request.Context())
	if !ok {
		appErr := mapAttendanceError(usecase.ErrNoActiveAttendance)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}
	location := payload.ResolveLocation()
	if location == "" {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.Schedule(c.Request.Context(), payload.Date, payload.Time, location)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) BeginMedical(c *gin.Context) {
	a, err := h.attendance.BeginMedical(c.Request.Context())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

// Finish runs the closing payment and finishes the attendance.
func (h *AttendanceHandler) Finish(c *gin.Context) {
	a, err := h.session.FinalizeAttendance(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("[attendance][handler] finish failed")
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) Cancel(c *gin.Context) {
	// Reason is optional; an absent or empty body cancels without one.
	var payload request.CancelAttendanceRequest
	_ = c.ShouldBindJSON(&payload)

	a, err := h.attendance.Cancel(c.Request.Context(), payload.Reason)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) SetStep(c *gin.Context) {
	var payload request.StepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.SetStep(c.Request.Context(), entities.AttendanceStep(payload.Step))
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) UpdateTriage(c *gin.Context) {
	var payload request.TriageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.UpdateTriage(c.Request.Context(), payload.ToPatch())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) UpdateAnamnesis(c *gin.Context) {
	var payload request.AnamnesisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.UpdateAnamnesis(c.Request.Context(), payload.ToPatch())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

// RecordBudget marks the current cart as saved/shared as a budget.
func (h *AttendanceHandler) RecordBudget(c *gin.Context) {
	a, err := h.session.RecordBudget(c.Request.Context())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) AddPrescription(c *gin.Context) {
	var payload request.PrescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.AddPrescription(c.Request.Context(), payload.ToItem())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAttendance(a))
}

func (h *AttendanceHandler) UpdatePrescription(c *gin.Context) {
	itemID := c.Param("item_id")

	var payload request.PrescriptionPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAttendancePayload.HTTPStatus, errInvalidAttendancePayload.ToHTTPError())
		return
	}

	a, err := h.attendance.UpdatePrescription(c.Request.Context(), itemID, payload.ToPatch())
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) RemovePrescription(c *gin.Context) {
	itemID := c.Param("item_id")

	a, err := h.attendance.RemovePrescription(c.Request.Context(), itemID)
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func mapAttendanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveAttendance):
		return pkg.NewDomainErrorSimple("ATTENDANCE_NOT_FOUND", "No active attendance", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttendanceActive):
		return pkg.NewDomainErrorSimple("ATTENDANCE_ACTIVE", "An attendance is already active", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPatientRef), errors.Is(err, usecase.ErrInvalidStep), errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotFinalize):
		return pkg.NewDomainErrorSimple("CANNOT_FINALIZE", "Attendance does not satisfy the finalize requirements", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
