package handlers

import (
	"errors"
	"net/http"

	request "vetdesk/internal/adapter/http/dto/request"
	response "vetdesk/internal/adapter/http/dto/response"
	"vetdesk/internal/usecase"
	"vetdesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidLookupPayload = pkg.NewDomainErrorSimple("INVALID_LOOKUP_INPUT", "Invalid lookup payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for the front-desk session: lookup,
// patient selection, delinquency settlement and the home reset.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Lookup resolves a guardian identifier and decides the session flow.
func (h *SessionHandler) Lookup(c *gin.Context) {
	var payload request.LookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	kind := payload.ResolveKind()
	if kind == "" {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.Lookup(c.Request.Context(), payload.Identifier, kind)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("[session][handler] lookup failed")
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap))
}

// SelectPatient starts the attendance for one of the looked-up patients.
func (h *SessionHandler) SelectPatient(c *gin.Context) {
	patientID := c.Param("patient_id")

	snap, err := h.usecase.SelectPatient(c.Request.Context(), patientID)
	if err != nil {
		log.Warn().Err(err).Str("patient_id", patientID).Msg("[session][handler] select patient failed")
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap))
}

// SettleDelinquency simulates the payment that lifts the delinquency block.
func (h *SessionHandler) SettleDelinquency(c *gin.Context) {
	snap, err := h.usecase.SettleDelinquency(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("[session][handler] delinquency settlement failed")
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap))
}

// GoHome resets the whole session and returns the fresh state.
func (h *SessionHandler) GoHome(c *gin.Context) {
	if err := h.usecase.GoHome(c.Request.Context()); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionSnapshot(h.usecase.Snapshot(c.Request.Context())))
}

// GetSession returns the current session read model.
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSessionSnapshot(h.usecase.Snapshot(c.Request.Context())))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIdentifier):
		return pkg.NewDomainErrorSimple("INVALID_IDENTIFIER", "Identifier must be a valid tax id or phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLookupInFlight):
		return pkg.NewDomainErrorSimple("LOOKUP_IN_FLIGHT", "A lookup is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttendanceActive):
		return pkg.NewDomainErrorSimple("ATTENDANCE_ACTIVE", "An attendance is already active", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "No account found for this identifier", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoLookupResult):
		return pkg.NewDomainErrorSimple("NO_LOOKUP_RESULT", "No guardian looked up in this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownPatient):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient does not belong to the looked-up guardian", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDelinquencyBlocked):
		return pkg.NewDomainErrorSimple("DELINQUENCY_BLOCKED", "Account is blocked until the delinquency is settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
