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
	errInvalidUnlockPayload = pkg.NewDomainErrorSimple("INVALID_UNLOCK_INPUT", "Invalid unlock payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the service catalog and the
// coverage unlock simulations.

type CatalogHandler struct {
	usecase usecase.ISessionUseCase
}

func NewCatalogHandler(uc usecase.ISessionUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices returns the catalog with each entry's gate outcome under the
// current session.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	entries, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

// UnlockService simulates the anticipation or extra-allowance fee payment
// that bypasses a coverage block.
func (h *CatalogHandler) UnlockService(c *gin.Context) {
	serviceID := c.Param("service_id")

	var payload request.UnlockServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUnlockPayload.HTTPStatus, errInvalidUnlockPayload.ToHTTPError())
		return
	}
	kind := payload.ResolveKind()
	if kind == "" {
		c.JSON(errInvalidUnlockPayload.HTTPStatus, errInvalidUnlockPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UnlockService(c.Request.Context(), serviceID, kind, payload.AddToCart)
	if err != nil {
		log.Warn().Err(err).Str("service_id", serviceID).Str("kind", string(kind)).
			Msg("[catalog][handler] unlock failed")
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnlock(res))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotBlocked):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_BLOCKED", "Service is not blocked by the requested condition", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
