package handlers

import (
	"errors"
	"net/http"

	request "vetdesk/internal/adapter/http/dto/request"
	response "vetdesk/internal/adapter/http/dto/response"
	"vetdesk/internal/usecase"
	"vetdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler handles HTTP requests for the session cart. The same endpoints
// serve the standalone and the clinical cart; routing between them happens in
// the session use case.

type CartHandler struct {
	usecase usecase.ISessionUseCase
}

func NewCartHandler(uc usecase.ISessionUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, totals := h.usecase.CartState(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCart(cart, totals))
}

func (h *CartHandler) GetCartTotals(c *gin.Context) {
	cart, totals := h.usecase.CartState(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCart(cart, totals).Totals)
}

// AddItem runs the coverage gate and adds the service when allowed. A blocked
// or forwarded outcome is still a 200: the decision is in the response body.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.AddServiceToCart(c.Request.Context(), payload.ServiceID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCartAction(res))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	serviceID := c.Param("service_id")

	var payload request.CartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, totals, err := h.usecase.UpdateCartQuantity(c.Request.Context(), serviceID, payload.Delta)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart, totals))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	serviceID := c.Param("service_id")

	cart, totals, err := h.usecase.RemoveFromCart(c.Request.Context(), serviceID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart, totals))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
