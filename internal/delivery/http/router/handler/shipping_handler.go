package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShippingHandler holds dependencies for shipping rate handlers.
type ShippingHandler struct {
	uc usecase.ShippingUsecase
}

// NewShippingHandler is the constructor for ShippingHandler, injected by Fx.
func NewShippingHandler(uc usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

// UpsertShippingRate creates or replaces the rate for one destination country.
func (h *ShippingHandler) UpsertShippingRate(c echo.Context) error {
	var input *usecase.UpsertShippingRateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping rate input")
	}

	res := h.uc.UpsertShippingRate(c.Request().Context(), middleware.ActorFromContext(c), input)

	return response.Result(c, res)
}

// ListStoreRates returns the configured rates of a store the actor owns.
func (h *ShippingHandler) ListStoreRates(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	rates, err := h.uc.ListStoreRates(c.Request().Context(), middleware.ActorFromContext(c), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "")
}

// GetShippingDetails resolves the effective shipping configuration for one
// store and destination country.
func (h *ShippingHandler) GetShippingDetails(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	details, err := h.uc.GetShippingDetails(c.Request().Context(), storeID, c.Param("country"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "")
}
