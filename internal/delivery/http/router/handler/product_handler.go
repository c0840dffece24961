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

// ProductHandler holds dependencies for catalog authoring handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// UpsertProduct creates or updates a product with its full variant set.
func (h *ProductHandler) UpsertProduct(c echo.Context) error {
	var input *usecase.UpsertProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	res := h.uc.UpsertProduct(c.Request().Context(), middleware.ActorFromContext(c), input)

	return response.Result(c, res)
}

// DeleteProduct removes a product and all of its variants.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	res := h.uc.DeleteProduct(c.Request().Context(), middleware.ActorFromContext(c), id)

	return response.Result(c, res)
}

// ListStoreProducts returns the products of a store the actor owns.
func (h *ProductHandler) ListStoreProducts(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	products, err := h.uc.ListStoreProducts(c.Request().Context(), middleware.ActorFromContext(c), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}
