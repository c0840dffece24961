package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler holds dependencies for the public storefront handlers.
type StorefrontHandler struct {
	uc usecase.StorefrontUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler, injected by Fx.
func NewStorefrontHandler(uc usecase.StorefrontUsecase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// GetNavbarTaxonomy returns all categories with their subcategories.
func (h *StorefrontHandler) GetNavbarTaxonomy(c echo.Context) error {
	categories, err := h.uc.GetNavbarTaxonomy(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// SearchProducts matches products by name or variant keywords.
func (h *StorefrontHandler) SearchProducts(c echo.Context) error {
	products, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"), limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListLatestProducts returns the newest products for product cards.
func (h *StorefrontHandler) ListLatestProducts(c echo.Context) error {
	products, err := h.uc.ListLatestProducts(c.Request().Context(), limitParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetStorePage returns an active store with its products.
func (h *StorefrontHandler) GetStorePage(c echo.Context) error {
	page, err := h.uc.GetStorePage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetStoreQR renders a PNG QR code linking to the store page.
func (h *StorefrontHandler) GetStoreQR(c echo.Context) error {
	png, err := h.uc.GetStoreQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// limitParam parses the optional limit query parameter; the usecase clamps
// the final value.
func limitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}

	return limit
}
