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

// CategoryHandler holds dependencies for category and subcategory handlers.
type CategoryHandler struct {
	categories    usecase.CategoryUsecase
	subcategories usecase.SubcategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(categories usecase.CategoryUsecase, subcategories usecase.SubcategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories, subcategories: subcategories}
}

// UpsertCategory creates or updates a category.
func (h *CategoryHandler) UpsertCategory(c echo.Context) error {
	var input *usecase.UpsertCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	res := h.categories.UpsertCategory(c.Request().Context(), middleware.ActorFromContext(c), input)

	return response.Result(c, res)
}

// DeleteCategory removes a category and its media.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	res := h.categories.DeleteCategory(c.Request().Context(), middleware.ActorFromContext(c), id)

	return response.Result(c, res)
}

// ListCategories returns all categories ordered by name.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetCategory returns one category by slug.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categories.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// UpsertSubcategory creates or updates a subcategory.
func (h *CategoryHandler) UpsertSubcategory(c echo.Context) error {
	var input *usecase.UpsertSubcategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	res := h.subcategories.UpsertSubcategory(c.Request().Context(), middleware.ActorFromContext(c), input)

	return response.Result(c, res)
}

// DeleteSubcategory removes a subcategory and its media.
func (h *CategoryHandler) DeleteSubcategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subcategory id")
	}

	res := h.subcategories.DeleteSubcategory(c.Request().Context(), middleware.ActorFromContext(c), id)

	return response.Result(c, res)
}

// ListSubcategories returns the subcategories of one category.
func (h *CategoryHandler) ListSubcategories(c echo.Context) error {
	categoryID, err := uuid.Parse(c.QueryParam("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid categoryId")
	}

	subcategories, err := h.subcategories.ListSubcategories(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subcategories, "")
}
