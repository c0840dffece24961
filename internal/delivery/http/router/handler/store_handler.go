package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for the registration wizard and store handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// GetWizard restores (or opens) the registration wizard for the acting user.
func (h *StoreHandler) GetWizard(c echo.Context) error {
	view, err := h.uc.GetRegistrationWizard(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// PatchDraft merges a partial update into the persisted wizard draft.
func (h *StoreHandler) PatchDraft(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid draft patch")
	}

	view, err := h.uc.PatchDraft(c.Request().Context(), middleware.ActorFromContext(c), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AdvanceStep validates the current step and moves the wizard forward.
func (h *StoreHandler) AdvanceStep(c echo.Context) error {
	view, err := h.uc.AdvanceStep(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RetreatStep moves the wizard one step back.
func (h *StoreHandler) RetreatStep(c echo.Context) error {
	view, err := h.uc.RetreatStep(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AbandonDraft discards the persisted wizard draft.
func (h *StoreHandler) AbandonDraft(c echo.Context) error {
	if err := h.uc.AbandonDraft(c.Request().Context(), middleware.ActorFromContext(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Draft discarded")
}

// MissingFields lists the fields still required before submission.
func (h *StoreHandler) MissingFields(c echo.Context) error {
	fields, err := h.uc.MissingFields(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"missingFields": fields}, "")
}

// SubmitStore commits the assembled draft as a new store.
func (h *StoreHandler) SubmitStore(c echo.Context) error {
	res := h.uc.SubmitStore(c.Request().Context(), middleware.ActorFromContext(c))

	return response.Result(c, res)
}

// UpdateStore updates a store owned by the acting user.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var input *usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store update input")
	}

	res := h.uc.UpdateStore(c.Request().Context(), middleware.ActorFromContext(c), input)

	return response.Result(c, res)
}

// SetStoreStatus moderates a store (admin only).
func (h *StoreHandler) SetStoreStatus(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	res := h.uc.SetStoreStatus(c.Request().Context(), middleware.ActorFromContext(c), storeID, entity.StoreStatus(body.Status))

	return response.Result(c, res)
}

// ListOwnStores returns the stores owned by the acting user.
func (h *StoreHandler) ListOwnStores(c echo.Context) error {
	stores, err := h.uc.ListOwnStores(c.Request().Context(), middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}
