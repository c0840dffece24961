package handler

import (
	"io"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for media upload handlers.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload accepts one multipart file and hands it to the media usecase,
// which enforces the MIME allow-list and the size ceiling.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	// Read at most one byte past the ceiling so oversized uploads are
	// rejected without buffering the whole request body.
	content, err := io.ReadAll(io.LimitReader(src, impl.MaxUploadSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	res := h.uc.Upload(c.Request().Context(), middleware.ActorFromContext(c), &usecase.UploadMediaInput{
		Content:     content,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Folder:      c.FormValue("folder"),
	})

	return response.Result(c, res)
}

// Delete removes a previously uploaded image by its delete key.
func (h *MediaHandler) Delete(c echo.Context) error {
	res := h.uc.Delete(c.Request().Context(), middleware.ActorFromContext(c), c.QueryParam("key"))

	return response.Result(c, res)
}
