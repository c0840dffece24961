package impl

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"
)

// MaxUploadSize is the hard ceiling for a single image upload.
const MaxUploadSize = 2 << 20 // 2 MiB

// allowedImageTypes is the MIME allow-list for image uploads. Anything else
// is rejected before a single byte reaches the media host.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/svg+xml": {},
	"image/webp":    {},
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage service.MediaStorage
	logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	storage service.MediaStorage,
	logger *slog.Logger,
) usecase.MediaUsecase {
	return &mediaService{
		storage: storage,
		logger:  logger,
	}
}

// Upload validates the file against the MIME allow-list and the size ceiling,
// then stores it. The result data carries the public URL together with the
// delete key, so callers persist both and never have to derive the key from
// the URL later.
func (srv *mediaService) Upload(ctx context.Context, actor usecase.Actor, input *usecase.UploadMediaInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}

	if _, ok := allowedImageTypes[input.ContentType]; !ok {
		return usecase.Fail(http.StatusBadRequest, "Unsupported image type: "+input.ContentType)
	}
	if len(input.Content) == 0 {
		return usecase.Fail(http.StatusBadRequest, "Empty file")
	}
	if len(input.Content) > MaxUploadSize {
		return usecase.Fail(http.StatusBadRequest, "File exceeds the maximum allowed size of "+util.FormatBytes(MaxUploadSize))
	}

	uploaded, err := srv.storage.Upload(ctx, input.Content, input.Filename, input.ContentType, input.Folder)
	if err != nil {
		srv.logger.Error("media upload failed", "filename", input.Filename, "error", err)

		return usecase.Internal()
	}

	return usecase.OK(http.StatusCreated, "File uploaded", map[string]any{
		"url": uploaded.URL,
		"key": uploaded.Key,
	})
}

// Delete removes a previously uploaded image by its delete key.
func (srv *mediaService) Delete(ctx context.Context, actor usecase.Actor, key string) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if key == "" {
		return usecase.Fail(http.StatusBadRequest, "Missing delete key")
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.logger.Error("media delete failed", "key", key, "error", err)

		return usecase.Internal()
	}

	return usecase.OK(http.StatusOK, "File deleted", nil)
}
