package impl

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/service"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	storage *mockService.MockMediaStorage
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	storage := mockService.NewMockMediaStorage(t)
	svc := NewMediaService(storage, newDiscardLogger())

	return mediaServiceFixtures{service: svc, storage: storage}
}

func pngUpload(size int) *usecase.UploadMediaInput {
	return &usecase.UploadMediaInput{
		Content:     bytes.Repeat([]byte{0x1}, size),
		Filename:    "logo.png",
		ContentType: "image/png",
		Folder:      "stores",
	}
}

func TestMediaService_Upload_Success(t *testing.T) {
	fixtures := createTestMediaService(t)
	ctx := context.Background()
	input := pngUpload(512)

	fixtures.storage.EXPECT().
		Upload(ctx, input.Content, "logo.png", "image/png", "stores").
		Return(&service.UploadedMedia{
			URL: "https://media.example.com/stores/logo.png",
			Key: "stores/logo.png",
		}, nil)

	result := fixtures.service.Upload(ctx, userActor(), input)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.StatusCode)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://media.example.com/stores/logo.png", data["url"])
	assert.Equal(t, "stores/logo.png", data["key"])
}

func TestMediaService_Upload_UnsupportedType(t *testing.T) {
	fixtures := createTestMediaService(t)

	input := pngUpload(512)
	input.ContentType = "application/pdf"

	result := fixtures.service.Upload(context.Background(), userActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Contains(t, result.Message, "application/pdf")
}

func TestMediaService_Upload_TooLarge(t *testing.T) {
	fixtures := createTestMediaService(t)

	result := fixtures.service.Upload(context.Background(), userActor(), pngUpload(MaxUploadSize+1))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Contains(t, result.Message, "2.0 MB")
}

func TestMediaService_Upload_ExactCeilingAccepted(t *testing.T) {
	fixtures := createTestMediaService(t)
	ctx := context.Background()
	input := pngUpload(MaxUploadSize)

	fixtures.storage.EXPECT().
		Upload(ctx, input.Content, "logo.png", "image/png", "stores").
		Return(&service.UploadedMedia{URL: "u", Key: "k"}, nil)

	result := fixtures.service.Upload(ctx, userActor(), input)

	require.True(t, result.Success)
}

func TestMediaService_Upload_Unauthenticated(t *testing.T) {
	fixtures := createTestMediaService(t)

	result := fixtures.service.Upload(context.Background(), usecase.Actor{}, pngUpload(512))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
}

func TestMediaService_Delete_Success(t *testing.T) {
	fixtures := createTestMediaService(t)
	ctx := context.Background()

	fixtures.storage.EXPECT().Delete(ctx, "stores/logo.png").Return(nil)

	result := fixtures.service.Delete(ctx, userActor(), "stores/logo.png")

	require.True(t, result.Success)
}

func TestMediaService_Delete_MissingKey(t *testing.T) {
	fixtures := createTestMediaService(t)

	result := fixtures.service.Delete(context.Background(), userActor(), "")

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
}
