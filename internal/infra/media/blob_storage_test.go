package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStorage{
		bucket:  bucket,
		baseURL: "https://media.example.com",
	}
}

func TestBlobStorage_Upload(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	media, err := storage.Upload(ctx, []byte("fake png bytes"), "logo.PNG", "image/png", "stores")
	require.NoError(t, err)

	// Key lives under the folder and keeps only the lowercased extension.
	assert.True(t, strings.HasPrefix(media.Key, "stores/"))
	assert.True(t, strings.HasSuffix(media.Key, ".png"))
	assert.NotContains(t, media.Key, "logo")
	assert.Equal(t, "https://media.example.com/"+media.Key, media.URL)

	// The object is actually readable back from the bucket.
	content, err := storage.bucket.ReadAll(ctx, media.Key)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), content)
}

func TestBlobStorage_UploadWithoutFolder(t *testing.T) {
	storage := newTestStorage(t)

	media, err := storage.Upload(context.Background(), []byte("data"), "cover.jpg", "image/jpeg", "")
	require.NoError(t, err)
	assert.NotContains(t, media.Key, "/")
}

func TestBlobStorage_Delete(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	media, err := storage.Upload(ctx, []byte("data"), "img.webp", "image/webp", "products")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, media.Key))

	exists, err := storage.bucket.Exists(ctx, media.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	storage := newTestStorage(t)

	err := storage.Delete(context.Background(), "products/gone.png")
	assert.Error(t, err)
}
