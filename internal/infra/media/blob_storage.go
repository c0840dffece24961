// Package media stores uploaded images in a gocloud.dev blob bucket. The
// bucket URL decides the backend; fileblob serves local disk buckets and
// further drivers register themselves through their package init.
package media

import (
	"context"
	"path"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and returns it as a service.MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Media.BaseURL, "/"),
	}, nil
}

// Upload writes the file under a random key inside the given folder and
// returns the public URL together with the key used for later deletion.
func (s *blobStorage) Upload(ctx context.Context, content []byte, filename, contentType, folder string) (*service.UploadedMedia, error) {
	key := buildKey(folder, filename)

	err := s.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write media object")
	}

	return &service.UploadedMedia{
		URL: s.baseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a previously uploaded file by its delete key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}

// buildKey generates a collision-free object key. The original filename only
// contributes its extension; everything else comes from a fresh UUID so
// user-supplied names never reach the bucket.
func buildKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}

	return folder + "/" + name
}
