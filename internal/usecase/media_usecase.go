package usecase

import "context"

// MediaUsecase guards the media host behind the core's upload constraints:
// MIME allow-list and size ceiling are enforced before any network call.
type MediaUsecase interface {
	// Upload validates and stores an image, returning the public URL and
	// the delete key in the result data.
	Upload(ctx context.Context, actor Actor, input *UploadMediaInput) *Result

	// Delete removes a previously uploaded image by its delete key.
	Delete(ctx context.Context, actor Actor, key string) *Result
}

// UploadMediaInput is one multipart upload: the file content plus the
// target folder on the media host.
type UploadMediaInput struct {
	Content     []byte `json:"-"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Folder      string `json:"folder"`
}
