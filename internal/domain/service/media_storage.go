// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// UploadedMedia is the result of a successful upload. Key is the delete key
// the media host hands back at upload time; it is persisted next to the URL
// so deletion never has to parse the URL's path segments.
type UploadedMedia struct {
	URL string
	Key string
}

// MediaStorage defines the external image-host contract consumed by the core.
// The core calls exactly two operations and treats both as opaque.
type MediaStorage interface {
	// Upload stores the file content under the given folder and returns the
	// public URL together with the delete key.
	Upload(ctx context.Context, content []byte, filename, contentType, folder string) (*UploadedMedia, error)

	// Delete removes a previously uploaded file by its delete key.
	Delete(ctx context.Context, key string) error
}
