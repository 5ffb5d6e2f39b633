package service

import (
	"context"
	"io"
)

// MediaKind groups uploaded media under a key prefix.
type MediaKind string

const (
	MediaProfilePic MediaKind = "profile"
	MediaBlogCover  MediaKind = "cover"
)

// MediaObject is a stored media file opened for reading.
type MediaObject struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// MediaStore uploads images to the media host and returns their public URL.
type MediaStore interface {
	// Upload decodes a data URL or raw base64 image and stores it.
	Upload(ctx context.Context, kind MediaKind, payload string) (string, error)

	// Open streams a stored object by key.
	Open(ctx context.Context, key string) (*MediaObject, error)

	// Close releases the underlying bucket.
	Close() error
}
