package repository

import "context"

// IMediaStore is the external media host: it takes a local file path and
// returns a durable URL.
type IMediaStore interface {
	Upload(ctx context.Context, localPath, contentType string) (string, error)
}

// IDurationProbe reads the duration in seconds of a local media file.
type IDurationProbe interface {
	Duration(path string) (float64, error)
}
