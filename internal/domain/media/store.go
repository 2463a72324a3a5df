package media

import (
	"context"
	"io"
)

// Store is the blob storage collaborator. Upload with overwrite=false must
// fail if an object already exists at path; PublicURL is deterministic and
// valid immediately after a successful upload.
type Store interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string, overwrite bool) error
	PublicURL(path string) string
	ListPrefix(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, paths []string) error
}
