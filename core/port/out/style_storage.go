package out

import (
	"context"
	"io"
)

// UploadStore persists user-uploaded images.
type UploadStore interface {
	// Save stores r under a unique name derived from filename and returns
	// the public path the file is served from.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
