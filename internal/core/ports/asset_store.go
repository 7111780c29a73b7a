package ports

import (
	"context"
	"io"
)

// AssetStore persists uploaded images under generated collision-resistant
// names. The local-disk implementation is the default; the interface keeps
// the storage backend pluggable.
type AssetStore interface {
	// Store validates originalName's extension against the image allow-list,
	// persists the content under a generated name, and returns that name.
	// Disallowed extensions yield domain.ErrUnsupportedMedia.
	Store(ctx context.Context, content io.Reader, originalName string) (string, error)
	// Delete removes a stored asset. Deleting a name that does not resolve
	// to an asset is a no-op; failures are for the caller to log, never to
	// abort a request over.
	Delete(ctx context.Context, name string) error
	// Retrieve returns the raw bytes of a stored asset, or
	// domain.ErrAssetNotFound.
	Retrieve(ctx context.Context, name string) ([]byte, error)
}
