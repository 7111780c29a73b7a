// Package storage provides the local-disk implementation of the asset store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// allowedExtensions is the image extension allow-list, matched
// case-insensitively against the uploaded file's name.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// LocalStore persists uploaded images in a single directory on local disk.
// Stored names combine a nanosecond timestamp with a random integer suffix
// and the original extension, which keeps concurrent uploads collision-free
// in practice without checking existing names.
type LocalStore struct {
	dir string
	log zerolog.Logger
}

// NewLocalStore ensures dir exists and returns a store rooted there.
func NewLocalStore(dir string, log zerolog.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	return &LocalStore{dir: dir, log: log}, nil
}

func (s *LocalStore) Store(_ context.Context, content io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedMedia
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000_000), ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write asset: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close asset: %w", err)
	}

	return name, nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("asset", name).Msg("delete of missing asset skipped")
		return nil
	}
	return err
}

func (s *LocalStore) Retrieve(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	return data, nil
}
