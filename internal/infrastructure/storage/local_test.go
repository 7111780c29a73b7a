package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/licensehub/client-admin/internal/core/domain"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestLocalStore_StoreAndRetrieve(t *testing.T) {
	store := newTestStore(t)
	content := []byte("fake image bytes")

	name, err := store.Store(context.Background(), bytes.NewReader(content), "logo.png")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected .png suffix, got %q", name)
	}

	got, err := store.Retrieve(context.Background(), name)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("retrieved bytes differ")
	}
}

func TestLocalStore_ExtensionAllowList(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name    string
		allowed bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.gif", true},
		{"PHOTO.PNG", true},
		{"Photo.JpG", true},
		{"document.pdf", false},
		{"script.sh", false},
		{"archive.png.zip", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		_, err := store.Store(context.Background(), strings.NewReader("x"), tt.name)
		if tt.allowed && err != nil {
			t.Errorf("%s: expected accept, got %v", tt.name, err)
		}
		if !tt.allowed && !errors.Is(err, domain.ErrUnsupportedMedia) {
			t.Errorf("%s: expected ErrUnsupportedMedia, got %v", tt.name, err)
		}
	}
}

func TestLocalStore_ConcurrentStoresProduceDistinctNames(t *testing.T) {
	store := newTestStore(t)

	const n = 50
	names := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name, err := store.Store(context.Background(), strings.NewReader("x"), "a.jpg")
			if err != nil {
				t.Errorf("store %d: %v", i, err)
				return
			}
			names[i] = name
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate stored name %q", name)
		}
		seen[name] = struct{}{}
	}
}

func TestLocalStore_DeleteMissingIsNoOp(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete(context.Background(), "never-stored.png"); err != nil {
		t.Fatalf("delete of missing asset should not fail, got %v", err)
	}
}

func TestLocalStore_DeleteRemovesFile(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store(context.Background(), strings.NewReader("x"), "a.gif")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.Delete(context.Background(), name); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Retrieve(context.Background(), name); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound after delete, got %v", err)
	}
}

func TestLocalStore_RetrieveMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Retrieve(context.Background(), "ghost.png"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestLocalStore_RetrieveStripsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// A name with path separators must resolve inside the store directory.
	if err := os.WriteFile(filepath.Join(dir, "safe.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := store.Retrieve(context.Background(), "../"+filepath.Base(dir)+"/safe.png"); err != nil {
		t.Fatalf("base-name resolution failed: %v", err)
	}
	if _, err := store.Retrieve(context.Background(), "../../etc/passwd"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected traversal to miss, got %v", err)
	}
}
