package upload

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Storage persists uploaded images under an opaque filename and serves
// them back. The rest of the API only ever sees the returned path.
type Storage interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}

// LocalStorage keeps uploads on disk, the default backend.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(_ context.Context, filename, _ string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (s *LocalStorage) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(filename)))
}
