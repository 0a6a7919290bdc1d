package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a directory on disk. It is the default when
// no R2 credentials are configured.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

func (l *LocalStorage) Upload(_ context.Context, key string, file multipart.File) (string, error) {
	// Base strips any path components a hostile filename might smuggle in.
	key = filepath.Base(key)

	dst, err := os.Create(filepath.Join(l.dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", l.baseURL, key), nil
}

// Open returns a stored file for download. Filenames are flattened to their
// base name so the handler can never read outside the upload directory.
func (l *LocalStorage) Open(filename string) (*os.File, error) {
	return os.Open(filepath.Join(l.dir, filepath.Base(filename)))
}
