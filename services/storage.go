package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rpupo63/bilingual-portfolio-backend/config"
)

// FileStorage is the collaborator that keeps uploaded project images.
// Remove is idempotent: removing a path that does not exist is not an error.
type FileStorage interface {
	Store(ctx context.Context, path string, r io.Reader) error
	Remove(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}

// LocalStorage writes files under a single upload directory on disk.
type LocalStorage struct {
	root string
}

// NewLocalStorage builds disk-backed storage rooted at UPLOAD_DIR
// (default "static/images", matching the legacy layout).
func NewLocalStorage(cfg map[string]string) *LocalStorage {
	return &LocalStorage{
		root: config.GetString(cfg, "UPLOAD_DIR", filepath.Join("static", "images")),
	}
}

func (s *LocalStorage) Store(_ context.Context, path string, r io.Reader) error {
	fullPath := filepath.Join(s.root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func (s *LocalStorage) Remove(_ context.Context, path string) error {
	err := os.Remove(filepath.Join(s.root, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}

func (s *LocalStorage) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
