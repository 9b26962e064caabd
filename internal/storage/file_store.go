package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// FileStore keeps uploaded lesson summary files on local disk.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes an uploaded file under the given key.
func (s *FileStore) Save(key string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(s.Path(key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Remove deletes the file for key. Removing a missing file is a no-op.
func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Exists reports whether the file for key is present on disk.
func (s *FileStore) Exists(key string) bool {
	_, err := os.Stat(s.Path(key))
	return err == nil
}

// Path returns the on-disk path for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}
