package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore menyimpan objek di filesystem lokal dan melayani public URL
// lewat route statis milik server (lihat registry).
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Upload(ctx context.Context, bucket, path string, data []byte, upsert bool) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("invalid object path: %s", path)
	}

	fullPath := filepath.Join(s.root, bucket, filepath.FromSlash(path))

	if !upsert {
		if _, err := os.Stat(fullPath); err == nil {
			return fmt.Errorf("object already exists: %s/%s", bucket, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, 0o644)
}

func (s *DiskStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, path)
}
