package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage writes payloads under a configured root directory,
// one uniquely named flat file per record.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

func (d *DiskStorage) Save(data []byte) (string, error) {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return "", fmt.Errorf("files: failed to create storage dir at %q: %w", d.root, err)
	}

	path := filepath.Join(d.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("files: failed to write payload: %w", err)
	}

	return path, nil
}
