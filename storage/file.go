package storage

import (
	"os"
	"path/filepath"
)

const filePermissions = 0644

// FileStore keeps one JSON file per key inside a data directory. It is the
// default adapter and mirrors the per-browser local storage of the original
// frontend: no external service, survives restarts on the same host.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the adapter.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes to a temp file first and renames it over the target, so a
// crash mid-write never leaves a truncated blob behind.
func (f *FileStore) Save(key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, filePermissions); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}
