package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON blob file per collection under a data directory.
// It is private to one machine, mirroring the browser-local store it
// replaces. Replacement is atomic via temp file + rename, so a reader never
// observes a partial write of a single collection.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Initialize() error {
	return initializeDefaults(fs)
}

func (fs *FileStore) path(name string) string {
	return filepath.Join(fs.dir, name+".json")
}

func (fs *FileStore) ReadBlob(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (fs *FileStore) WriteBlob(name string, data []byte) error {
	tmp, err := os.CreateTemp(fs.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, fs.path(name))
}
