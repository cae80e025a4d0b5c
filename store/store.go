package store

import (
	"encoding/json"
	"fmt"

	"whitelotus.com/wms/model"
)

// Collection names are part of the persisted-state contract. Stores written
// by earlier deployments use these exact keys.
const (
	WorkersKey    = "wl_workers"
	AttendanceKey = "wl_attendance"
	TasksKey      = "wl_tasks"
	SettingsKey   = "wl_settings"
)

// Store is a device-local blob store: whole-collection read, whole-collection
// replace. There is no transactional link between writes to different
// collections.
type Store interface {
	// Initialize creates any missing collection with its empty default.
	// Calling it again is a no-op.
	Initialize() error

	// ReadBlob returns the raw blob for name. The second result is false
	// when the collection has never been written.
	ReadBlob(name string) ([]byte, bool, error)

	// WriteBlob atomically replaces the blob for name.
	WriteBlob(name string, data []byte) error
}

// ReadCollection decodes the named collection. A missing collection reads as
// an empty slice, never an error.
func ReadCollection[T any](s Store, name string) ([]T, error) {
	data, ok, err := s.ReadBlob(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return items, nil
}

// WriteCollection replaces the named collection's entire contents.
func WriteCollection[T any](s Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.WriteBlob(name, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// initializeDefaults writes empty collections and the default settings record
// for any key not yet present. Shared by the Store implementations.
func initializeDefaults(s Store) error {
	for _, name := range []string{WorkersKey, AttendanceKey, TasksKey} {
		_, ok, err := s.ReadBlob(name)
		if err != nil {
			return err
		}
		if !ok {
			if err := s.WriteBlob(name, []byte("[]")); err != nil {
				return err
			}
		}
	}

	_, ok, err := s.ReadBlob(SettingsKey)
	if err != nil {
		return err
	}
	if !ok {
		data, err := json.Marshal(model.DefaultSettings())
		if err != nil {
			return err
		}
		if err := s.WriteBlob(SettingsKey, data); err != nil {
			return err
		}
	}
	return nil
}
