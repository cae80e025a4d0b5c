package core

import (
	"encoding/json"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
)

// GetSettings reads the singleton settings record and merges it over the
// hard-coded defaults, so fields introduced after the blob was written still
// resolve.
func (s *Service) GetSettings() (model.SystemSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readSettings()
}

func (s *Service) readSettings() (model.SystemSettings, error) {
	data, ok, err := s.store.ReadBlob(store.SettingsKey)
	if err != nil {
		return model.SystemSettings{}, err
	}
	if !ok || len(data) == 0 {
		return model.DefaultSettings(), nil
	}
	var settings model.SystemSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.SystemSettings{}, err
	}
	return settings.MergeDefaults(), nil
}

// UpdateSettings overwrites the whole record. Callers pass the full desired
// state; fields they leave zero fall back to defaults on the next read.
func (s *Service) UpdateSettings(settings model.SystemSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.store.WriteBlob(store.SettingsKey, data)
}
