// Package core is the domain operations layer: CRUD over the four persisted
// collections (workers, attendance, tasks, settings), credential issuance and
// verification, demo seeding and attendance export.
package core

import (
	"fmt"
	"sync"
	"time"

	"whitelotus.com/wms/identity"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
)

// Service owns an explicit store handle. The mutex serializes every
// read-modify-write cycle, so concurrent API requests cannot silently drop
// each other's writes the way two browser tabs against the original
// local store could.
type Service struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
}

func NewService(s store.Store) (*Service, error) {
	if err := s.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &Service{store: s, now: time.Now}, nil
}

func (s *Service) ListWorkers() ([]model.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.ReadCollection[model.Worker](s.store, store.WorkersKey)
}

func (s *Service) ListAttendance() ([]model.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.ReadCollection[model.AttendanceRecord](s.store, store.AttendanceKey)
}

func (s *Service) ListTasks() ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.ReadCollection[model.Task](s.store, store.TasksKey)
}

// AuthenticateWorker resolves a presented QR token to a worker, or
// identity.ErrWorkerNotFound.
func (s *Service) AuthenticateWorker(token string) (*model.Worker, error) {
	workers, err := s.ListWorkers()
	if err != nil {
		return nil, err
	}
	return identity.VerifyWorkerToken(token, workers)
}

// AuthenticateAdmin checks the admin username/password against stored
// settings.
func (s *Service) AuthenticateAdmin(username, password string) (bool, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return false, err
	}
	return identity.VerifyAdminCredentials(username, password, settings), nil
}
