package core

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"whitelotus.com/wms/identity"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
	"whitelotus.com/wms/utils"
)

// AddWorker issues a fresh QR credential, stores a worker carrying only the
// credential's digest, and returns the raw token. This is the only time the
// token is available; it cannot be recovered afterwards.
func (s *Service) AddWorker(name, role string) (*model.Worker, string, error) {
	if name == "" || role == "" {
		return nil, "", fmt.Errorf("name and role are required")
	}

	token, digest, err := identity.IssueWorkerCredential()
	if err != nil {
		return nil, "", fmt.Errorf("issue credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workers, err := store.ReadCollection[model.Worker](s.store, store.WorkersKey)
	if err != nil {
		return nil, "", err
	}

	worker := model.Worker{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		QRHash:    digest,
		Status:    model.WorkerActive,
		CreatedAt: utils.FormatISO(s.now()),
		AvatarURL: avatarURL(name),
	}

	workers = append(workers, worker)
	if err := store.WriteCollection(s.store, store.WorkersKey, workers); err != nil {
		return nil, "", err
	}
	return &worker, token, nil
}

// DeleteWorker removes the worker if present and no-ops otherwise.
// Attendance records and tasks referencing the id are left in place; their
// name snapshots stay readable.
func (s *Service) DeleteWorker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers, err := store.ReadCollection[model.Worker](s.store, store.WorkersKey)
	if err != nil {
		return err
	}
	kept := utils.Filter(workers, func(w model.Worker) bool { return w.ID != id })
	return store.WriteCollection(s.store, store.WorkersKey, kept)
}

func (s *Service) findWorker(id string) (*model.Worker, error) {
	workers, err := store.ReadCollection[model.Worker](s.store, store.WorkersKey)
	if err != nil {
		return nil, err
	}
	return utils.Find(workers, func(w model.Worker) bool { return w.ID == id }), nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
