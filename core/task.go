package core

import (
	"fmt"

	"github.com/google/uuid"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
	"whitelotus.com/wms/utils"
)

// AddTask creates a PENDING task. The assignee name is snapshotted at
// creation; an unresolvable worker id falls back to the Unknown sentinel
// rather than failing.
func (s *Service) AddTask(title, description, assignedWorkerID, dueDate string) (*model.Task, error) {
	if title == "" || assignedWorkerID == "" {
		return nil, fmt.Errorf("title and assigned worker are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignedName := model.UnknownAssignee
	worker, err := s.findWorker(assignedWorkerID)
	if err != nil {
		return nil, err
	}
	if worker != nil {
		assignedName = worker.Name
	}

	task := model.Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		AssignedTo:   assignedWorkerID,
		AssignedName: assignedName,
		DueDate:      dueDate,
		Status:       model.TaskPending,
		CreatedAt:    utils.FormatISO(s.now()),
	}

	tasks, err := store.ReadCollection[model.Task](s.store, store.TasksKey)
	if err != nil {
		return nil, err
	}
	tasks = append([]model.Task{task}, tasks...)
	if err := store.WriteCollection(s.store, store.TasksKey, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus flips the two-state status in place. Either actor may
// toggle in either direction; an unknown id is silently ignored.
func (s *Service) UpdateTaskStatus(taskID string, status model.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := store.ReadCollection[model.Task](s.store, store.TasksKey)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Status = status
		}
	}
	return store.WriteCollection(s.store, store.TasksKey, tasks)
}

func (s *Service) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := store.ReadCollection[model.Task](s.store, store.TasksKey)
	if err != nil {
		return err
	}
	kept := utils.Filter(tasks, func(t model.Task) bool { return t.ID != taskID })
	return store.WriteCollection(s.store, store.TasksKey, kept)
}
