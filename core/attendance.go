package core

import (
	"github.com/google/uuid"

	"whitelotus.com/wms/identity"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
	"whitelotus.com/wms/utils"
)

// MarkAttendance is the worker self-service path: one record dated today,
// check-in stamped only for PRESENT. Multiple records per worker per day are
// allowed; each call prepends a new one.
func (s *Service) MarkAttendance(workerID string, status model.AttendanceStatus, notes string) (*model.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	worker, err := s.findWorker(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, identity.ErrWorkerNotFound
	}

	now := s.now()
	record := model.AttendanceRecord{
		ID:         uuid.NewString(),
		WorkerID:   workerID,
		WorkerName: worker.Name,
		Date:       utils.DateOf(now),
		Timestamp:  utils.FormatISO(now),
		Status:     status,
		Notes:      notes,
	}
	if status == model.AttendancePresent {
		record.CheckIn = utils.FormatISO(now)
	}

	return s.prependRecord(record)
}

// CreateManualRecord is the admin path: an arbitrary calendar date with
// optional HH:mm check-in/check-out clocks combined into ISO instants.
func (s *Service) CreateManualRecord(workerID, date string, status model.AttendanceStatus, checkInTime, checkOutTime, notes string) (*model.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	worker, err := s.findWorker(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, identity.ErrWorkerNotFound
	}

	checkIn, err := utils.CombineDateTime(date, checkInTime)
	if err != nil {
		return nil, err
	}
	checkOut, err := utils.CombineDateTime(date, checkOutTime)
	if err != nil {
		return nil, err
	}

	record := model.AttendanceRecord{
		ID:         uuid.NewString(),
		WorkerID:   workerID,
		WorkerName: worker.Name,
		Date:       date,
		Timestamp:  utils.FormatISO(s.now()),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
		Notes:      notes,
	}

	return s.prependRecord(record)
}

// prependRecord keeps the most-recent-first retrieval contract. Caller holds
// the lock.
func (s *Service) prependRecord(record model.AttendanceRecord) (*model.AttendanceRecord, error) {
	records, err := store.ReadCollection[model.AttendanceRecord](s.store, store.AttendanceKey)
	if err != nil {
		return nil, err
	}
	records = append([]model.AttendanceRecord{record}, records...)
	if err := store.WriteCollection(s.store, store.AttendanceKey, records); err != nil {
		return nil, err
	}
	return &record, nil
}
