package core

import (
	"encoding/json"
	"fmt"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/store"
	"whitelotus.com/wms/utils"
)

var demoRoster = []struct {
	Name string
	Role string
}{
	{"Tanya McQuoid", "General Manager"},
	{"Armond Beaumont", "Resort Manager"},
	{"Belinda Lindsey", "Spa Manager"},
	{"Shane Patton", "Guest Relations"},
}

// Weekday attendance pattern per roster index: everyone present except the
// managers' occasional absence and leave, to make the dashboard non-trivial.
var demoStatus = map[int]map[int]model.AttendanceStatus{
	1: {2: model.AttendanceAbsent},
	2: {1: model.AttendanceLeave, 2: model.AttendanceLeave},
	3: {4: model.AttendanceAbsent},
}

// SeedDemoData destructively resets all four collections, then inserts the
// demo roster, five days of attendance history and two tasks. Each insert is
// a separate store write; a failure partway leaves a mix of reset and seeded
// data, which a re-run repairs. Returns the freshly issued QR tokens keyed by
// worker name, the only time they are visible.
func (s *Service) SeedDemoData() (map[string]string, error) {
	if err := s.reset(); err != nil {
		return nil, fmt.Errorf("reset store: %w", err)
	}

	tokens := make(map[string]string, len(demoRoster))
	workers := make([]model.Worker, 0, len(demoRoster))
	for _, m := range demoRoster {
		w, token, err := s.AddWorker(m.Name, m.Role)
		if err != nil {
			return nil, fmt.Errorf("seed worker %s: %w", m.Name, err)
		}
		tokens[w.Name] = token
		workers = append(workers, *w)
	}

	today := s.now()
	for i, w := range workers {
		for daysAgo := 0; daysAgo < 5; daysAgo++ {
			date := utils.DateOf(today.AddDate(0, 0, -daysAgo))
			status := model.AttendancePresent
			if st, ok := demoStatus[i][daysAgo]; ok {
				status = st
			}
			checkIn, checkOut := "09:00", "17:30"
			if status != model.AttendancePresent {
				checkIn, checkOut = "", ""
			}
			if _, err := s.CreateManualRecord(w.ID, date, status, checkIn, checkOut, ""); err != nil {
				return nil, fmt.Errorf("seed attendance for %s: %w", w.Name, err)
			}
		}
	}

	due := utils.DateOf(today.AddDate(0, 0, 3))
	if _, err := s.AddTask("Prepare weekly staff roster", "Draft next week's shift coverage for review.", workers[0].ID, due); err != nil {
		return nil, fmt.Errorf("seed task: %w", err)
	}
	due = utils.DateOf(today.AddDate(0, 0, 5))
	if _, err := s.AddTask("Restock spa supplies", "", workers[2].ID, due); err != nil {
		return nil, fmt.Errorf("seed task: %w", err)
	}

	return tokens, nil
}

func (s *Service) reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{store.WorkersKey, store.AttendanceKey, store.TasksKey} {
		if err := s.store.WriteBlob(name, []byte("[]")); err != nil {
			return err
		}
	}
	data, err := json.Marshal(model.DefaultSettings())
	if err != nil {
		return err
	}
	return s.store.WriteBlob(store.SettingsKey, data)
}
