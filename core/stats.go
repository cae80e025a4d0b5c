package core

import (
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/utils"
)

type DashboardStats struct {
	TotalWorkers int `json:"totalWorkers"`
	PresentToday int `json:"presentToday"`
	AbsentToday  int `json:"absentToday"`
	OnLeaveToday int `json:"onLeaveToday"`
}

type ChartPoint struct {
	Name    string `json:"name"`
	Present int    `json:"Present"`
	Absent  int    `json:"Absent"`
	Leave   int    `json:"Leave"`
}

// Snapshot is the read-only view handed to the AI advisory boundary.
type Snapshot struct {
	Workers    []model.Worker
	Attendance []model.AttendanceRecord
	Today      string
}

func (s *Service) DashboardStats() (DashboardStats, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return DashboardStats{}, err
	}
	todays := utils.Filter(snap.Attendance, func(r model.AttendanceRecord) bool {
		return r.Date == snap.Today
	})
	count := func(status model.AttendanceStatus) int {
		return len(utils.Filter(todays, func(r model.AttendanceRecord) bool { return r.Status == status }))
	}
	return DashboardStats{
		TotalWorkers: len(snap.Workers),
		PresentToday: count(model.AttendancePresent),
		AbsentToday:  count(model.AttendanceAbsent),
		OnLeaveToday: count(model.AttendanceLeave),
	}, nil
}

// WeeklyChart buckets the last seven days, oldest first, by status.
func (s *Service) WeeklyChart() ([]ChartPoint, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	byDate := utils.GroupBy(snap.Attendance, func(r model.AttendanceRecord) string { return r.Date })

	now := s.now()
	points := make([]ChartPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := utils.DateOf(now.AddDate(0, 0, -i))
		recs := byDate[date]
		point := ChartPoint{Name: date[5:]}
		for _, r := range recs {
			switch r.Status {
			case model.AttendancePresent:
				point.Present++
			case model.AttendanceAbsent:
				point.Absent++
			case model.AttendanceLeave:
				point.Leave++
			}
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *Service) Snapshot() (Snapshot, error) {
	workers, err := s.ListWorkers()
	if err != nil {
		return Snapshot{}, err
	}
	attendance, err := s.ListAttendance()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Workers:    workers,
		Attendance: attendance,
		Today:      utils.DateOf(s.now()),
	}, nil
}
