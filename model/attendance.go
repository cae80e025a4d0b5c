package model

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLeave   AttendanceStatus = "LEAVE"
)

// AttendanceRecord snapshots the worker name at write time. Deleting the
// worker later orphans the record but keeps the snapshot readable.
// Date is day-granular (yyyy-MM-dd); Timestamp/CheckIn/CheckOut are ISO
// instants. A worker may have any number of records on the same date.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	WorkerID   string           `json:"worker_id"`
	WorkerName string           `json:"worker_name"`
	Date       string           `json:"date"`
	Timestamp  string           `json:"timestamp"`
	CheckIn    string           `json:"check_in,omitempty"`
	CheckOut   string           `json:"check_out,omitempty"`
	Status     AttendanceStatus `json:"status"`
	Notes      string           `json:"notes,omitempty"`
}
