package model

type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// UnknownAssignee is the name snapshot recorded when a task is created
// against a worker id that no longer resolves.
const UnknownAssignee = "Unknown"

type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	AssignedTo   string     `json:"assignedTo"`
	AssignedName string     `json:"assignedName"`
	DueDate      string     `json:"dueDate"`
	Status       TaskStatus `json:"status"`
	CreatedAt    string     `json:"createdAt"`
}
