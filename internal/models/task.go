package models

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Task is the persisted record. CreatedAt and Deadline stay textual so
// responses carry them exactly as stored (RFC 3339 and YYYY-MM-DD).
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Deadline    string   `json:"deadline"`
	CreatedAt   string   `json:"created_at"`
}

// TaskRequest is the write payload for create and update. There is no
// partial update: every write must carry the full set of fields.
// Description is the only optional field and defaults to the empty string.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
}
