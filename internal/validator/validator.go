package validator

import (
	"errors"
	"time"

	"task-tracker/internal/models"
)

const deadlineLayout = "2006-01-02"

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrPriorityRequired = errors.New("priority is required")
	ErrStatusRequired   = errors.New("status is required")
	ErrDeadlineRequired = errors.New("deadline is required")
	ErrInvalidPriority  = errors.New("Invalid priority")
	ErrInvalidStatus    = errors.New("Invalid status")
	ErrInvalidDeadline  = errors.New("Deadline must be YYYY-MM-DD")
)

// ValidateTask checks a write payload and returns the first failing rule.
// Rules run in a fixed order: presence of title, priority, status and
// deadline, then priority membership, status membership, deadline format.
// Description is never validated. The same check applies to create and
// update since every write carries the full task.
func ValidateTask(req models.TaskRequest) error {
	switch {
	case req.Title == "":
		return ErrTitleRequired
	case req.Priority == "":
		return ErrPriorityRequired
	case req.Status == "":
		return ErrStatusRequired
	case req.Deadline == "":
		return ErrDeadlineRequired
	}

	switch models.Priority(req.Priority) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return ErrInvalidPriority
	}

	switch models.Status(req.Status) {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted:
	default:
		return ErrInvalidStatus
	}

	if _, err := time.Parse(deadlineLayout, req.Deadline); err != nil {
		return ErrInvalidDeadline
	}

	return nil
}
