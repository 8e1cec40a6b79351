package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"task-tracker/internal/models"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRequest() models.TaskRequest {
	return models.TaskRequest{
		Title:       "Write report",
		Description: "quarterly numbers",
		Priority:    "High",
		Status:      "Pending",
		Deadline:    "2025-01-01",
	}
}

func TestCreateAndGetTask(t *testing.T) {
	s := newTestStorage(t)

	req := sampleRequest()
	id, err := s.CreateTask(req)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if id != 1 {
		t.Errorf("expected first id to be 1, got %d", id)
	}

	task, err := s.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}

	if task.Title != req.Title ||
		task.Description != req.Description ||
		string(task.Priority) != req.Priority ||
		string(task.Status) != req.Status ||
		task.Deadline != req.Deadline {
		t.Errorf("stored task does not match request: %+v", task)
	}
	if task.CreatedAt == "" {
		t.Error("created_at must be assigned by the store")
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.GetTask(42); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestGetAllTasksOrder(t *testing.T) {
	s := newTestStorage(t)

	for _, title := range []string{"first", "second", "third"} {
		req := sampleRequest()
		req.Title = title
		if _, err := s.CreateTask(req); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, err := s.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, title := range []string{"first", "second", "third"} {
		if tasks[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, tasks[i].Title)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	s := newTestStorage(t)

	id, err := s.CreateTask(sampleRequest())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	before, err := s.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}

	update := models.TaskRequest{
		Title:    "Ship report",
		Priority: "Low",
		Status:   "Completed",
		Deadline: "2025-02-02",
	}
	if err := s.UpdateTask(id, update); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	after, err := s.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if after.Title != "Ship report" || after.Status != models.StatusCompleted {
		t.Errorf("update not applied: %+v", after)
	}
	if after.Description != "" {
		t.Errorf("update must replace all mutable fields, description = %q", after.Description)
	}
	if after.CreatedAt != before.CreatedAt {
		t.Errorf("created_at changed on update: %q -> %q", before.CreatedAt, after.CreatedAt)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.CreateTask(sampleRequest()); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := s.UpdateTask(999, sampleRequest()); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	tasks, err := s.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("row count changed by a not-found update: %d", len(tasks))
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStorage(t)

	id, err := s.CreateTask(sampleRequest())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := s.DeleteTask(id); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	// Deleting again reports not found, never an error of another kind.
	if err := s.DeleteTask(id); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

// id values come from AUTOINCREMENT and are never reused, even after the
// highest row is deleted.
func TestIDsNotReused(t *testing.T) {
	s := newTestStorage(t)

	id1, err := s.CreateTask(sampleRequest())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := s.DeleteTask(id1); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	id2, err := s.CreateTask(sampleRequest())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("id reused after delete: first %d, second %d", id1, id2)
	}
}

func TestEnumConstraintEnforcedByStore(t *testing.T) {
	s := newTestStorage(t)

	req := sampleRequest()
	req.Priority = "Critical"
	if _, err := s.CreateTask(req); err == nil {
		t.Error("expected the CHECK constraint to reject an unknown priority")
	}
}

func TestSchemaInitIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	s1, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	if _, err := s1.CreateTask(sampleRequest()); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	s1.Close()

	s2, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	tasks, err := s2.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected data to survive reopen, got %d tasks", len(tasks))
	}
}
