package storage

import (
	"errors"
	"testing"

	"task-tracker/internal/models"
)

func TestMemoryStorageContract(t *testing.T) {
	m := NewMemoryStorage()

	id, err := m.CreateTask(sampleRequest())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	task, err := m.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if task.Title != "Write report" || task.CreatedAt == "" {
		t.Errorf("unexpected task: %+v", task)
	}

	update := models.TaskRequest{
		Title:    "Ship report",
		Priority: "Low",
		Status:   "Completed",
		Deadline: "2025-02-02",
	}
	if err := m.UpdateTask(id, update); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	after, _ := m.GetTask(id)
	if after.Title != "Ship report" || after.CreatedAt != task.CreatedAt {
		t.Errorf("update broke immutability: %+v", after)
	}

	if err := m.UpdateTask(99, update); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	if err := m.DeleteTask(id); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := m.DeleteTask(id); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestMemoryStorageListOrder(t *testing.T) {
	m := NewMemoryStorage()

	for _, title := range []string{"a", "b", "c"} {
		req := sampleRequest()
		req.Title = title
		if _, err := m.CreateTask(req); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, err := m.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(tasks) != 3 || tasks[0].Title != "a" || tasks[2].Title != "c" {
		t.Errorf("insertion order not preserved: %+v", tasks)
	}
}
