package storage

import (
	"errors"
	"sync"
	"time"

	"task-tracker/internal/models"
)

// ErrTaskNotFound is returned when no row matches the requested id.
var ErrTaskNotFound = errors.New("task not found")

// Storage is the persistence contract for task records. Every operation is
// an independent unit of work; ids are assigned by the backing store and
// never reused.
type Storage interface {
	CreateTask(req models.TaskRequest) (int64, error)
	GetAllTasks() ([]models.Task, error)
	GetTask(id int64) (*models.Task, error)
	UpdateTask(id int64, req models.TaskRequest) error
	DeleteTask(id int64) error

	Close() error
}

// MemoryStorage keeps tasks in process memory. It backs the HTTP tests and
// doubles as a fallback store when no database file is wanted.
type MemoryStorage struct {
	mu     sync.Mutex
	tasks  map[int64]models.Task
	order  []int64
	nextID int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		tasks:  make(map[int64]models.Task),
		nextID: 1,
	}
}

func (m *MemoryStorage) CreateTask(req models.TaskRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	m.tasks[id] = models.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.Priority(req.Priority),
		Status:      models.Status(req.Status),
		Deadline:    req.Deadline,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	m.order = append(m.order, id)

	return id, nil
}

func (m *MemoryStorage) GetAllTasks() ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]models.Task, 0, len(m.order))
	for _, id := range m.order {
		if task, ok := m.tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (m *MemoryStorage) GetTask(id int64) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &task, nil
}

func (m *MemoryStorage) UpdateTask(id int64, req models.TaskRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}

	// created_at is immutable; everything else is replaced wholesale.
	task.Title = req.Title
	task.Description = req.Description
	task.Priority = models.Priority(req.Priority)
	task.Status = models.Status(req.Status)
	task.Deadline = req.Deadline
	m.tasks[id] = task

	return nil
}

func (m *MemoryStorage) DeleteTask(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(m.tasks, id)

	for i, tid := range m.order {
		if tid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
