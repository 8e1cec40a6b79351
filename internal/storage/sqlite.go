package storage

import (
	"database/sql"
	"fmt"
	"time"

	"task-tracker/internal/models"

	_ "modernc.org/sqlite"
)

type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the database file and makes sure the
// tasks table exists. The enum constraints are doubled at the storage level
// so a bad write fails even if it slips past validation.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStorage{db: db}, nil
}

func createTables(db *sql.DB) error {
	createTasksTable := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL CHECK(priority IN ('Low','Medium','High')),
		status TEXT NOT NULL CHECK(status IN ('Pending','In Progress','Completed')),
		deadline TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`

	if _, err := db.Exec(createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) CreateTask(req models.TaskRequest) (int64, error) {
	query := `
	INSERT INTO tasks (title, description, priority, status, deadline, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	result, err := s.db.Exec(query,
		req.Title, req.Description, req.Priority, req.Status, req.Deadline,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (s *SQLiteStorage) GetAllTasks() ([]models.Task, error) {
	query := `
	SELECT id, title, description, priority, status, deadline, created_at
	FROM tasks ORDER BY id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID, &task.Title, &task.Description,
			&task.Priority, &task.Status, &task.Deadline, &task.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *SQLiteStorage) GetTask(id int64) (*models.Task, error) {
	query := `
	SELECT id, title, description, priority, status, deadline, created_at
	FROM tasks WHERE id = ?`

	var task models.Task
	err := s.db.QueryRow(query, id).Scan(
		&task.ID, &task.Title, &task.Description,
		&task.Priority, &task.Status, &task.Deadline, &task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// UpdateTask replaces every mutable field of the matching row in one
// statement. created_at is deliberately absent from the SET list. Zero rows
// affected means the id does not exist.
func (s *SQLiteStorage) UpdateTask(id int64, req models.TaskRequest) error {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, priority = ?, status = ?, deadline = ?
	WHERE id = ?`

	result, err := s.db.Exec(query,
		req.Title, req.Description, req.Priority, req.Status, req.Deadline, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *SQLiteStorage) DeleteTask(id int64) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
