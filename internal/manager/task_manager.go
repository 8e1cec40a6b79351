package manager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"task-tracker/internal/logger"
	"task-tracker/internal/models"
	"task-tracker/internal/storage"
	"task-tracker/internal/validator"
)

var (
	createTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_tasks_created_total",
			Help: "Total number of CreateTask operations",
		},
		[]string{"status"},
	)

	updateTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_tasks_updated_total",
			Help: "Total number of UpdateTask operations",
		},
		[]string{"status"},
	)

	deleteTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_tasks_deleted_total",
			Help: "Total number of DeleteTask operations",
		},
		[]string{"status"},
	)

	createTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskapi_create_task_duration_seconds",
			Help:    "Duration of CreateTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	updateTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskapi_update_task_duration_seconds",
			Help:    "Duration of UpdateTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// TaskManager validates write payloads and delegates persistence to the
// configured storage. Every front end (HTTP, Telegram bot) goes through it,
// so validation and metrics apply uniformly.
type TaskManager struct {
	storage storage.Storage
	log     *logger.Logger
}

func NewTaskManager(s storage.Storage, log *logger.Logger) *TaskManager {
	return &TaskManager{storage: s, log: log}
}

func (tm *TaskManager) CreateTask(req models.TaskRequest) (int64, error) {
	startTime := time.Now()
	defer func() {
		createTaskDuration.Observe(time.Since(startTime).Seconds())
	}()

	if err := validator.ValidateTask(req); err != nil {
		createTaskCount.WithLabelValues("invalid").Inc()
		tm.log.Error(err, "Validation error")
		return 0, err
	}

	id, err := tm.storage.CreateTask(req)
	if err != nil {
		createTaskCount.WithLabelValues("error").Inc()
		tm.log.Error(err, "Create task failed")
		return 0, err
	}

	createTaskCount.WithLabelValues("success").Inc()
	tm.log.Info("Task created", "id", id)
	return id, nil
}

func (tm *TaskManager) GetAllTasks() ([]models.Task, error) {
	tasks, err := tm.storage.GetAllTasks()
	if err != nil {
		tm.log.Error(err, "Fetch tasks failed")
		return nil, err
	}
	return tasks, nil
}

func (tm *TaskManager) GetTask(id int64) (*models.Task, error) {
	return tm.storage.GetTask(id)
}

func (tm *TaskManager) UpdateTask(id int64, req models.TaskRequest) error {
	startTime := time.Now()
	defer func() {
		updateTaskDuration.Observe(time.Since(startTime).Seconds())
	}()

	if err := validator.ValidateTask(req); err != nil {
		updateTaskCount.WithLabelValues("invalid").Inc()
		tm.log.Error(err, "Validation error")
		return err
	}

	if err := tm.storage.UpdateTask(id, req); err != nil {
		updateTaskCount.WithLabelValues("error").Inc()
		if err != storage.ErrTaskNotFound {
			tm.log.Error(err, "Update task failed", "id", id)
		}
		return err
	}

	updateTaskCount.WithLabelValues("success").Inc()
	tm.log.Info("Task updated", "id", id)
	return nil
}

func (tm *TaskManager) DeleteTask(id int64) error {
	if err := tm.storage.DeleteTask(id); err != nil {
		deleteTaskCount.WithLabelValues("error").Inc()
		if err != storage.ErrTaskNotFound {
			tm.log.Error(err, "Delete task failed", "id", id)
		}
		return err
	}

	deleteTaskCount.WithLabelValues("success").Inc()
	tm.log.Info("Task deleted", "id", id)
	return nil
}
