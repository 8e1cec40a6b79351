package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-tracker/internal/manager"
	"task-tracker/internal/models"
	"task-tracker/internal/storage"
	"task-tracker/internal/validator"
)

const (
	msgBadJSON       = "Request body must be valid JSON"
	msgNotFound      = "Task not found"
	msgInternalError = "Internal server error"
)

func NewRouter(tm *manager.TaskManager) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/tasks", createTaskHandler(tm))
	r.Get("/tasks", listTasksHandler(tm))
	r.Get("/tasks/{id}", getTaskHandler(tm))
	r.Put("/tasks/{id}", updateTaskHandler(tm))
	r.Delete("/tasks/{id}", deleteTaskHandler(tm))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func createTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgBadJSON)
			return
		}
		defer r.Body.Close()

		if _, err := tm.CreateTask(req); err != nil {
			if isValidationError(err) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Task created"})
	}
}

func listTasksHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := tm.GetAllTasks()
		if err != nil {
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		if tasks == nil {
			tasks = []models.Task{}
		}
		writeJSON(w, http.StatusOK, tasks)
	}
}

func getTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		task, err := tm.GetTask(id)
		if err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, task)
	}
}

func updateTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		var req models.TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgBadJSON)
			return
		}
		defer r.Body.Close()

		if err := tm.UpdateTask(id, req); err != nil {
			switch {
			case isValidationError(err):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, storage.ErrTaskNotFound):
				writeError(w, http.StatusNotFound, msgNotFound)
			default:
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Task updated"})
	}
}

func deleteTaskHandler(tm *manager.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		if err := tm.DeleteTask(id); err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
	}
}

// taskID parses the {id} URL parameter. A non-numeric id cannot match any
// row, so callers treat it as not found.
func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, validator.ErrTitleRequired),
		errors.Is(err, validator.ErrPriorityRequired),
		errors.Is(err, validator.ErrStatusRequired),
		errors.Is(err, validator.ErrDeadlineRequired),
		errors.Is(err, validator.ErrInvalidPriority),
		errors.Is(err, validator.ErrInvalidStatus),
		errors.Is(err, validator.ErrInvalidDeadline):
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
