package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	server "task-tracker"
	"task-tracker/internal/config"
	"task-tracker/internal/logger"
	"task-tracker/internal/manager"
	"task-tracker/internal/storage"
)

func main() {
	cfg := config.Load()

	appLog, logFile, err := logger.OpenFile(cfg.LogPath, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer logFile.Close()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		appLog.Error(err, "Error initializing storage")
		log.Fatalf("Error initializing storage: %v", err)
	}
	defer store.Close()

	appLog.Info("Storage initialized", "path", cfg.DBPath)

	tm := manager.NewTaskManager(store, appLog)
	router := server.NewRouter(tm)

	appLog.Info("Server starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		appLog.Error(err, "Server stopped")
		log.Fatalf("Server stopped: %v", err)
	}
}
