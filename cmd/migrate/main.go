package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"task-tracker/internal/config"
)

// Creates the database file and the tasks table if they do not exist.
// Safe to run repeatedly.
func main() {
	cfg := config.Load()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL CHECK(priority IN ('Low','Medium','High')),
		status TEXT NOT NULL CHECK(status IN ('Pending','In Progress','Completed')),
		deadline TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Error creating tasks table: %v", err)
	}

	log.Printf("Migration complete, database at %s", cfg.DBPath)
}
