package config

import "os"

// Config carries everything the process needs at startup. It is loaded once
// in main and passed down explicitly.
type Config struct {
	Addr     string
	DBPath   string
	LogPath  string
	LogLevel string
}

// Load reads configuration from the environment, falling back to defaults
// that match the development layout (local SQLite file, app.log beside it).
func Load() Config {
	return Config{
		Addr:     getenv("TASK_API_ADDR", ":8080"),
		DBPath:   getenv("TASK_API_DB", "data/tasks.db"),
		LogPath:  getenv("TASK_API_LOG", "app.log"),
		LogLevel: getenv("TASK_API_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
