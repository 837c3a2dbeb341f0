package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/tasks"
)

type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite" // Snapshot slot in the SQLite database (default)
	StorageBackendFile   StorageBackend = "file"   // Snapshot as a JSON file
	StorageBackendMemory StorageBackend = "memory" // Nothing survives a restart
)

type (
	Config struct {
		HTTP
		Global
		Database
		Storage
		Demo
		Backup
		Tasks
		Dictionary
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Storage struct {
		Backend  StorageBackend
		FilePath string // Used by the file backend
		Key      string // Slot key the snapshot is stored under
	}
	Demo struct {
		Enabled bool // Seed defaults when empty and reject writes
	}
	Backup struct {
		Enabled   bool
		Schedule  string // Cron format: "0 3 * * *" = daily at 03:00
		Dir       string
		Retention int // Number of backup files to keep, 0 keeps all
	}
	Tasks struct {
		Enabled         bool
		DBPath          string // Defaults to the database path with a "-tasks" suffix
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Dictionary struct {
		Enabled bool
		BaseURL string
		Timeout time.Duration
	}
)

// TaskConfig converts the task settings for the task queue.
func (t Tasks) TaskConfig() tasks.Config {
	return tasks.Config{
		Workers:         t.Workers,
		ReleaseAfter:    t.ReleaseAfter,
		CleanupInterval: t.CleanupInterval,
	}
}

// Durable reports whether saved data survives a restart.
func (s Storage) Durable() bool {
	return s.Backend != StorageBackendMemory
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Storage defaults
	v.SetDefault("storage_backend", string(StorageBackendSQLite))
	v.SetDefault("storage_file_path", DefaultStorageFilePath)
	v.SetDefault("storage_key", entities.SlotKeyVocabulary)

	v.SetDefault("demo_mode", false)

	// Backup defaults
	v.SetDefault("backup_enabled", false)
	v.SetDefault("backup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("backup_retention", 7)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_db_path", "")
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Dictionary defaults
	v.SetDefault("dictionary_enabled", false)
	v.SetDefault("dictionary_base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionary_timeout", "10s")

	cfg := &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Storage: Storage{
			Backend:  StorageBackend(v.GetString("STORAGE_BACKEND")),
			FilePath: v.GetString("STORAGE_FILE_PATH"),
			Key:      v.GetString("STORAGE_KEY"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		Backup: Backup{
			Enabled:   v.GetBool("BACKUP_ENABLED"),
			Schedule:  v.GetString("BACKUP_SCHEDULE"),
			Dir:       v.GetString("BACKUP_DIR"),
			Retention: v.GetInt("BACKUP_RETENTION"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DBPath:          v.GetString("TASKS_DB_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Dictionary: Dictionary{
			Enabled: v.GetBool("DICTIONARY_ENABLED"),
			BaseURL: v.GetString("DICTIONARY_BASE_URL"),
			Timeout: v.GetDuration("DICTIONARY_TIMEOUT"),
		},
	}

	if cfg.Tasks.DBPath == "" {
		cfg.Tasks.DBPath = tasks.TasksDBPath(cfg.Database.Path)
	}

	return cfg
}
