package http

import (
	"github.com/mrlokans/wordbank/internal/demo"
	"github.com/mrlokans/wordbank/internal/dictionary"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store VocabularyStore

	// Database is pinged by the health check (optional)
	Database Pinger

	// Application info
	Version string

	// Demo mode middleware (optional)
	DemoMiddleware *demo.Middleware

	// Dictionary lookups (optional)
	DictionaryClient dictionary.Client

	// Backups (optional)
	Backups BackupStore

	// Task queue (optional)
	TaskQueue  TaskQueue
	TaskStatus TaskStatuser
}
