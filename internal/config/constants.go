package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./wordbank.db"

	// DefaultStorageFilePath is the default path for the JSON file backend
	DefaultStorageFilePath = "./wordbank.json"

	// DefaultBackupDir is where snapshot backups are written
	DefaultBackupDir = "./backups"
)
