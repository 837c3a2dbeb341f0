package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordbank/internal/entities"
)

// SnapshotSource provides the current vocabulary snapshot.
type SnapshotSource interface {
	Snapshot() entities.Snapshot
}

// SnapshotWriter persists a snapshot somewhere durable and returns its location.
type SnapshotWriter interface {
	Write(snap entities.Snapshot) (string, error)
}

// BackupSnapshotTask writes a copy of the current vocabulary.
type BackupSnapshotTask struct {
	// Reason records what triggered the backup ("schedule", "manual").
	Reason string `json:"reason,omitempty"`
}

func (t BackupSnapshotTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "backup_snapshot",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// BackupSnapshotProcessor creates a processor writing the source snapshot
// through writer.
func BackupSnapshotProcessor(source SnapshotSource, writer SnapshotWriter) backlite.QueueProcessor[BackupSnapshotTask] {
	return func(ctx context.Context, task BackupSnapshotTask) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := source.Snapshot()
		path, err := writer.Write(snap)
		if err != nil {
			return fmt.Errorf("backup snapshot: %w", err)
		}

		log.Printf("[TASK] Backup (%s) written to %s", reasonOrDefault(task.Reason), path)
		return nil
	}
}

func NewBackupSnapshotQueue(source SnapshotSource, writer SnapshotWriter) backlite.Queue {
	return backlite.NewQueue(BackupSnapshotProcessor(source, writer))
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return "manual"
	}
	return reason
}
