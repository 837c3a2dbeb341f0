package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/backup"
	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/tasks"
)

// BackupStore writes and lists snapshot backups. *backup.Writer implements it.
type BackupStore interface {
	Write(snap entities.Snapshot) (string, error)
	List() ([]backup.Info, error)
}

type BackupsController struct {
	store     VocabularyStore
	backups   BackupStore
	taskQueue TaskQueue // nil writes backups inline
}

func NewBackupsController(store VocabularyStore, backups BackupStore, taskQueue TaskQueue) *BackupsController {
	return &BackupsController{
		store:     store,
		backups:   backups,
		taskQueue: taskQueue,
	}
}

// ListBackups returns the existing backups, oldest first.
// GET /api/backups
func (bc *BackupsController) ListBackups(c *gin.Context) {
	list, err := bc.backups.List()
	if err != nil {
		respondInternalError(c, err, "list backups")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"backups": list,
		"total":   len(list),
	})
}

// CreateBackup queues a backup, or writes it inline without a task queue.
// POST /api/backups
func (bc *BackupsController) CreateBackup(c *gin.Context) {
	if bc.taskQueue != nil {
		taskID, err := bc.taskQueue.Enqueue(tasks.BackupSnapshotTask{Reason: "manual"})
		if err != nil {
			respondInternalError(c, err, "enqueue backup")
			return
		}
		respondAccepted(c, "backup queued", gin.H{"task_id": taskID})
		return
	}

	path, err := bc.backups.Write(bc.store.Snapshot())
	if err != nil {
		respondInternalError(c, err, "write backup")
		return
	}
	respondCreated(c, gin.H{"path": path})
}
