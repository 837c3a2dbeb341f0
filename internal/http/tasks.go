package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordbank/internal/tasks"
)

// TaskStatuser reports task status. *tasks.Client implements it.
type TaskStatuser interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// TasksController handles task queue endpoints.
type TasksController struct {
	queue  TaskQueue
	status TaskStatuser
}

func NewTasksController(queue TaskQueue, status TaskStatuser) *TasksController {
	return &TasksController{queue: queue, status: status}
}

// TaskTypeInfo describes a task type that can be run manually.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RunTaskRequest carries task arguments.
type RunTaskRequest struct {
	// WordID is required for the enrich_word task
	WordID string `json:"word_id,omitempty"`
}

// ListTaskTypes handles GET /api/tasks/types
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"task_types": []TaskTypeInfo{
			{Type: "backup_snapshot", Description: "Write a backup of the vocabulary"},
			{Type: "enrich_word", Description: "Fill in a word's notes from the dictionary"},
			{Type: "enrich_missing_notes", Description: "Fill in notes for every word without them"},
		},
	})
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID, ok := requireParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.status.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTask handles POST /api/tasks/:id/run, where id is a task type.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("id")

	var req RunTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	var task backlite.Task
	switch taskType {
	case "backup_snapshot":
		task = tasks.BackupSnapshotTask{Reason: "manual"}
	case "enrich_word":
		if req.WordID == "" {
			respondBadRequest(c, "word_id is required for enrich_word task")
			return
		}
		task = tasks.EnrichWordTask{WordID: req.WordID}
	case "enrich_missing_notes":
		task = tasks.EnrichMissingNotesTask{}
	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	taskID, err := tc.queue.Enqueue(task)
	if err != nil {
		respondInternalError(c, err, "enqueue "+taskType)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"task_id": taskID,
		"type":    taskType,
		"message": "task enqueued",
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
