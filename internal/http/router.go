package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Store, cfg.Version)
	words := NewWordsController(cfg.Store, cfg.TaskQueue)
	tags := NewTagsController(cfg.Store)
	search := NewSearchController(cfg.Store)
	quiz := NewQuizController(cfg.Store)
	data := NewDataController(cfg.Store)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Words
	api.GET("/words", words.ListWords)
	api.POST("/words", words.AddWord)
	api.GET("/words/:id", words.GetWord)
	api.PUT("/words/:id", words.UpdateWord)
	api.DELETE("/words/:id", words.DeleteWord)
	api.POST("/words/:id/enrich", words.EnrichWord)

	// Tags
	api.GET("/tags", tags.GetAllTags)
	api.POST("/tags", tags.CreateTag)
	api.DELETE("/tags/:id", tags.DeleteTag)

	// Search
	api.GET("/search", search.Search)

	// Quiz
	api.POST("/quiz", quiz.GenerateQuiz)
	api.GET("/quiz", quiz.GetCurrentQuiz)
	api.POST("/quiz/results", quiz.RecordResults)

	// Import / export
	api.GET("/data/export", data.Export)
	api.POST("/data/import", data.Import)
	api.DELETE("/data", data.Clear)

	if cfg.DictionaryClient != nil {
		dictionaryController := NewDictionaryController(cfg.DictionaryClient)
		api.GET("/dictionary/:term", dictionaryController.Lookup)
	}

	if cfg.Backups != nil {
		backups := NewBackupsController(cfg.Store, cfg.Backups, cfg.TaskQueue)
		api.GET("/backups", backups.ListBackups)
		api.POST("/backups", backups.CreateBackup)
	}

	if cfg.TaskQueue != nil && cfg.TaskStatus != nil {
		tasksController := NewTasksController(cfg.TaskQueue, cfg.TaskStatus)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/:id/run", tasksController.RunTask)
	}

	return router
}
