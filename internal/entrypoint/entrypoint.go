package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbank/internal/backup"
	"github.com/mrlokans/wordbank/internal/config"
	"github.com/mrlokans/wordbank/internal/demo"
	"github.com/mrlokans/wordbank/internal/dictionary"
	http_controllers "github.com/mrlokans/wordbank/internal/http"
	"github.com/mrlokans/wordbank/internal/scheduler"
	"github.com/mrlokans/wordbank/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is syscall.SIGINT, kill (no param) sends syscall.SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Wordbank v%s", version)

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	st, err := OpenStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	store := st.Store

	routerCfg := http_controllers.RouterConfig{
		Store:          store,
		Version:        version,
		DemoMiddleware: demoMiddleware,
	}
	if st.DB != nil {
		routerCfg.Database = st.DB
	}

	var dictClient dictionary.Client
	if cfg.Dictionary.Enabled {
		dictClient = dictionary.NewFreeDictionaryClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout)
		routerCfg.DictionaryClient = dictClient
		log.Printf("Dictionary lookups enabled (%s)", cfg.Dictionary.BaseURL)
	}

	var backupWriter *backup.Writer
	if cfg.Backup.Enabled {
		backupWriter = backup.NewWriter(cfg.Backup.Dir, cfg.Backup.Retention)
		routerCfg.Backups = backupWriter
		log.Printf("Backups enabled in %s, keeping %d", cfg.Backup.Dir, cfg.Backup.Retention)
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Tasks.DBPath, cfg.Tasks.TaskConfig())
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		if backupWriter != nil {
			taskClient.Register(tasks.NewBackupSnapshotQueue(store, backupWriter))
		}
		if dictClient != nil {
			taskClient.Register(
				tasks.NewEnrichWordQueue(store, dictClient),
				tasks.NewEnrichMissingNotesQueue(store, dictClient),
			)
		}

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		routerCfg.TaskQueue = taskClient
		routerCfg.TaskStatus = taskClient
	}

	var backupScheduler *scheduler.BackupScheduler
	var schedulerCancel context.CancelFunc
	if backupWriter != nil {
		trigger := func(ctx context.Context) error {
			if taskClient != nil {
				_, err := taskClient.Enqueue(tasks.BackupSnapshotTask{Reason: "schedule"})
				return err
			}
			_, err := backupWriter.Write(store.Snapshot())
			return err
		}

		backupScheduler = scheduler.NewBackupScheduler(cfg.Backup.Schedule, trigger)
		var schedulerCtx context.Context
		schedulerCtx, schedulerCancel = context.WithCancel(context.Background())
		if err := backupScheduler.Start(schedulerCtx); err != nil {
			log.Fatalf("Failed to start backup scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if backupScheduler != nil {
			backupScheduler.Stop()
			schedulerCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
