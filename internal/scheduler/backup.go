// Package scheduler runs periodic vocabulary backups on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Trigger starts one backup. It either enqueues a task or writes directly.
type Trigger func(ctx context.Context) error

// BackupScheduler fires a backup trigger on a cron schedule.
type BackupScheduler struct {
	schedule string
	trigger  Trigger
	timeout  time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isBacking  bool
	cancelFunc context.CancelFunc
}

// NewBackupScheduler creates a scheduler. It does nothing until Start.
func NewBackupScheduler(schedule string, trigger Trigger) *BackupScheduler {
	return &BackupScheduler{
		schedule: schedule,
		trigger:  trigger,
		timeout:  5 * time.Minute,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start registers the schedule and starts the cron runner. The scheduler
// stops on its own when ctx is cancelled.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runBackup)
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	next, _ := NextRun(s.schedule, time.Now())
	log.Printf("[BACKUP] Scheduler started with schedule '%s' (%s). Next run: %v",
		s.schedule, Describe(s.schedule), next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running backup and stops the scheduler.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("[BACKUP] Scheduler stopped")
}

// RunNow triggers a backup immediately in the background.
func (s *BackupScheduler) RunNow() {
	go s.runBackup()
}

// IsRunning returns whether the scheduler is active.
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// IsBackingUp returns whether a trigger call is in progress.
func (s *BackupScheduler) IsBackingUp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isBacking
}

// NextRunTime returns when the next backup will occur, or nil when stopped.
func (s *BackupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *BackupScheduler) runBackup() {
	s.mu.Lock()
	if s.isBacking {
		s.mu.Unlock()
		log.Printf("[BACKUP] Skipped, previous backup still running")
		return
	}
	s.isBacking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isBacking = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.trigger(ctx); err != nil {
		log.Printf("[BACKUP] Scheduled backup failed: %v", err)
	}
}
