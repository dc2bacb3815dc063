// Package autosync decides when the document set is backed up and when the
// one-shot restore after sign-in runs.
package autosync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/auth"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
	syncsvc "github.com/iudanet/oneclickcopy/internal/client/sync"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
)

// DefaultCooldown is the minimum interval between two completed backups.
const DefaultCooldown = 60 * time.Second

// ErrClosed is returned by BackupNow after Cleanup.
var ErrClosed = errors.New("auto-sync coordinator is closed")

// Config configures the coordinator
type Config struct {
	Cooldown time.Duration // 0 = DefaultCooldown
}

// Status is a point-in-time view of the coordinator
type Status struct {
	LastBackupAt    time.Time // нулевое значение = бэкапа еще не было
	PendingDueAt    time.Time // когда сработает отложенный бэкап, если он есть
	HasRestoredOnce bool
	BackupPending   bool
	BackupRunning   bool
	RestoreRunning  bool
}

type pendingTask struct {
	dueAt time.Time
	timer clock.Timer
	docs  []models.Document
}

// Coordinator throttles backups to one per cooldown window and runs the
// one-shot restore. A single instance is shared for the process lifetime.
type Coordinator struct {
	syncer   syncsvc.Service
	session  auth.Session
	state    storage.AutoSyncStorage
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
	cooldown time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	// wg учитывает только выполняющуюся работу, ожидающие таймеры в нем не считаются
	wg sync.WaitGroup
	// runMu сериализует вызовы Backup
	runMu sync.Mutex

	mu              sync.Mutex
	lastBackupAt    time.Time
	hasRestoredOnce bool
	pending         *pendingTask
	queued          []models.Document
	hasQueued       bool
	running         bool
	restoring       bool
	closed          bool
}

// NewCoordinator creates a coordinator, reading the persisted state once.
// Background work is bound to ctx and to Cleanup.
func NewCoordinator(
	ctx context.Context,
	cfg Config,
	syncer syncsvc.Service,
	session auth.Session,
	state storage.AutoSyncStorage,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) (*Coordinator, error) {
	persisted, err := state.GetAutoSyncState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load auto-sync state: %w", err)
	}

	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	bgCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	return &Coordinator{
		syncer:          syncer,
		session:         session,
		state:           state,
		notifier:        notifier,
		clock:           clk,
		logger:          logger,
		cooldown:        cooldown,
		ctx:             bgCtx,
		cancel:          cancel,
		lastBackupAt:    persisted.LastBackupAt,
		hasRestoredOnce: persisted.HasRestoredOnce,
	}, nil
}

// RequestBackup asks for docs to be backed up. It cancels any pending
// request; the backup runs at once when the cooldown has passed and is
// scheduled for the end of the window otherwise. Not signed in or an empty
// docs = no-op; a pending request is kept.
func (c *Coordinator) RequestBackup(docs []models.Document) {
	if len(docs) == 0 {
		c.logger.Debug("Backup request ignored, no documents")
		return
	}
	if !c.session.IsSignedIn(c.ctx) {
		c.logger.Debug("Backup request ignored, not signed in")
		return
	}

	snapshot := models.CloneDocuments(docs)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.cancelPendingLocked()

	if c.running {
		// Бэкап уже идет: после завершения запрос будет заново проверен по cooldown
		c.queued = snapshot
		c.hasQueued = true
		c.logger.Debug("Backup request queued behind running backup", "documents", len(snapshot))
		return
	}

	c.scheduleLocked(snapshot)
}

// BackupNow backs docs up right away, bypassing the cooldown, and returns
// the result instead of notifying. A pending scheduled backup is dropped.
func (c *Coordinator) BackupNow(ctx context.Context, docs []models.Document) error {
	if !c.session.IsSignedIn(ctx) {
		return syncsvc.ErrNotSignedIn
	}

	snapshot := models.CloneDocuments(docs)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.cancelPendingLocked()
	c.wg.Add(1)
	c.mu.Unlock()
	defer c.wg.Done()

	c.runMu.Lock()
	err := c.syncer.Backup(ctx, snapshot)
	c.runMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to back up: %w", err)
	}

	completedAt := c.clock.Now()
	c.mu.Lock()
	c.lastBackupAt = completedAt
	c.mu.Unlock()

	if saveErr := c.state.SaveLastBackupAt(ctx, completedAt); saveErr != nil {
		c.logger.Warn("Failed to persist last backup time", "error", saveErr)
	}
	c.logger.Info("Manual backup completed", "documents", len(snapshot))
	return nil
}

// TryAutoRestore starts the one-shot restore after sign-in. It is a no-op
// when not signed in, when the restore already happened on this device,
// or while an attempt is in flight.
func (c *Coordinator) TryAutoRestore() {
	if !c.session.IsSignedIn(c.ctx) {
		return
	}

	c.mu.Lock()
	if c.closed || c.hasRestoredOnce || c.restoring {
		c.mu.Unlock()
		return
	}
	c.restoring = true
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.runRestore()
	}()
}

// Cleanup cancels the pending backup, stops background work and waits for
// it to finish. Safe to call more than once; later requests are ignored.
func (c *Coordinator) Cleanup() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		c.cancelPendingLocked()
		c.queued = nil
		c.hasQueued = false
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// Wait blocks until running backups and restores have finished.
// Pending scheduled backups are not waited for.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// State returns the current coordinator state
func (c *Coordinator) State() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		LastBackupAt:    c.lastBackupAt,
		HasRestoredOnce: c.hasRestoredOnce,
		BackupRunning:   c.running,
		RestoreRunning:  c.restoring,
	}
	if c.pending != nil {
		st.BackupPending = true
		st.PendingDueAt = c.pending.dueAt
	}
	return st
}

// scheduleLocked запускает бэкап сразу или откладывает его до конца окна cooldown
func (c *Coordinator) scheduleLocked(snapshot []models.Document) {
	now := c.clock.Now()
	elapsed := now.Sub(c.lastBackupAt)

	if c.lastBackupAt.IsZero() || elapsed >= c.cooldown {
		c.running = true
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.runBackup(snapshot)
		}()
		return
	}

	delay := c.cooldown - elapsed
	task := &pendingTask{
		dueAt: c.lastBackupAt.Add(c.cooldown),
		docs:  snapshot,
	}
	c.pending = task
	task.timer = c.clock.AfterFunc(delay, func() {
		c.fire(task)
	})

	c.logger.Debug("Backup scheduled", "in", delay, "documents", len(snapshot))
}

func (c *Coordinator) cancelPendingLocked() {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending = nil
}

// fire вызывается таймером. Замененная или отмененная задача ничего не делает.
func (c *Coordinator) fire(task *pendingTask) {
	c.mu.Lock()
	if c.closed || c.pending != task {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.running = true
	c.wg.Add(1)
	c.mu.Unlock()

	defer c.wg.Done()
	c.runBackup(task.docs)
}

func (c *Coordinator) runBackup(docs []models.Document) {
	c.runMu.Lock()
	err := c.syncer.Backup(c.ctx, docs)
	c.runMu.Unlock()

	completedAt := c.clock.Now()

	c.mu.Lock()
	c.running = false
	if err == nil {
		c.lastBackupAt = completedAt
	}
	if c.hasQueued && !c.closed {
		queued := c.queued
		c.queued = nil
		c.hasQueued = false
		c.scheduleLocked(queued)
	}
	c.mu.Unlock()

	switch {
	case err == nil:
		if saveErr := c.state.SaveLastBackupAt(c.ctx, completedAt); saveErr != nil {
			c.logger.Warn("Failed to persist last backup time", "error", saveErr)
		}
		c.logger.Info("Backup completed", "documents", len(docs))
	case errors.Is(err, syncsvc.ErrNotSignedIn):
		c.logger.Debug("Backup skipped, signed out meanwhile")
	case c.ctx.Err() != nil:
		c.logger.Debug("Backup interrupted by shutdown", "error", err)
	default:
		c.logger.Warn("Backup failed", "kind", syncsvc.KindOf(err), "error", err)
		c.notifier.BackupFailed(c.ctx, err)
	}
}

func (c *Coordinator) runRestore() {
	docs, err := c.syncer.Restore(c.ctx)

	if err != nil && c.ctx.Err() != nil {
		// Прерванная при завершении попытка не расходует одноразовое восстановление
		c.mu.Lock()
		c.restoring = false
		c.mu.Unlock()
		c.logger.Debug("Restore interrupted by shutdown", "error", err)
		return
	}

	c.mu.Lock()
	c.restoring = false
	c.hasRestoredOnce = true
	c.mu.Unlock()

	if markErr := c.state.MarkRestoredOnce(c.ctx); markErr != nil {
		c.logger.Warn("Failed to persist restore flag", "error", markErr)
	}

	switch kind := syncsvc.KindOf(err); {
	case err == nil && len(docs) == 0:
		c.logger.Info("Restore found an empty backup")
	case err == nil:
		c.logger.Info("Restore completed", "documents", len(docs))
		c.notifier.Restored(c.ctx, docs)
	case kind == syncsvc.KindNoBackupFound:
		c.logger.Info("No remote backup to restore")
	case kind == syncsvc.KindNotSignedIn:
		c.logger.Debug("Restore skipped, signed out meanwhile")
	default:
		c.logger.Warn("Restore failed", "kind", kind, "error", err)
		c.notifier.RestoreFailed(c.ctx, err)
	}
}
