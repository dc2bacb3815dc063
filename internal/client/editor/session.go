// Package editor keeps the working copy of one open document and persists
// it after a quiet period following the last change.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/clock"
	"github.com/iudanet/oneclickcopy/internal/models"
)

// DefaultDebounce is the quiet period after the last change before saving.
const DefaultDebounce = 500 * time.Millisecond

var (
	// ErrSessionClosed indicates a change after Close
	ErrSessionClosed = errors.New("editor session is closed")

	// ErrNotInListMode indicates Move outside list mode
	ErrNotInListMode = errors.New("not in list mode")

	// ErrInvalidPosition indicates a Move index out of range
	ErrInvalidPosition = errors.New("invalid item position")
)

// Config configures an editor session
type Config struct {
	OnSaveError func(err error) // вызывается при неудачном сохранении, может быть nil
	Debounce    time.Duration   // 0 = DefaultDebounce
}

// Session is the working copy of a single document.
// Every change restarts the debounce timer; only the state after a pause is written.
type Session struct {
	store  storage.DocumentStorage
	clock  clock.Clock
	logger *slog.Logger
	ctx    context.Context
	cfg    Config

	// saveMu сериализует записи в хранилище
	saveMu sync.Mutex

	mu       sync.Mutex
	doc      models.Document
	timer    clock.Timer
	items    []string
	gen      uint64
	saved    uint64
	listMode bool
	moved    bool
	closed   bool
}

// Open starts a session for the document with the given id, or for a new
// document when id is 0. The new document is inserted on its first save.
func Open(
	ctx context.Context,
	store storage.DocumentStorage,
	id int64,
	clk clock.Clock,
	logger *slog.Logger,
	cfg Config,
) (*Session, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	s := &Session{
		store:  store,
		clock:  clk,
		logger: logger,
		ctx:    context.WithoutCancel(ctx),
		cfg:    cfg,
	}

	if id != 0 {
		doc, err := store.GetDocument(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load document %d: %w", id, err)
		}
		s.doc = doc.Clone()
	}

	return s, nil
}

// Document returns a copy of the working state
func (s *Session) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// SetTitle replaces the title
func (s *Session) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.doc.Title == title {
		return nil
	}
	s.doc.Title = title
	s.changedLocked()
	return nil
}

// SetContent replaces the raw content. Leaves list mode ordering untouched.
func (s *Session) SetContent(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.doc.Content == content {
		return nil
	}
	s.doc.Content = content
	if s.listMode {
		s.items = listItems(content)
	}
	s.changedLocked()
	return nil
}

// ToggleCopied flips the copied mark of the line text and returns the new state
func (s *Session) ToggleCopied(line string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrSessionClosed
	}
	copied := !s.doc.IsCopied(line)
	s.setCopiedLocked(line, copied)
	return copied, nil
}

// SetCopied marks or unmarks the line text as copied
func (s *Session) SetCopied(line string, copied bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.doc.IsCopied(line) == copied {
		return nil
	}
	s.setCopiedLocked(line, copied)
	return nil
}

func (s *Session) setCopiedLocked(line string, copied bool) {
	if copied {
		s.doc.CopiedItemKeys = append(s.doc.CopiedItemKeys, line)
	} else {
		s.doc.CopiedItemKeys = slices.DeleteFunc(slices.Clone(s.doc.CopiedItemKeys), func(k string) bool {
			return k == line
		})
	}
	s.changedLocked()
}

// EnterListMode switches to the item view: non-blank lines, reorderable
func (s *Session) EnterListMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listMode = true
	s.moved = false
	s.items = listItems(s.doc.Content)
}

// Items returns the list mode items, nil outside list mode
func (s *Session) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Move reorders an item in list mode. The content is rewritten from the
// items, so blank lines are dropped once anything was moved.
func (s *Session) Move(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if !s.listMode {
		return ErrNotInListMode
	}
	if from < 0 || from >= len(s.items) || to < 0 || to >= len(s.items) {
		return fmt.Errorf("%w: move %d -> %d of %d", ErrInvalidPosition, from, to, len(s.items))
	}
	if from == to {
		return nil
	}

	s.items = moveItem(s.items, from, to)
	s.moved = true
	s.doc.Content = strings.Join(s.items, "\n")
	s.changedLocked()
	return nil
}

// ExitListMode returns to raw text editing. Without a move the content
// is exactly what it was, blank lines included.
func (s *Session) ExitListMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listMode = false
	s.moved = false
	s.items = nil
}

// InListMode reports whether the session shows items
func (s *Session) InListMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listMode
}

// Flush writes pending changes now
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()

	return s.save(ctx)
}

// Close flushes pending changes and ends the session. Safe to call twice.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()

	return s.save(ctx)
}

// changedLocked отмечает изменение и перезапускает debounce таймер
func (s *Session) changedLocked() {
	s.gen++
	gen := s.gen
	s.stopTimerLocked()
	s.timer = s.clock.AfterFunc(s.cfg.Debounce, func() {
		s.fire(gen)
	})
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	stale := s.closed || gen != s.gen
	if !stale {
		s.timer = nil
	}
	s.mu.Unlock()

	if stale {
		return
	}

	if err := s.save(s.ctx); err != nil {
		s.logger.Warn("Auto-save failed", "error", err)
		if s.cfg.OnSaveError != nil {
			s.cfg.OnSaveError(err)
		}
	}
}

// save пишет текущее состояние, если есть несохраненные изменения
func (s *Session) save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	now := s.clock.Now()

	s.mu.Lock()
	if s.gen == s.saved {
		s.mu.Unlock()
		return nil
	}
	gen := s.gen
	doc := s.doc.Clone()
	s.mu.Unlock()

	doc.UpdatedAt = now
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}

	if doc.IsNew() {
		id, err := s.store.InsertDocument(ctx, &doc)
		if err != nil {
			return fmt.Errorf("failed to insert document: %w", err)
		}
		doc.ID = id
	} else if err := s.store.UpdateDocument(ctx, &doc); err != nil {
		return fmt.Errorf("failed to update document %d: %w", doc.ID, err)
	}

	s.mu.Lock()
	s.doc.ID = doc.ID
	s.doc.CreatedAt = doc.CreatedAt
	s.doc.UpdatedAt = doc.UpdatedAt
	if gen > s.saved {
		s.saved = gen
	}
	s.mu.Unlock()

	s.logger.Debug("Document saved", "id", doc.ID)
	return nil
}
