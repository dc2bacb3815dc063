package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/oneclickcopy/internal/models"
)

const (
	keyLastBackupAt    = "last_backup_at"
	keyHasRestoredOnce = "has_restored_once"
)

// GetAutoSyncState returns the persisted auto-sync state.
// Zero values are returned if nothing was stored yet.
func (s *Storage) GetAutoSyncState(ctx context.Context) (*models.AutoSyncState, error) {
	state := &models.AutoSyncState{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Время хранится как unix millis, 0 = бэкапа ещё не было
		if raw := bucket.Get([]byte(keyLastBackupAt)); len(raw) == 8 {
			if ms := int64(binary.BigEndian.Uint64(raw)); ms != 0 {
				state.LastBackupAt = time.UnixMilli(ms).UTC()
			}
		}

		if raw := bucket.Get([]byte(keyHasRestoredOnce)); len(raw) == 1 && raw[0] == 1 {
			state.HasRestoredOnce = true
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get auto-sync state: %w", err)
	}

	return state, nil
}

// SaveLastBackupAt saves the time of the last successful backup
func (s *Storage) SaveLastBackupAt(ctx context.Context, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		var ms int64
		if !at.IsZero() {
			ms = at.UnixMilli()
		}
		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(ms))

		if err := bucket.Put([]byte(keyLastBackupAt), raw); err != nil {
			return fmt.Errorf("failed to save last backup time: %w", err)
		}

		return nil
	})
}

// MarkRestoredOnce sets the one-shot restore flag
func (s *Storage) MarkRestoredOnce(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyHasRestoredOnce), []byte{1}); err != nil {
			return fmt.Errorf("failed to mark restored once: %w", err)
		}

		return nil
	})
}
