package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/models"
)

func documentKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

// ListDocuments returns all documents, most recently updated first
func (s *Storage) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		docs, err = listDocuments(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func listDocuments(tx *bbolt.Tx) ([]models.Document, error) {
	bucket := tx.Bucket(bucketDocuments)
	if bucket == nil {
		return nil, fmt.Errorf("documents bucket not found")
	}

	docs := make([]models.Document, 0, bucket.Stats().KeyN)
	err := bucket.ForEach(func(k, v []byte) error {
		var doc models.Document
		if err := json.Unmarshal(v, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем по времени изменения, новые сверху
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].ID > docs[j].ID
		}
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})

	return docs, nil
}

// GetDocument retrieves a document by ID
func (s *Storage) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		data := bucket.Get(documentKey(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// InsertDocument stores a new document under a freshly allocated ID
func (s *Storage) InsertDocument(ctx context.Context, doc *models.Document) (int64, error) {
	var id int64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate document id: %w", err)
		}

		stored := doc.Clone()
		stored.ID = int64(seq)

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		if err := bucket.Put(documentKey(stored.ID), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		id = stored.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	doc.ID = id
	s.notifyWatchers()

	return id, nil
}

// UpdateDocument replaces an existing document
func (s *Storage) UpdateDocument(ctx context.Context, doc *models.Document) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		key := documentKey(doc.ID)
		if bucket.Get(key) == nil {
			return storage.ErrDocumentNotFound
		}

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyWatchers()
	return nil
}

// DeleteDocument removes a document
func (s *Storage) DeleteDocument(ctx context.Context, id int64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		key := documentKey(id)
		if bucket.Get(key) == nil {
			return storage.ErrDocumentNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyWatchers()
	return nil
}

// WatchDocuments returns a channel receiving the full ordered list after
// every change. The first value is the current list.
func (s *Storage) WatchDocuments(ctx context.Context) (<-chan []models.Document, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, storage.ErrStorageClosed
	}

	// Снимок читается под s.mu после регистрации: запись, закоммиченная раньше,
	// в него попадет, а более поздняя придет через notifyWatchers
	ch := make(chan []models.Document, 1)
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch

	var docs []models.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		docs, err = listDocuments(tx)
		return err
	})
	if err != nil {
		delete(s.watchers, id)
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	ch <- docs
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		// канал мог быть уже закрыт в Close
		if w, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(w)
		}
	}()

	return ch, nil
}

// notifyWatchers публикует свежий снимок списка всем подписчикам.
// Медленный читатель получает только последний снимок.
func (s *Storage) notifyWatchers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.watchers) == 0 {
		return
	}

	var docs []models.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		docs, err = listDocuments(tx)
		return err
	})
	if err != nil {
		return
	}

	for _, ch := range s.watchers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- models.CloneDocuments(docs):
		default:
		}
	}
}
