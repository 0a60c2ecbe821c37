package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"topology/internal/database"
	"topology/internal/entity"
)

const documentKey = "current"

// DocumentRepository owns the persisted document blob. The whole
// document moves on every load and save; there are no partial writes.
type DocumentRepository struct {
	db *bbolt.DB
}

func NewDocumentRepository(db *bbolt.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Load returns the persisted document. A missing or unreadable blob
// yields the seed document instead; Load never fails outward.
func (r *DocumentRepository) Load() entity.Document {
	var doc entity.Document
	loaded := false

	r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(database.DocumentBucket))
		if bucket == nil {
			return nil
		}
		payload := bucket.Get([]byte(documentKey))
		if payload == nil {
			return nil
		}
		if err := json.Unmarshal(payload, &doc); err != nil {
			// Unparseable state falls back to the seed.
			return nil
		}
		loaded = true
		return nil
	})

	if !loaded {
		return entity.DefaultDocument(time.Now())
	}
	return doc
}

// Save overwrites the persisted document.
func (r *DocumentRepository) Save(doc entity.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(database.DocumentBucket))
		if bucket == nil {
			return fmt.Errorf("document bucket is missing")
		}
		return bucket.Put([]byte(documentKey), payload)
	})
}
