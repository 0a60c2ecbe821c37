package repository

import (
	"path/filepath"
	"testing"
	"time"

	"go.etcd.io/bbolt"

	"topology/internal/database"
	"topology/internal/entity"
)

func newTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "topology.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEmptyYieldsSeed(t *testing.T) {
	docs := NewDocumentRepository(newTestDB(t))

	doc := docs.Load()
	if len(doc.Users) != 3 || len(doc.Students) != 1 || len(doc.Payments) != 1 {
		t.Fatalf("expected seed document, got %d users, %d students, %d payments",
			len(doc.Users), len(doc.Students), len(doc.Payments))
	}
	if doc.Payments[0].Amount != 1500 {
		t.Errorf("seed payment amount = %v, want 1500", doc.Payments[0].Amount)
	}
}

func TestLoadCorruptBlobYieldsSeed(t *testing.T) {
	db := newTestDB(t)
	docs := NewDocumentRepository(db)

	err := db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(database.DocumentBucket)).Put([]byte(documentKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}

	doc := docs.Load()
	if len(doc.Users) != 3 || len(doc.Students) != 1 {
		t.Fatalf("corrupt blob should fall back to the seed, got %d users, %d students",
			len(doc.Users), len(doc.Students))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	docs := NewDocumentRepository(newTestDB(t))

	saved := entity.Document{
		Students: []entity.Student{{ID: "s_1", FullName: "A", Course: "C", Phone: "1"}},
		Payments: []entity.Payment{{ID: "p_1", StudentID: "s_1", StudentName: "A", Amount: 250, Method: "bank", Date: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}},
	}
	if err := docs.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := docs.Load()
	if len(loaded.Students) != 1 || loaded.Students[0].FullName != "A" {
		t.Fatalf("loaded students = %+v", loaded.Students)
	}
	if len(loaded.Payments) != 1 || loaded.Payments[0].Amount != 250 {
		t.Fatalf("loaded payments = %+v", loaded.Payments)
	}
	if len(loaded.Users) != 0 {
		t.Fatalf("saved document had no users, loaded %d", len(loaded.Users))
	}
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	docs := NewDocumentRepository(newTestDB(t))

	first := entity.Document{Students: []entity.Student{{ID: "s_1", FullName: "A", Course: "C", Phone: "1"}}}
	if err := docs.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := entity.Document{Students: []entity.Student{{ID: "s_2", FullName: "B", Course: "D", Phone: "2"}}}
	if err := docs.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := docs.Load()
	if len(loaded.Students) != 1 || loaded.Students[0].ID != "s_2" {
		t.Fatalf("second save should replace the first, got %+v", loaded.Students)
	}
}
