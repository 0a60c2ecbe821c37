package database

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var DB *bbolt.DB

const DocumentBucket = "document"

// Open opens the bolt file at path and makes sure the document bucket
// exists.
func Open(path string) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(DocumentBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create document bucket: %w", err)
	}

	return db, nil
}

func InitDB(path string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
