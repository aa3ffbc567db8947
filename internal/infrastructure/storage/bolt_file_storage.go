// Package storage keeps uploaded files (delivery proofs, driver documents)
// in an embedded BoltDB file.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eagles_transportes/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const (
	bucketName = "evidence"
	refPrefix  = "bolt://" + bucketName + "/"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidRef   = errors.New("invalid file reference")
	ErrInvalidPath  = errors.New("invalid file path")
)

// BoltFileStorage stores files keyed by their path. References have the form
// bolt://evidence/<path>.
//
// Save is idempotent: writing the same bytes to the same path again is a no-op.
type BoltFileStorage struct {
	db *bolt.DB
}

var _ interfaces.IFileStorage = (*BoltFileStorage)(nil)

// NewBoltFileStorage opens (or creates) the database at path and ensures the bucket exists.
func NewBoltFileStorage(path string) (*BoltFileStorage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("[storage][bolt] opened path=%s", path)
	return &BoltFileStorage{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltFileStorage) Close() error {
	return s.db.Close()
}

func (s *BoltFileStorage) Save(ctx context.Context, data []byte, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := strings.Trim(strings.TrimSpace(path), "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if existing := b.Get([]byte(key)); existing != nil && bytes.Equal(existing, data) {
			return nil
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		log.Printf("[storage][bolt] save failed key=%s err=%v", key, err)
		return "", err
	}
	return refPrefix + key, nil
}

func (s *BoltFileStorage) Load(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, ok := strings.CutPrefix(ref, refPrefix)
	if !ok || key == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return ErrFileNotFound
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
