package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key holding the state document
var (
	bucketWatchlist = []byte("watchlist")
	keyState        = []byte("state")
	keySavedAt      = []byte("saved_at")
)

const defaultBoltTimeout = 1 * time.Second

// BoltFile keeps the watchlist document inside a BoltDB file.
// The database is opened per call so the file lock is never held between
// load and save.
type BoltFile struct {
	path    string
	timeout time.Duration
}

// NewBoltFile creates a backend for the database at path
func NewBoltFile(path string) *BoltFile {
	return &BoltFile{path: path, timeout: defaultBoltTimeout}
}

// Location returns the database path
func (b *BoltFile) Location() string { return b.path }

// Load reads the state document from the database
func (b *BoltFile) Load() (*domain.State, error) {
	// bolt.Open creates missing files; check first so a read stays a read
	if _, err := os.Stat(b.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoSavedState, b.path)
		}
		return nil, fmt.Errorf("failed to stat bolt db: %w", err)
	}

	db, err := bolt.Open(b.path, 0600, &bolt.Options{Timeout: b.timeout, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	defer db.Close()

	var data []byte
	err = db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketWatchlist)
		if bkt == nil {
			return domain.ErrNoSavedState
		}
		v := bkt.Get(keyState)
		if v == nil {
			return domain.ErrNoSavedState
		}
		// Values are only valid inside the transaction
		data = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	st, err := decodeState(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse state in %s: %w", b.path, err)
	}
	return st, nil
}

// Save overwrites the state document in a single transaction
func (b *BoltFile) Save(st *domain.State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := bolt.Open(b.path, 0600, &bolt.Options{Timeout: b.timeout})
	if err != nil {
		return fmt.Errorf("failed to open bolt db: %w", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists(bucketWatchlist)
		if err != nil {
			return err
		}
		if err := bkt.Put(keyState, data); err != nil {
			return err
		}
		return bkt.Put(keySavedAt, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("failed to write bolt db: %w", err)
	}
	return nil
}
