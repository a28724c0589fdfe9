package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
)

// Store is the persisted key-value medium behind the content repository.
// One JSON document per collection key.
//
// Both operations follow the fallback contract: Load never fails outward
// (missing key, corrupt value, or storage trouble all report "not loaded"
// so the caller keeps its fallback), and Save swallows write failures after
// logging. Nothing here is allowed to crash the application.

type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store at dir. Pass dir == "" for an
// in-memory store, used by tests.
func Open(dir string) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the JSON document stored under key into out. It returns false
// when the key is absent or unreadable; out is only meaningful on true.
func (s *Store) Load(key string, out any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		log.Printf("[storage] load %q failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[storage] load %q: corrupt value: %v", key, err)
		return false
	}
	return true
}

// Save writes value under key as JSON. Failures (quota, closed store,
// unmarshalable value) are logged and otherwise ignored.
func (s *Store) Save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[storage] save %q: marshal failed: %v", key, err)
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		log.Printf("[storage] save %q failed: %v", key, err)
	}
}

// SetRaw writes raw bytes under key, bypassing JSON encoding. Used to plant
// fixtures (including deliberately corrupt ones) in tests.
func (s *Store) SetRaw(key string, raw []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}
