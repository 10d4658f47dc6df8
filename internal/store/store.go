// Package store is the persisted match store (a domain-stack enrichment
// beyond spec.md's core): an embedded badger key-value store holding one
// record per completed match, so a long-running engine process keeps a
// queryable history across restarts. Grounded on hailam/chessplay's
// internal/storage package, adapted from user preferences/stats records
// to match records.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tablutai/tablut/pkg/board"
)

const keyPrefix = "match/"

// Record is one completed match, keyed by MatchID.
type Record struct {
	MatchID    string       `json:"match_id"`
	Side       board.Side   `json:"side"`
	Moves      []board.Move `json:"moves"`
	Result     board.Result `json:"result"`
	FinishedAt time.Time    `json:"finished_at"`
}

// Store wraps a badger database directory holding match records.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open match store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists one completed match's record.
func (s *Store) Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode match record: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+r.MatchID), data)
	})
}

// Load retrieves a match record by id. Returns badger.ErrKeyNotFound
// (unwrapped, so callers can use errors.Is) if no such match exists.
func (s *Store) Load(matchID string) (Record, error) {
	var r Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + matchID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

// List returns every stored match record, in key order.
func (s *Store) List() ([]Record, error) {
	var records []Record

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			records = append(records, r)
		}
		return nil
	})
	return records, err
}
