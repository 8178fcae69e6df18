// Package bench persists aggregate statistics about solver benchmark
// runs — positions solved, nodes searched, time spent — across
// invocations of cmd/c4solve, the way the teacher's internal/storage
// persists GameStats across play sessions: a single JSON-encoded
// value in a badger key-value store.
package bench

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
)

const keyRecord = "bench_record"

// Record is the persisted aggregate. Counters accumulate across every
// run that shares the same store; LastCategory/LastRun describe only
// the most recent one.
type Record struct {
	PositionsSolved int       `json:"positions_solved"`
	TotalNodes      int64     `json:"total_nodes"`
	TotalMicros     int64     `json:"total_micros"`
	LastCategory    string    `json:"last_category"`
	LastRun         time.Time `json:"last_run"`
}

// NewRecord returns an empty Record, mirroring the teacher's
// NewGameStats constructor.
func NewRecord() *Record {
	return &Record{}
}

// NodesPerSecond returns the aggregate solving throughput, or 0 if no
// time has been recorded yet.
func (r *Record) NodesPerSecond() float64 {
	if r.TotalMicros == 0 {
		return 0
	}
	return float64(r.TotalNodes) / (float64(r.TotalMicros) / 1e6)
}

// Summary renders a one-line, human-readable summary of the record
// using go-humanize, the same library the teacher pulls in
// transitively through badger and that a CLI summary line is the
// idiomatic home for.
func (r *Record) Summary() string {
	return humanize.Comma(int64(r.PositionsSolved)) + " positions, " +
		humanize.Comma(r.TotalNodes) + " nodes, " +
		humanize.Comma(r.TotalMicros/1000) + "ms, " +
		humanize.Commaf(r.NodesPerSecond()) + " nodes/sec"
}

// Store wraps a badger.DB holding a single persisted Record.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the persisted Record, returning an empty one if none has
// been saved yet.
func (s *Store) Load() (*Record, error) {
	rec := NewRecord()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyRecord))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	return rec, err
}

// save writes rec to the database, overwriting any previous value.
func (s *Store) save(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyRecord), data)
	})
}

// RecordRun loads the existing record, accumulates the given run's
// totals into it, stamps LastCategory/LastRun, and saves the result —
// so two successive runs against the same store add up rather than
// overwrite each other, mirroring Storage.RecordGame's
// load-mutate-save pattern.
func (s *Store) RecordRun(category string, positionsSolved int, nodes int64, micros int64) (*Record, error) {
	rec, err := s.Load()
	if err != nil {
		return nil, err
	}

	rec.PositionsSolved += positionsSolved
	rec.TotalNodes += nodes
	rec.TotalMicros += micros
	rec.LastCategory = category
	rec.LastRun = time.Now()

	if err := s.save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
