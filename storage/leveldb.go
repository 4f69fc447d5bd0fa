// Package storage provides the LevelDB-backed persistence layer used by
// the block processor (header records) and the DKG engine (session
// records), adapted from the teacher's
// muxdb/engine/leveldb.go (itself a thin wrapper over
// github.com/syndtr/goleveldb). The teacher's version depends on an
// internal `thor/kv` interface package that was not part of this
// retrieval pack; this package defines an equivalent, self-contained
// Store interface instead of importing it.
package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	writeOpt = opt.WriteOptions{}
	readOpt  = opt.ReadOptions{}
	scanOpt  = opt.ReadOptions{DontFillCache: true}
)

// Snapshot is a point-in-time read-only view that never observes a
// partial write from the single writer.
type Snapshot interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Release()
}

// Store is the key/value persistence contract the blockchain and dkg
// packages build on.
type Store interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key, val []byte) error
	Delete(key []byte) error
	Snapshot() Snapshot
	Iterate(start, limit []byte) Iterator
	Close() error
}

// Iterator walks a lexicographic key range.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

type levelStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens (or creates) a LevelDB database rooted at dir. An
// empty dir opens an in-memory database, used by tests.
func OpenLevelDB(dir string) (Store, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if dir == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(dir, &opt.Options{})
	}
	if err != nil {
		return nil, err
	}
	return &levelStore{db: db}, nil
}

func (s *levelStore) Get(key []byte) ([]byte, error) { return s.db.Get(key, &readOpt) }
func (s *levelStore) Has(key []byte) (bool, error)   { return s.db.Has(key, &readOpt) }
func (s *levelStore) Put(key, val []byte) error      { return s.db.Put(key, val, &writeOpt) }
func (s *levelStore) Delete(key []byte) error        { return s.db.Delete(key, &writeOpt) }
func (s *levelStore) Close() error                   { return s.db.Close() }

func (s *levelStore) Snapshot() Snapshot {
	snap, err := s.db.GetSnapshot()
	return &levelSnapshot{snap: snap, err: err}
}

func (s *levelStore) Iterate(start, limit []byte) Iterator {
	return s.db.NewIterator(&util.Range{Start: start, Limit: limit}, &scanOpt)
}

type levelSnapshot struct {
	snap *leveldb.Snapshot
	err  error
}

func (s *levelSnapshot) Get(key []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snap.Get(key, &readOpt)
}

func (s *levelSnapshot) Has(key []byte) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.snap.Has(key, &readOpt)
}

func (s *levelSnapshot) Release() {
	if s.snap != nil {
		s.snap.Release()
	}
}

// IsNotFound reports whether err is LevelDB's not-found sentinel.
func IsNotFound(err error) bool {
	return err == leveldb.ErrNotFound
}
