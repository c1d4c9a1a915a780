package inmemdb

import (
	"context"
	"sync"

	"github.com/trezcool/bunk/core"
)

type DB struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ core.KVStore = (*DB)(nil)

func Open() (*DB, error) {
	return &DB{table: make(map[string][]byte)}, nil
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	val, ok := db.table[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return copyBytes(val), nil
}

func (db *DB) Put(_ context.Context, key string, value []byte) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.table[key] = copyBytes(value)
	return nil
}

func (db *DB) Delete(_ context.Context, key string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	delete(db.table, key)
	return nil
}

func (db *DB) Close() error { return nil }

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
