package sqlxdb

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
)

// KV stores blobs in the kv_store table (see fs/migrations).
// Queries are written with "?" and rebound for the driver in use.
type KV struct {
	db *sqlx.DB

	getQuery    string
	putQuery    string
	deleteQuery string
}

var _ core.KVStore = (*KV)(nil)

func NewKV(db *sqlx.DB) *KV {
	return &KV{
		db:       db,
		getQuery: db.Rebind(`SELECT value FROM kv_store WHERE key = ?`),
		putQuery: db.Rebind(`
			INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		deleteQuery: db.Rebind(`DELETE FROM kv_store WHERE key = ?`),
	}
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	if err := kv.db.GetContext(ctx, &value, kv.getQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "selecting %q", key)
	}
	return []byte(value), nil
}

func (kv *KV) Put(ctx context.Context, key string, value []byte) error {
	if _, err := kv.db.ExecContext(ctx, kv.putQuery, key, string(value), time.Now().UTC()); err != nil {
		return errors.Wrapf(err, "upserting %q", key)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, kv.deleteQuery, key); err != nil {
		return errors.Wrapf(err, "deleting %q", key)
	}
	return nil
}

func (kv *KV) Close() error {
	return kv.db.Close()
}
