package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/bunk/core"
)

func testConfig(t *testing.T, engine, file string) *core.Config {
	conf := &core.Config{}
	conf.Store.Engine = engine
	conf.Store.Path = filepath.Join(t.TempDir(), "data", file)
	return conf
}

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name string
		conf *core.Config
	}{
		{name: "memory", conf: testConfig(t, EngineMemory, "")},
		{name: "bolt", conf: testConfig(t, EngineBolt, "bunk.db")},
		{name: "sqlite3", conf: testConfig(t, EngineSQLite, "bunk.sqlite3")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStore(tt.conf)
			require.NoError(t, err)
			defer func() { assert.NoError(t, store.Close()) }()

			testKVStore(t, store)
		})
	}

	t.Run("unknown engine", func(t *testing.T) {
		_, err := OpenStore(testConfig(t, "lol", ""))
		assert.True(t, errors.Is(err, ErrUnknownEngine), "err = %v", err)
	})
}

func TestOpenStore_persists(t *testing.T) {
	for _, engine := range []string{EngineBolt, EngineSQLite} {
		t.Run(engine, func(t *testing.T) {
			ctx := context.Background()
			conf := testConfig(t, engine, "bunk.db")

			store, err := OpenStore(conf)
			require.NoError(t, err)
			require.NoError(t, store.Put(ctx, "darkMode", []byte("true")))
			require.NoError(t, store.Close())

			store, err = OpenStore(conf)
			require.NoError(t, err)
			defer func() { assert.NoError(t, store.Close()) }()

			got, err := store.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.Equal(t, []byte("true"), got)
		})
	}
}

func testKVStore(t *testing.T, store core.KVStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, core.ErrKeyNotFound), "err = %v", err)

	require.NoError(t, store.Put(ctx, "key", []byte(`[{"id":1}]`)))
	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), got)

	// overwrite
	require.NoError(t, store.Put(ctx, "key", []byte(`[]`)))
	got, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// returned values are copies
	got[0] = 'X'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), again)

	require.NoError(t, store.Delete(ctx, "key"))
	_, err = store.Get(ctx, "key")
	assert.True(t, errors.Is(err, core.ErrKeyNotFound), "err = %v", err)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestPostgresURL(t *testing.T) {
	conf := core.DatabaseConfig{
		Host:       "db",
		Port:       "5432",
		Name:       "bunk",
		User:       "bunk",
		Password:   "p@ss",
		DisableTLS: true,
	}
	assert.Equal(t, "postgres://bunk:p%40ss@db:5432/bunk?sslmode=disable&timezone=utc", postgresURL(conf))

	conf.DisableTLS = false
	assert.Contains(t, postgresURL(conf), "sslmode=require")
}
