package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("WORKDIR", t.TempDir())

		conf := NewConfig()
		assert.Equal(t, "DEV", conf.Env)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "bolt", conf.Store.Engine)
		assert.Equal(t, filepath.Join("data", "bunk.db"), conf.Store.Path)
		assert.Equal(t, ":8000", conf.Server.Address)
		assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
		assert.Equal(t, "1/2/2006", conf.Export.DateLayout)
		assert.Equal(t, "attendance_history.csv", conf.Export.Filename)
		assert.Equal(t, "Local", conf.Export.Timezone)
		assert.Equal(t, time.Local, conf.Export.Location)
	})

	t.Run("TEST env", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("WORKDIR", t.TempDir())

		conf := NewConfig()
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.Equal(t, "memory", conf.Store.Engine)
	})

	t.Run("prefixed env vars & .env file", func(t *testing.T) {
		wd := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(wd, "config"), 0755))
		dotEnv := "PROD_STORE_PATH=/var/lib/bunk/bunk.db\nPROD_EXPORT_FILENAME=export.csv\n"
		require.NoError(t, os.WriteFile(filepath.Join(wd, "config", ".env.prod"), []byte(dotEnv), 0644))

		t.Setenv("ENV", "prod")
		t.Setenv("WORKDIR", wd)
		t.Setenv("PROD_STORE_ENGINE", "Postgres")
		t.Setenv("PROD_DATABASE_HOST", "db")
		t.Setenv("PROD_EXPORT_TIMEZONE", "UTC")
		// godotenv does not leak into the next tests
		t.Setenv("PROD_STORE_PATH", "")
		t.Setenv("PROD_EXPORT_FILENAME", "")
		require.NoError(t, os.Unsetenv("PROD_STORE_PATH"))
		require.NoError(t, os.Unsetenv("PROD_EXPORT_FILENAME"))

		conf := NewConfig()
		assert.Equal(t, "PROD", conf.Env)
		assert.Equal(t, wd, conf.WorkDir)
		assert.Equal(t, "postgres", conf.Store.Engine)
		assert.Equal(t, "/var/lib/bunk/bunk.db", conf.Store.Path)
		assert.Equal(t, "export.csv", conf.Export.Filename)
		assert.Equal(t, "db:5432", conf.Database.Address())
		assert.Equal(t, time.UTC, conf.Export.Location)
	})
}
