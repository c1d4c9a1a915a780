package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/bunk/apps/shared"
	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/attendance"
	"github.com/trezcool/bunk/storage/database/inmem"
)

// NewConfig returns the configuration used by tests: TEST mode, in-memory store, no request logs.
func NewConfig() *core.Config {
	conf := core.NewConfig()
	conf.TestMode = true
	conf.Store.Engine = "memory"
	conf.Server.DisableReqLogs = true
	return conf
}

// NewDeps wires every service over a fresh in-memory store.
func NewDeps(t *testing.T) *shared.Deps {
	conf := NewConfig()
	store, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	deps, err := shared.SetupWithStore(context.Background(), conf, shared.NewLogger(conf, "TEST : "), store)
	if err != nil {
		t.Fatalf("shared.SetupWithStore() failed: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })
	return deps
}

// CreateRecord adds a record to the history, failing the test on error.
func CreateRecord(t *testing.T, svc *attendance.Service, name string, total, attended int) attendance.Record {
	rec, err := svc.Create(context.Background(), attendance.NewRecord{
		StudentName:     name,
		TotalClasses:    total,
		AttendedClasses: attended,
	})
	if err != nil {
		t.Fatalf("CreateRecord() failed: %v", err)
	}
	return rec
}

// ClearHistory empties the history, failing the test on error.
func ClearHistory(t *testing.T, svc *attendance.Service) {
	if err := svc.Clear(context.Background(), true); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
}
