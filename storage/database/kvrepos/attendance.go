package kvrepos

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/attendance"
)

// RecordsKey holds the JSON array of records, newest first.
const RecordsKey = "attendanceRecords"

type attendanceRepository struct {
	kv core.KVStore
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(kv core.KVStore) attendance.Repository {
	return &attendanceRepository{kv: kv}
}

func (repo *attendanceRepository) LoadRecords(ctx context.Context) ([]attendance.Record, error) {
	data, err := repo.kv.Get(ctx, RecordsKey)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			return []attendance.Record{}, nil
		}
		return nil, errors.Wrap(err, "reading records blob")
	}

	records := make([]attendance.Record, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "decoding records blob")
	}
	return records, nil
}

func (repo *attendanceRepository) SaveRecords(ctx context.Context, records []attendance.Record) error {
	if records == nil {
		records = []attendance.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encoding records blob")
	}
	return errors.Wrap(repo.kv.Put(ctx, RecordsKey, data), "writing records blob")
}
