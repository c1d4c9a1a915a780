package attendance

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
)

var ErrClearNotConfirmed = errors.New("clearing the history must be confirmed")

var nowFunc = time.Now // mockable

type (
	Repository interface {
		// LoadRecords returns the persisted records, newest first.
		// An empty store yields an empty slice and no error.
		LoadRecords(ctx context.Context) ([]Record, error)
		// SaveRecords replaces the persisted sequence with records.
		SaveRecords(ctx context.Context, records []Record) error
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		dateLayout string
		location   *time.Location

		mu      sync.RWMutex
		records []Record // newest first
		lastID  int64
	}
)

func NewService(repo Repository, validate *validator.Validate, conf *core.Config) *Service {
	svc := &Service{
		repo:       repo,
		validate:   validate,
		dateLayout: DefaultDateLayout,
		location:   time.UTC,
	}
	if conf != nil {
		if conf.Export.DateLayout != "" {
			svc.dateLayout = conf.Export.DateLayout
		}
		if conf.Export.Location != nil {
			svc.location = conf.Export.Location
		}
	}
	return svc
}

// Load reads the persisted history into memory. It is meant to be called once at startup.
func (svc *Service) Load(ctx context.Context) error {
	records, err := svc.repo.LoadRecords(ctx)
	if err != nil {
		return pkgerrors.Wrap(err, "loading records")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.records = records
	svc.lastID = 0
	for _, rec := range records {
		if rec.ID > svc.lastID {
			svc.lastID = rec.ID
		}
	}
	return nil
}

// Create validates nr, computes the derived values and prepends the new Record to the history.
func (svc *Service) Create(ctx context.Context, nr NewRecord) (Record, error) {
	if err := nr.Validate(svc.validate); err != nil {
		return Record{}, err
	}
	res, err := Calculate(nr.TotalClasses, nr.AttendedClasses)
	if err != nil {
		return Record{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := nowFunc().UTC()
	id := now.UnixNano() / int64(time.Millisecond)
	if id <= svc.lastID {
		id = svc.lastID + 1
	}
	rec := Record{
		ID:              id,
		Date:            now,
		StudentName:     nr.StudentName,
		TotalClasses:    nr.TotalClasses,
		AttendedClasses: nr.AttendedClasses,
		Percentage:      res.Percentage,
		Deficit:         res.Deficit,
		RequiredClasses: res.RequiredClasses,
	}

	records := make([]Record, 0, len(svc.records)+1)
	records = append(records, rec)
	records = append(records, svc.records...)
	if err := svc.repo.SaveRecords(ctx, records); err != nil {
		return Record{}, pkgerrors.Wrap(err, "saving records")
	}
	svc.records = records
	svc.lastID = id
	return rec, nil
}

// Query returns a copy of the history filtered and ordered by filter.
func (svc *Service) Query(_ context.Context, filter QueryFilter) []Record {
	filter.Clean()

	svc.mu.RLock()
	records := Filter(svc.records, filter.Search)
	svc.mu.RUnlock()

	Sort(records, filter.Orderings)
	return records
}

// Export writes the records matching filter as CSV.
func (svc *Service) Export(ctx context.Context, w io.Writer, filter QueryFilter) error {
	return WriteCSV(w, svc.Query(ctx, filter), svc.dateLayout, svc.location)
}

// FormatDate renders t the way exports do.
func (svc *Service) FormatDate(t time.Time) string {
	return t.In(svc.location).Format(svc.dateLayout)
}

// Clear removes every Record. confirm must be true.
func (svc *Service) Clear(ctx context.Context, confirm bool) error {
	if !confirm {
		return core.NewValidationError(
			ErrClearNotConfirmed,
			core.FieldError{Field: "confirm", Error: ErrClearNotConfirmed.Error()},
		)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if err := svc.repo.SaveRecords(ctx, []Record{}); err != nil {
		return pkgerrors.Wrap(err, "saving records")
	}
	svc.records = nil
	return nil
}

func (svc *Service) Count() int {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return len(svc.records)
}
