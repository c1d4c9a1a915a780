package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultDateLayout renders dates like an en-US short date (M/D/YYYY).
const DefaultDateLayout = "1/2/2006"

var csvHeader = []string{
	"Date", "Student Name", "Total Classes", "Attended Classes", "Percentage", "Deficit", "Required Classes",
}

// WriteCSV writes records as CSV with a fixed 7-column header.
// Names holding commas, quotes or newlines are quoted.
// Dates are rendered in loc (UTC when nil).
func WriteCSV(w io.Writer, records []Record, dateLayout string, loc *time.Location) error {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if loc == nil {
		loc = time.UTC
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, rec := range records {
		row := []string{
			rec.Date.In(loc).Format(dateLayout),
			rec.StudentName,
			strconv.Itoa(rec.TotalClasses),
			strconv.Itoa(rec.AttendedClasses),
			fmt.Sprintf("%.2f%%", rec.Percentage),
			fmt.Sprintf("%.2f%%", rec.Deficit),
			strconv.Itoa(rec.RequiredClasses),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing csv row %d", rec.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}
