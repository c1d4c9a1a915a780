package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bunk/core"
)

// Record is one attendance computation. Records are never mutated once created.
type Record struct {
	ID              int64     `json:"id"`   // creation timestamp (unix ms)
	Date            time.Time `json:"date"` // UTC
	StudentName     string    `json:"studentName"`
	TotalClasses    int       `json:"totalClasses"`
	AttendedClasses int       `json:"attendedClasses"`
	Percentage      float64   `json:"percentage"`
	Deficit         float64   `json:"deficit"`
	RequiredClasses int       `json:"requiredClasses"`
}

func (r Record) Adequate() bool {
	return r.Percentage >= Threshold
}

// Status is the short verdict shown next to a record.
func (r Record) Status() string {
	if r.Adequate() {
		return "Adequate"
	}
	return fmt.Sprintf("Need %d more classes", r.RequiredClasses)
}

// NewRecord contains information needed to create a new Record.
type NewRecord struct {
	StudentName     string `json:"studentName" validate:"required,printable"`
	TotalClasses    int    `json:"totalClasses" validate:"min=1"`
	AttendedClasses int    `json:"attendedClasses" validate:"min=0"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.StudentName = core.CleanString(nr.StudentName)
	return validate.Struct(nr)
}

// Ordering fields accepted by QueryFilter.
const (
	OrderByDate        = "date"
	OrderByStudentName = "studentName"
	OrderByPercentage  = "percentage"
)

var orderingFields = map[string]string{
	"date":        OrderByDate,
	"studentname": OrderByStudentName,
	"percentage":  OrderByPercentage,
}

type QueryFilter struct {
	Search    string `query:"search"`
	Orderings []core.Ordering
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && len(qf.Orderings) == 0
}

func (qf *QueryFilter) Clean() {
	orderings := make([]core.Ordering, 0, len(qf.Orderings))
	for _, ord := range qf.Orderings {
		if field, ok := orderingFields[strings.ToLower(core.CleanString(ord.Field))]; ok {
			ord.Field = field
			orderings = append(orderings, ord)
		}
	}
	qf.Orderings = orderings
}
