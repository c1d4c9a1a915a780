package attendance

import (
	"errors"

	"github.com/trezcool/bunk/core"
)

// Threshold is the minimum attendance percentage.
const Threshold = 75.0

var (
	ErrInvalidTotal       = errors.New("total classes must be at least 1")
	ErrAttendedOutOfRange = errors.New("attended classes must be between 0 and total classes")
)

// Result holds the values derived from a (total, attended) pair.
type Result struct {
	Percentage      float64 `json:"percentage"`
	Deficit         float64 `json:"deficit"`
	RequiredClasses int     `json:"requiredClasses"`
}

// Calculate derives the attendance percentage, the deficit below Threshold
// and the number of consecutive classes to attend to get back to Threshold.
func Calculate(total, attended int) (Result, error) {
	if total < 1 {
		return Result{}, core.NewValidationError(
			ErrInvalidTotal,
			core.FieldError{Field: "totalClasses", Error: ErrInvalidTotal.Error()},
		)
	}
	if attended < 0 || attended > total {
		return Result{}, core.NewValidationError(
			ErrAttendedOutOfRange,
			core.FieldError{Field: "attendedClasses", Error: ErrAttendedOutOfRange.Error()},
		)
	}

	res := Result{Percentage: float64(attended) / float64(total) * 100}
	// (attended+x)/(total+x) >= 3/4  <=>  x >= 3*total - 4*attended
	if missing := 3*total - 4*attended; missing > 0 {
		res.Deficit = Threshold - res.Percentage
		res.RequiredClasses = missing
	}
	return res, nil
}
