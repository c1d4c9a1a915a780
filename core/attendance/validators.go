package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/bunk/core"
)

var (
	attendedLteTag  = "attendedlte"
	attendedLteText = "attended classes cannot exceed total classes"
)

// InitValidators registers the attendance validators on validate.
// core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(newRecordStructValidation, NewRecord{})
	core.RegisterCustomTranslation(validate, translator, attendedLteTag, attendedLteText)
}

// newRecordStructValidation checks that attended classes do not exceed total classes.
func newRecordStructValidation(sl validator.StructLevel) {
	nr, ok := sl.Current().Interface().(NewRecord)
	if !ok {
		return
	}
	if nr.TotalClasses >= 1 && nr.AttendedClasses > nr.TotalClasses {
		sl.ReportError(nr.AttendedClasses, "attendedClasses", "AttendedClasses", attendedLteTag, "")
	}
}
