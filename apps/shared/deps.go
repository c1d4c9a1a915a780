// Package shared wires the dependencies common to every app.
package shared

import (
	"context"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/attendance"
	"github.com/trezcool/bunk/core/theme"
	logsvc "github.com/trezcool/bunk/services/logger"
	"github.com/trezcool/bunk/storage/database"
	"github.com/trezcool/bunk/storage/database/kvrepos"
)

type Deps struct {
	Conf          *core.Config
	Logger        core.Logger
	Store         core.KVStore
	Validate      *validator.Validate
	Translator    ut.Translator
	AttendanceSvc *attendance.Service
	ThemeSvc      *theme.Service
}

// NewLogger returns a Rollbar backed logger printing to stdout with prefix.
func NewLogger(conf *core.Config, prefix string) core.Logger {
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	return logger
}

// NewValidator returns a validator with every custom validator and translation registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	return validate, translator
}

// Setup opens the store and loads the persisted state into fresh services.
func Setup(ctx context.Context, conf *core.Config, logger core.Logger) (*Deps, error) {
	store, err := database.OpenStore(conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening store")
	}
	return SetupWithStore(ctx, conf, logger, store)
}

// SetupWithStore is Setup over an already opened store.
func SetupWithStore(ctx context.Context, conf *core.Config, logger core.Logger, store core.KVStore) (*Deps, error) {
	validate, translator := NewValidator()

	attendanceSvc := attendance.NewService(kvrepos.NewAttendanceRepository(store), validate, conf)
	if err := attendanceSvc.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	themeSvc := theme.NewService(kvrepos.NewThemeRepository(store))
	if err := themeSvc.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Deps{
		Conf:          conf,
		Logger:        logger,
		Store:         store,
		Validate:      validate,
		Translator:    translator,
		AttendanceSvc: attendanceSvc,
		ThemeSvc:      themeSvc,
	}, nil
}

func (d *Deps) Close() error {
	return d.Store.Close()
}
