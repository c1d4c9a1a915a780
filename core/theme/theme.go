// Package theme keeps the persisted presentation flag (dark mode).
// It has no interaction with the attendance data.
package theme

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type (
	Repository interface {
		// LoadDarkMode returns false when nothing was persisted yet.
		LoadDarkMode(ctx context.Context) (bool, error)
		SaveDarkMode(ctx context.Context, on bool) error
	}

	Service struct {
		repo Repository

		mu       sync.RWMutex
		darkMode bool
	}

	// Theme is the wire representation of the flag.
	Theme struct {
		DarkMode bool `json:"darkMode"`
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Load(ctx context.Context) error {
	on, err := svc.repo.LoadDarkMode(ctx)
	if err != nil {
		return errors.Wrap(err, "loading dark mode")
	}
	svc.mu.Lock()
	svc.darkMode = on
	svc.mu.Unlock()
	return nil
}

func (svc *Service) Get() Theme {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return Theme{DarkMode: svc.darkMode}
}

func (svc *Service) Set(ctx context.Context, on bool) (Theme, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.set(ctx, on)
}

func (svc *Service) Toggle(ctx context.Context) (Theme, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.set(ctx, !svc.darkMode)
}

func (svc *Service) set(ctx context.Context, on bool) (Theme, error) {
	if err := svc.repo.SaveDarkMode(ctx, on); err != nil {
		return Theme{DarkMode: svc.darkMode}, errors.Wrap(err, "saving dark mode")
	}
	svc.darkMode = on
	return Theme{DarkMode: on}, nil
}
