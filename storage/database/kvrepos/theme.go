package kvrepos

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/theme"
)

// DarkModeKey holds a JSON boolean.
const DarkModeKey = "darkMode"

type themeRepository struct {
	kv core.KVStore
}

var _ theme.Repository = (*themeRepository)(nil)

func NewThemeRepository(kv core.KVStore) theme.Repository {
	return &themeRepository{kv: kv}
}

func (repo *themeRepository) LoadDarkMode(ctx context.Context) (bool, error) {
	data, err := repo.kv.Get(ctx, DarkModeKey)
	if err != nil {
		if errors.Is(err, core.ErrKeyNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "reading dark mode")
	}

	var on bool
	if err := json.Unmarshal(data, &on); err != nil {
		return false, errors.Wrap(err, "decoding dark mode")
	}
	return on, nil
}

func (repo *themeRepository) SaveDarkMode(ctx context.Context, on bool) error {
	data, _ := json.Marshal(on)
	return errors.Wrap(repo.kv.Put(ctx, DarkModeKey, data), "writing dark mode")
}
