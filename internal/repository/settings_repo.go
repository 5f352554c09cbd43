package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

// SettingsRepository persists register settings and the uploaded logo.
// The logo is stored as an opaque data-URL string under its own key so the
// (potentially large) image never rides along with every settings save.
type SettingsRepository interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
	LoadLogo(ctx context.Context) (string, error)
	SaveLogo(ctx context.Context, dataURL string) error
}

type settingsRepo struct{ blobs store.BlobStore }

func NewSettingsRepository(blobs store.BlobStore) SettingsRepository {
	return &settingsRepo{blobs: blobs}
}

func (r *settingsRepo) Load(ctx context.Context) (model.Settings, error) {
	blob, err := r.blobs.Get(ctx, store.KeySettings)
	if errors.Is(err, store.ErrNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal(blob, &s); err != nil {
		return model.Settings{}, err
	}
	if s.Currency == "" {
		s.Currency = model.DefaultSettings().Currency
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, settings model.Settings) error {
	blob, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, store.KeySettings, blob)
}

func (r *settingsRepo) LoadLogo(ctx context.Context) (string, error) {
	blob, err := r.blobs.Get(ctx, store.KeyLogo)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

func (r *settingsRepo) SaveLogo(ctx context.Context, dataURL string) error {
	return r.blobs.Set(ctx, store.KeyLogo, []byte(dataURL))
}
