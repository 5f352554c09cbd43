package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
)

// SettingsService owns the process-wide register settings. The persisted
// snapshot is loaded once at startup and written only through Save.
type SettingsService interface {
	Get() model.Settings
	Save(ctx context.Context, req dto.SaveSettingsRequest) (model.Settings, error)
	Logo(ctx context.Context) (string, error)
	SaveLogo(ctx context.Context, dataURL string) error
}

type settingsService struct {
	mu       sync.RWMutex
	repo     repository.SettingsRepository
	settings model.Settings
}

func NewSettingsService(ctx context.Context, repo repository.SettingsRepository) (SettingsService, error) {
	settings, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &settingsService{repo: repo, settings: settings}, nil
}

func (s *settingsService) Get() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *settingsService) Save(ctx context.Context, req dto.SaveSettingsRequest) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	next.BusinessName = strings.TrimSpace(req.BusinessName)
	if cur := strings.TrimSpace(req.Currency); cur != "" {
		next.Currency = cur
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return model.Settings{}, err
	}
	s.settings = next
	return next, nil
}

func (s *settingsService) Logo(ctx context.Context) (string, error) {
	return s.repo.LoadLogo(ctx)
}

func (s *settingsService) SaveLogo(ctx context.Context, dataURL string) error {
	return s.repo.SaveLogo(ctx, dataURL)
}
