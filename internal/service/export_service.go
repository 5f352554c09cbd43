package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rajat-ed/nagadiPOS/internal/export"
)

// ExportService drives the export formatter: it picks the transaction set,
// lays it out as draw ops and hands them to the document collaborator.
type ExportService interface {
	ExportRange(ctx context.Context, rng string) (string, error)
	ExportSession(ctx context.Context, sessionID string) (string, error)
	ExportSummary(ctx context.Context, rng string) (string, error)
}

type exportService struct {
	reports  ReportService
	sessions SessionService
	settings SettingsService
	renderer export.Renderer
	now      func() time.Time
}

func NewExportService(reports ReportService, sessions SessionService, settings SettingsService, renderer export.Renderer) ExportService {
	return &exportService{
		reports:  reports,
		sessions: sessions,
		settings: settings,
		renderer: renderer,
		now:      time.Now,
	}
}

func (s *exportService) ExportRange(_ context.Context, rng string) (string, error) {
	txs := s.reports.FilterByRange(rng)
	if len(txs) == 0 {
		return "", ErrNoTransactions
	}

	settings := s.settings.Get()
	ops := export.LayoutTransactions(txs, settings.Currency)
	filename := export.FileName(settings.DisplayBusinessName(), export.RangeLabel(rng), s.now())

	path, err := s.renderer.Render(ops, filename)
	if err != nil {
		return "", err
	}
	log.Info().Str("range", rng).Int("transactions", len(txs)).Str("file", path).Msg("range exported")
	return path, nil
}

func (s *exportService) ExportSession(_ context.Context, sessionID string) (string, error) {
	session, err := s.sessions.Find(sessionID)
	if err != nil {
		return "", err
	}
	if len(session.Transactions) == 0 {
		return "", ErrNoTransactions
	}

	settings := s.settings.Get()
	ops := export.LayoutTransactions(session.Transactions, settings.Currency)
	filename := export.FileName(settings.DisplayBusinessName(), "Session_"+session.SessionID, s.now())

	path, err := s.renderer.Render(ops, filename)
	if err != nil {
		return "", err
	}
	log.Info().Str("session_id", sessionID).Int("transactions", len(session.Transactions)).Str("file", path).Msg("session exported")
	return path, nil
}

func (s *exportService) ExportSummary(_ context.Context, rng string) (string, error) {
	summary := s.reports.SaleSummary(rng)
	if summary.Empty() {
		return "", ErrNoSales
	}

	settings := s.settings.Get()
	label := capitalize(rng)
	ops := export.LayoutSummary(summary, settings.DisplayBusinessName(), settings.Currency, label, s.now())
	filename := export.FileName(settings.DisplayBusinessName(), rng+"_Summary", s.now())

	path, err := s.renderer.Render(ops, filename)
	if err != nil {
		return "", err
	}
	log.Info().Str("range", rng).Int("items", len(summary.Items)).Str("file", path).Msg("summary exported")
	return path, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
