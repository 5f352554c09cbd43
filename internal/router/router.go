package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/config"
	"github.com/rajat-ed/nagadiPOS/internal/export"
	"github.com/rajat-ed/nagadiPOS/internal/handler"
	"github.com/rajat-ed/nagadiPOS/internal/middleware"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
	"github.com/rajat-ed/nagadiPOS/internal/service"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← BlobStore
func New(ctx context.Context, cfg *config.Config, blobs store.BlobStore) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	catalogRepo := repository.NewCatalogRepository(blobs)
	sessionRepo := repository.NewSessionRepository(blobs)
	settingsRepo := repository.NewSettingsRepository(blobs)

	// ── Services ─────────────────────────────────────────────────────────────
	settingsSvc, err := service.NewSettingsService(ctx, settingsRepo)
	if err != nil {
		return nil, err
	}
	catalogSvc, err := service.NewCatalogService(ctx, catalogRepo)
	if err != nil {
		return nil, err
	}
	sessionSvc, err := service.NewSessionService(ctx, sessionRepo)
	if err != nil {
		return nil, err
	}
	cartSvc := service.NewCartService()
	checkoutSvc := service.NewCheckoutService(cartSvc, settingsSvc)
	reportSvc := service.NewReportService(sessionSvc, settingsSvc)

	renderer := export.NewPDFRenderer(cfg.PDFStoragePath)
	exportSvc := service.NewExportService(reportSvc, sessionSvc, settingsSvc, renderer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc)
	cartH := handler.NewCartHandler(cartSvc, catalogSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc, sessionSvc)
	sessionsH := handler.NewSessionsHandler(sessionSvc, exportSvc)
	reportsH := handler.NewReportsHandler(reportSvc, exportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(blobs))

	v1 := r.Group("/v1")
	{
		v1.GET("/products", catalogH.List)
		v1.POST("/products", catalogH.Create)
		v1.DELETE("/products/:name", catalogH.Remove)

		v1.GET("/cart", cartH.Get)
		v1.POST("/cart/items", cartH.AddItem)
		v1.DELETE("/cart/items/:index", cartH.RemoveItem)
		v1.DELETE("/cart", cartH.Clear)

		v1.POST("/checkout/start", checkoutH.Start)
		v1.POST("/checkout/evaluate", checkoutH.Evaluate)
		v1.POST("/checkout/complete", checkoutH.Complete)

		v1.GET("/sessions", sessionsH.List)
		v1.DELETE("/sessions", sessionsH.ClearAll)
		v1.POST("/exports/session/:id", sessionsH.Export)

		v1.GET("/transactions", reportsH.ListTransactions)
		v1.GET("/summary", reportsH.Summary)
		v1.POST("/exports/range", reportsH.ExportRange)
		v1.POST("/exports/summary", reportsH.ExportSummary)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Save)
		v1.GET("/settings/logo", settingsH.GetLogo)
		v1.PUT("/settings/logo", settingsH.SaveLogo)
	}

	return r, nil
}
