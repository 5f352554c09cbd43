// Command seedcatalog writes a demo product catalog into the configured
// blob store so a fresh register has something to sell.
//
// Usage: seedcatalog [-replace]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rajat-ed/nagadiPOS/internal/config"
	"github.com/rajat-ed/nagadiPOS/internal/model"
	"github.com/rajat-ed/nagadiPOS/internal/repository"
	"github.com/rajat-ed/nagadiPOS/internal/store"
)

var demoProducts = []model.Product{
	{Name: "Coffee", Price: decimal.NewFromFloat(2.50)},
	{Name: "Tea", Price: decimal.NewFromFloat(1.75)},
	{Name: "Sandwich", Price: decimal.NewFromFloat(5.25)},
	{Name: "Samosa", Price: decimal.NewFromFloat(0.90)},
	{Name: "Lassi", Price: decimal.NewFromFloat(3.00)},
	{Name: "Biscuit Pack", Price: decimal.NewFromFloat(1.20)},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	replace := flag.Bool("replace", false, "overwrite an existing catalog instead of refusing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	blobs, err := newBlobStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open blob store")
	}

	ctx := context.Background()
	repo := repository.NewCatalogRepository(blobs)

	existing, err := repo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read catalog")
	}
	if len(existing) > 0 && !*replace {
		log.Fatal().Int("products", len(existing)).Msg("catalog is not empty, pass -replace to overwrite")
	}

	if err := repo.Save(ctx, demoProducts); err != nil {
		log.Fatal().Err(err).Msg("failed to write catalog")
	}
	log.Info().Int("products", len(demoProducts)).Str("driver", cfg.StorageDriver).Msg("demo catalog seeded")
}

func newBlobStore(cfg *config.Config) (store.BlobStore, error) {
	switch cfg.StorageDriver {
	case "redis":
		return store.NewRedisStore(cfg.RedisURL)
	case "postgres":
		return store.NewPostgresStore(cfg.DatabaseURL)
	case "sqlite":
		return store.NewSQLiteStore(cfg.SQLitePath)
	default:
		return store.NewMemoryStore(), nil
	}
}
