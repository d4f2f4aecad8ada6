package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sabor-autentico/config"
	httpapi "sabor-autentico/site-svc/internal/api/http"
	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/service"
	"sabor-autentico/site-svc/internal/storage"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	config.SetupLogger("site-svc", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, closeCatalog := initCatalog(ctx, cfg)
	defer closeCatalog()

	menu := service.NewMenuService(catalog)
	if err := menu.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load menu")
	}

	deps := service.SessionDeps{
		Clock: clock.Real{},
		QR:    service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
	}
	var publisher *storage.KafkaPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer, storage.DefaultQueueSize)
		deps.Publisher = publisher
		log.Info().Str("broker", cfg.KafkaBroker).Str("topic", cfg.KafkaTopic).Msg("publishing site events")
	} else {
		log.Info().Msg("KAFKA_BROKER not set, site events disabled")
	}

	sessions := service.NewSessionStore(deps, cfg.SessionIdleTimeout)
	router := httpapi.NewRouter(httpapi.NewHandler(menu, sessions), cfg.CORSOrigins...)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sessions.Run(ctx, cfg.SessionSweepEvery)
	})
	if publisher != nil {
		g.Go(func() error {
			return publisher.Run(ctx)
		})
	}
	g.Go(func() error {
		return httpapi.StartServer(ctx, cfg.SiteAddr, router)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("site service stopped")
	}
}

func initCatalog(ctx context.Context, cfg config.Config) (service.CatalogRepository, func()) {
	if cfg.CatalogSource != "postgres" {
		return storage.NewStaticCatalog(), func() {}
	}

	db := config.MustInitPostgres()
	repo := storage.NewPostgresCatalog(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare catalog schema")
	}
	categories, items := storage.SeedCatalog()
	if err := repo.Seed(ctx, categories, items); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	return repo, func() { db.Close() }
}
