package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sabor-autentico/config"
	httpapi "sabor-autentico/stats-svc/internal/api/http"
	"sabor-autentico/stats-svc/internal/service"
	"sabor-autentico/stats-svc/internal/storage"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	config.SetupLogger("stats-svc", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(rdb)
	router := httpapi.NewRouter(httpapi.NewHandler(service.NewStatsService(store)))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.KafkaBroker != "" {
		reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID)
		defer reader.Close()

		consumer := service.NewConsumer(reader, store)
		g.Go(func() error {
			return consumer.Start(ctx)
		})
	} else {
		log.Warn().Msg("KAFKA_BROKER not set, serving stored stats only")
	}
	g.Go(func() error {
		return httpapi.StartServer(ctx, cfg.StatsAddr, router)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("stats service stopped")
	}
}
