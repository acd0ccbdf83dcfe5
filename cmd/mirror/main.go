package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/crypto"
	"github.com/MKhiriev/go-push-mirror/internal/effects"
	"github.com/MKhiriev/go-push-mirror/internal/handler"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/presenter"
	"github.com/MKhiriev/go-push-mirror/internal/server"
	"github.com/MKhiriev/go-push-mirror/internal/service"
	"github.com/MKhiriev/go-push-mirror/internal/store"
	"github.com/MKhiriev/go-push-mirror/internal/workers"
	"github.com/MKhiriev/go-push-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetMirrorConfig()
	if err != nil {
		logger.NewLogger("go-push-mirror", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-push-mirror", cfg.Debug)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pushAdapter, err := adapter.NewHTTPPushAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating push adapter")
	}
	streamAdapter, err := adapter.NewWebsocketStreamAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stream adapter")
	}

	hub := presenter.NewHub(cfg.Display, log)

	services := service.NewServices(
		service.Adapters{Push: pushAdapter, Stream: streamAdapter},
		storages,
		crypto.NewKeyChain(),
		hub,
		effects.NewExecutor(cfg.Sound, log),
		cfg,
		buildInfo,
		log,
	)

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services.StreamSession), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
