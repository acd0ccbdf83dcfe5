package service

import (
	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/crypto"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/store"
	"github.com/MKhiriev/go-push-mirror/models"
)

// Adapters groups the remote service clients.
type Adapters struct {
	Push   adapter.PushAdapter
	Stream adapter.StreamAdapter
}

type Services struct {
	DeviceRegistry    DeviceRegistry
	PushFilter        PushFilter
	HistoryFetcher    HistoryFetcher
	EphemeralStore    EphemeralStore
	Feed              Feed
	CommandDispatcher CommandDispatcher
	StreamSession     StreamSession
	AppInfoService    AppInfoService
}

func NewServices(
	adapters Adapters,
	storages *store.Storages,
	keyChain crypto.KeyChain,
	presenter Presenter,
	executor Executor,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	registry := NewDeviceRegistry(adapters.Push, presenter, logger)
	filter := NewPushFilter(registry, presenter, cfg.Filter, logger)
	dispatcher := NewCommandDispatcher(registry, presenter, executor, storages.CommandJournal, cfg.Commands, logger)
	fetcher := NewHistoryFetcher(adapters.Push, registry, filter, dispatcher, cfg, logger)
	ephemerals := NewEphemeralStore(cfg.Features)
	feed := NewFeed(ephemerals, presenter)

	return &Services{
		DeviceRegistry:    registry,
		PushFilter:        filter,
		HistoryFetcher:    fetcher,
		EphemeralStore:    ephemerals,
		Feed:              feed,
		CommandDispatcher: dispatcher,
		StreamSession: NewStreamSession(
			adapters.Push, adapters.Stream, keyChain, fetcher, ephemerals, feed, executor, cfg, logger,
		),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
