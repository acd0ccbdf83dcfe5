package service

import (
	"context"

	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

// maxFetchRounds caps the history pagination per FetchFiltered call.
const maxFetchRounds = 3

type historyFetcher struct {
	pushAdapter adapter.PushAdapter
	registry    DeviceRegistry
	filter      PushFilter
	dispatcher  CommandDispatcher
	cfg         *config.StructuredConfig

	logger *logger.Logger
}

// NewHistoryFetcher creates a fetcher that pages through the push history
// and runs every page through filter.
func NewHistoryFetcher(
	pushAdapter adapter.PushAdapter,
	registry DeviceRegistry,
	filter PushFilter,
	dispatcher CommandDispatcher,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) HistoryFetcher {
	return &historyFetcher{
		pushAdapter: pushAdapter,
		registry:    registry,
		filter:      filter,
		dispatcher:  dispatcher,
		cfg:         cfg,
		logger:      logger,
	}
}

func (h *historyFetcher) FetchFiltered(ctx context.Context, initial bool) models.FetchResult {
	h.registry.EnsureLoaded(ctx)

	var (
		result  = models.FetchResult{Pushes: []models.Push{}}
		limit   = h.cfg.EffectiveFetchLimit(models.MaxHistoryLimit)
		display = h.cfg.Display.NumberOfNotifications
		cursor  string
	)

	for result.Rounds < maxFetchRounds {
		page, err := h.pushAdapter.FetchHistory(ctx, models.HistoryOptions{
			Active: true,
			Limit:  limit,
			Cursor: cursor,
		})
		result.Rounds++
		if err != nil {
			if result.Rounds == 1 {
				result.Failed = true
			}
			h.logger.Err(err).
				Str("func", "historyFetcher.FetchFiltered").
				Int("round", result.Rounds).
				Msg("history fetch failed, returning partial result")
			break
		}

		if result.Rounds == 1 && !initial && len(page.Pushes) > 0 && page.Pushes[0].IsCommand() {
			outcome := h.dispatcher.Dispatch(ctx, page.Pushes[0])
			h.logger.Debug().
				Str("func", "historyFetcher.FetchFiltered").
				Str("push_iden", page.Pushes[0].Identifier).
				Str("outcome", string(outcome)).
				Msg("newest push routed to command dispatcher")
			result.CommandHandled = true
			return result
		}

		if len(page.Pushes) == 0 {
			break
		}

		filtered := h.filter.Apply(ctx, page.Pushes)
		result.Pushes = append(result.Pushes, filtered.Display...)

		if page.Cursor == "" || len(result.Pushes) >= display {
			break
		}
		cursor = page.Cursor
	}

	return result
}
