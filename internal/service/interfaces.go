package service

import (
	"context"

	"github.com/MKhiriev/go-push-mirror/models"
)

// DeviceRegistry caches the account devices and resolves device nicknames
// to identifiers.
type DeviceRegistry interface {
	// EnsureLoaded fetches the device list once when the cache is empty and
	// returns the cache otherwise. The list is published to the presenter on
	// every call. Fetch failures are logged and yield an empty list; the
	// next call retries.
	EnsureLoaded(ctx context.Context) []models.Device

	// Resolve returns the identifier of the cached device whose nickname
	// matches name case-insensitively, or [ErrDeviceNotFound].
	Resolve(name string) (string, error)
}

// FilterResult is the outcome of one pass of the push filter pipeline.
type FilterResult struct {
	// Display holds the note and link pushes to show.
	Display []models.Push
	// Files holds the file pushes reported to the presenter.
	Files []models.Push
}

// PushFilter applies the target device, sender and type/state filters to a
// raw history batch.
type PushFilter interface {
	Apply(ctx context.Context, pushes []models.Push) FilterResult
}

// HistoryFetcher performs bounded, cursor-paginated history retrieval.
type HistoryFetcher interface {
	// FetchFiltered runs up to three fetch rounds and returns the filtered
	// display list. When initial is false and the newest push is a command,
	// the push is dispatched and the result reports CommandHandled with no
	// pushes.
	FetchFiltered(ctx context.Context, initial bool) models.FetchResult
}

// EphemeralStore holds the live mirrored notifications and SMS entries.
type EphemeralStore interface {
	// Add applies the collapse rules, appends event and returns the stored
	// copy stamped with its receipt time.
	Add(event models.Ephemeral) models.Ephemeral

	// Remove applies a dismissal and returns the number of removed entries.
	Remove(dismissal models.Ephemeral) int

	// List returns a snapshot of the stored entries in insertion order.
	List() []models.Ephemeral
}

// Feed owns the current push list and republishes the merged notification
// list after every mutation of either input.
type Feed interface {
	// SetPushes replaces the push list and recomputes.
	SetPushes(pushes []models.Push)

	// Refresh recomputes after an ephemeral store mutation.
	Refresh()

	// Notifications returns the last merged list.
	Notifications() []models.NotificationView
}

// CommandDispatcher interprets command pushes.
type CommandDispatcher interface {
	// Dispatch takes exactly one transition for push and reports which.
	Dispatch(ctx context.Context, push models.Push) models.CommandOutcome

	// Recent returns the newest journaled commands.
	Recent(ctx context.Context, limit int) ([]models.CommandRecord, error)
}

// SessionState is the lifecycle state of a [StreamSession].
type SessionState string

const (
	SessionDisconnected SessionState = "disconnected"
	SessionConnecting   SessionState = "connecting"
	SessionConnected    SessionState = "connected"
	SessionError        SessionState = "error"
)

// StreamSession owns the realtime stream lifecycle and routes its events.
type StreamSession interface {
	// Start enables end-to-end encryption when configured, performs the
	// initialization load, opens the stream and processes its events on a
	// background goroutine. A second call returns [ErrSessionAlreadyStarted].
	Start(ctx context.Context) error

	// Stop cancels event processing and waits for it to finish.
	Stop()

	// Done is closed once the event stream has ended.
	Done() <-chan struct{}

	// State reports the current lifecycle state.
	State() SessionState
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
