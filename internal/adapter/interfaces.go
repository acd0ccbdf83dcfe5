// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Pushbullet notification service.
//
// [PushAdapter] covers the REST endpoints (push history, devices, current
// user) and is implemented over resty ([NewHTTPPushAdapter]). [StreamAdapter]
// opens the realtime event stream and is implemented over a websocket
// ([NewWebsocketStreamAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-push-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/push_adapter_mock.go -package=mock

// PushAdapter defines the request/response side of the remote notification
// service. Implementations map transport failures to the sentinel values
// defined in this package.
type PushAdapter interface {
	// FetchHistory returns one page of the push history, newest first.
	// An empty Cursor in the result means there are no more pages.
	FetchHistory(ctx context.Context, opts models.HistoryOptions) (models.HistoryPage, error)

	// ListDevices returns the devices registered on the account.
	ListDevices(ctx context.Context, opts models.DeviceOptions) (models.DeviceList, error)

	// GetCurrentUser returns the account owning the access token.
	GetCurrentUser(ctx context.Context) (models.User, error)
}

// StreamAdapter opens the realtime event stream.
type StreamAdapter interface {
	// OpenStream connects to the stream and returns a channel of events.
	// The first event is always [models.StreamConnect]. When the connection
	// fails after that, a single [models.StreamError] event is delivered and
	// the channel is closed. Cancelling ctx closes the channel without an
	// error event.
	OpenStream(ctx context.Context) (<-chan models.StreamEvent, error)
}
