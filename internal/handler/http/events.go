// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/presenter"
)

const eventWriteTimeout = 5 * time.Second

// streamEvents upgrades the request to a websocket, sends the current device
// and notification snapshots and then relays every presenter event until
// either side goes away. Client messages are discarded.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.allowedOrigins,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamEvents").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	sub := h.events.Subscribe()
	defer h.events.Unsubscribe(sub)

	ctx := conn.CloseRead(r.Context())

	snapshot := []presenter.Event{
		{Kind: presenter.EventDevices, Devices: h.events.Devices()},
		{Kind: presenter.EventNotifications, Notifications: h.events.Notifications()},
	}
	for _, event := range snapshot {
		if err = writeEvent(ctx, conn, event); err != nil {
			log.Debug().Err(err).Str("func", "*Handler.streamEvents").Msg("snapshot not delivered")
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sub.Events():
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err = writeEvent(ctx, conn, event); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Warn().Err(err).Str("func", "*Handler.streamEvents").Msg("event not delivered")
				}
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, event presenter.Event) error {
	ctx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
	defer cancel()

	return wsjson.Write(ctx, conn, event)
}
