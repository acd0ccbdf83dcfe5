// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

// Hub keeps the presentation state and broadcasts changes.
type Hub struct {
	cfg config.Display

	mu            sync.RWMutex
	devices       []models.Device
	notifications []models.NotificationView
	subscribers   map[*Subscriber]struct{}
	closed        bool

	logger *logger.Logger
}

// NewHub creates a hub with empty snapshots.
func NewHub(cfg config.Display, logger *logger.Logger) *Hub {
	return &Hub{
		cfg:           cfg,
		devices:       []models.Device{},
		notifications: []models.NotificationView{},
		subscribers:   make(map[*Subscriber]struct{}),
		logger:        logger,
	}
}

// Subscribe registers a new subscriber. The caller must Unsubscribe it.
// After Close the returned subscriber is already closed.
func (h *Hub) Subscribe() *Subscriber {
	sub := newSubscriber()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close()
		return sub
	}
	h.subscribers[sub] = struct{}{}

	return sub
}

// Unsubscribe removes sub and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()

	sub.close()
}

// Close closes every subscriber. Snapshots stay readable.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		sub.close()
	}
}

// Devices returns the last published device list.
func (h *Hub) Devices() []models.Device {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.devices)
}

// Notifications returns the last published, display-ready notifications.
func (h *Hub) Notifications() []models.NotificationView {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.notifications)
}

func (h *Hub) OnDevicesUpdated(devices []models.Device) {
	h.mu.Lock()
	h.devices = slices.Clone(devices)
	h.mu.Unlock()

	h.broadcast(Event{Kind: EventDevices, Devices: slices.Clone(devices)})
}

func (h *Hub) OnNotificationsUpdated(notifications []models.NotificationView) {
	h.mu.Lock()
	visible := h.prepare(notifications)
	h.notifications = visible
	h.mu.Unlock()

	h.broadcast(Event{Kind: EventNotifications, Notifications: slices.Clone(visible)})
}

func (h *Hub) OnFileReceived(push models.Push) {
	h.broadcast(Event{Kind: EventFile, Push: &push})
}

func (h *Hub) OnCommandForwarded(push models.Push) {
	h.broadcast(Event{Kind: EventCommand, Push: &push})
}

func (h *Hub) OnSpeak(text string) {
	h.broadcast(Event{Kind: EventSpeak, Text: text})
}

func (h *Hub) OnModuleVisibility(module string, visible bool) {
	h.broadcast(Event{Kind: EventModuleVisibility, Module: module, Visible: &visible})
}

// prepare applies the display count, the truncation limits and the device
// icons. The caller holds h.mu.
func (h *Hub) prepare(notifications []models.NotificationView) []models.NotificationView {
	count := min(len(notifications), max(h.cfg.NumberOfNotifications, 0))
	visible := make([]models.NotificationView, 0, count)

	for _, n := range notifications[:count] {
		n.Header = truncate(n.Header, h.cfg.MaxHeaderCharacters, ellipsis)
		n.Body = truncate(n.Body, h.cfg.MaxMessageCharacters, "")
		if n.SourceKind == models.SourcePush {
			n.IconRef = h.deviceIcon(n.SourceDeviceID)
		}
		visible = append(visible, n)
	}

	return visible
}

func (h *Hub) deviceIcon(deviceID string) string {
	for _, d := range h.devices {
		if d.Identifier == deviceID {
			return d.IconHint()
		}
	}
	return models.IconMessage
}

func (h *Hub) broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if !sub.safeSend(event) {
			h.logger.Warn().
				Str("func", "Hub.broadcast").
				Str("event", string(event.Kind)).
				Msg("subscriber lagging, event dropped")
		}
	}
}
