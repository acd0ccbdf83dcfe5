// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-push-mirror/models"
)

//go:generate mockgen -source=collaborators.go -destination=../mock/collaborators_mock.go -package=mock

// Presenter is the push-style interface exposed to the presentation layer.
// Implementations must not block: callbacks are invoked from the stream
// session goroutine.
type Presenter interface {
	// OnDevicesUpdated publishes the device list, cached or fresh.
	OnDevicesUpdated(devices []models.Device)

	// OnNotificationsUpdated publishes the merged notification list.
	OnNotificationsUpdated(notifications []models.NotificationView)

	// OnFileReceived reports a file push that passed the filters.
	OnFileReceived(push models.Push)

	// OnCommandForwarded hands over a command push the dispatcher does not
	// interpret itself (e.g. "hide all modules").
	OnCommandForwarded(push models.Push)

	// OnSpeak requests a spoken message.
	OnSpeak(text string)

	// OnModuleVisibility requests hiding or showing the named module.
	OnModuleVisibility(module string, visible bool)
}

// Executor runs the side effects behind built-in command verbs and the
// audio notification. Results are logged by the caller and never surfaced.
type Executor interface {
	// RunCommand executes a shell command line.
	RunCommand(ctx context.Context, command string) error

	// PlaySound plays the configured notification sound.
	PlaySound(ctx context.Context) error
}
