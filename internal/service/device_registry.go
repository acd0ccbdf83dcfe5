package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

// deviceListLimit bounds the single device listing request.
const deviceListLimit = 10

type deviceRegistry struct {
	pushAdapter adapter.PushAdapter
	presenter   Presenter

	mu      sync.Mutex
	devices []models.Device

	logger *logger.Logger
}

// NewDeviceRegistry creates a registry with an empty cache. Nothing is
// fetched until the first EnsureLoaded call.
func NewDeviceRegistry(pushAdapter adapter.PushAdapter, presenter Presenter, logger *logger.Logger) DeviceRegistry {
	return &deviceRegistry{
		pushAdapter: pushAdapter,
		presenter:   presenter,
		logger:      logger,
	}
}

func (r *deviceRegistry) EnsureLoaded(ctx context.Context) []models.Device {
	r.mu.Lock()
	if len(r.devices) == 0 {
		list, err := r.pushAdapter.ListDevices(ctx, models.DeviceOptions{Active: true, Limit: deviceListLimit})
		if err != nil {
			r.logger.Err(err).Str("func", "deviceRegistry.EnsureLoaded").Msg("failed to list devices")
		} else {
			r.devices = list.Devices
			r.logger.Debug().
				Str("func", "deviceRegistry.EnsureLoaded").
				Int("count", len(list.Devices)).
				Msg("device cache populated")
		}
	}
	devices := slices.Clone(r.devices)
	r.mu.Unlock()

	if devices == nil {
		devices = []models.Device{}
	}
	r.presenter.OnDevicesUpdated(devices)

	return devices
}

func (r *deviceRegistry) Resolve(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, device := range r.devices {
		if strings.EqualFold(device.DisplayName, name) {
			return device.Identifier, nil
		}
	}

	return "", ErrDeviceNotFound
}
