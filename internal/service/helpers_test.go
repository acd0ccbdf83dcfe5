package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/models"
)

// stubRegistry resolves names from a fixed nickname → iden table.
type stubRegistry struct {
	ids     map[string]string
	devices []models.Device
	loads   int
}

func (s *stubRegistry) EnsureLoaded(_ context.Context) []models.Device {
	s.loads++
	return s.devices
}

func (s *stubRegistry) Resolve(name string) (string, error) {
	for nickname, id := range s.ids {
		if strings.EqualFold(nickname, name) {
			return id, nil
		}
	}
	return "", ErrDeviceNotFound
}

// syncRun executes effects inline so tests can assert on them.
func syncRun(effect func()) { effect() }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Filter:   config.Filter{Mode: config.FilterModeStrict},
		Display:  config.Display{NumberOfNotifications: 3, FetchLimit: 50},
		Commands: config.Commands{Timeout: 15 * time.Second},
	}
}

func notePush(id, sender, body string, created float64) models.Push {
	return models.Push{
		Identifier: id,
		Type:       models.PushNote,
		SenderName: sender,
		Body:       body,
		Created:    created,
		Active:     true,
	}
}
