package service

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/models"
)

type ephemeralStore struct {
	cfg config.Features
	now func() time.Time

	mu      sync.Mutex
	entries []models.Ephemeral
}

// NewEphemeralStore creates an empty store applying the collapse rules of
// cfg. Entries never expire by time.
func NewEphemeralStore(cfg config.Features) EphemeralStore {
	return &ephemeralStore{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *ephemeralStore) Add(event models.Ephemeral) models.Ephemeral {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.DeleteFunc(s.entries, func(stored models.Ephemeral) bool {
		return s.collapses(stored, event)
	})

	event.ReceivedAt = s.now()
	s.entries = append(s.entries, event)

	return event
}

// collapses reports whether stored is replaced by incoming. The rules are
// alternatives; any match removes the stored entry.
func (s *ephemeralStore) collapses(stored, incoming models.Ephemeral) bool {
	if stored.PackageName != incoming.PackageName {
		return false
	}
	if s.cfg.OnlyLastPerApp {
		return true
	}
	if stored.Title != incoming.Title {
		return false
	}
	if !s.cfg.ShowIndividualNotifications {
		return true
	}
	return stored.Body == incoming.Body
}

func (s *ephemeralStore) Remove(dismissal models.Ephemeral) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(stored models.Ephemeral) bool {
		if dismissal.PackageName == models.SMSPackage {
			return stored.Kind == models.EphemeralSMS
		}
		return stored.PackageName == dismissal.PackageName &&
			stored.NotificationID == dismissal.NotificationID &&
			stored.NotificationTag == dismissal.NotificationTag
	})

	return before - len(s.entries)
}

func (s *ephemeralStore) List() []models.Ephemeral {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.entries)
}
