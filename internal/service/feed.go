package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-push-mirror/models"
)

type feed struct {
	store     EphemeralStore
	presenter Presenter

	mu            sync.Mutex
	pushes        []models.Push
	notifications []models.NotificationView
}

// NewFeed creates a feed over store. The push list starts empty.
func NewFeed(store EphemeralStore, presenter Presenter) Feed {
	return &feed{
		store:         store,
		presenter:     presenter,
		notifications: []models.NotificationView{},
	}
}

func (f *feed) SetPushes(pushes []models.Push) {
	f.mu.Lock()
	f.pushes = slices.Clone(pushes)
	f.mu.Unlock()

	f.Refresh()
}

func (f *feed) Refresh() {
	f.mu.Lock()
	merged := Merge(f.pushes, f.store.List())
	f.notifications = merged
	f.mu.Unlock()

	f.presenter.OnNotificationsUpdated(slices.Clone(merged))
}

func (f *feed) Notifications() []models.NotificationView {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.notifications)
}
