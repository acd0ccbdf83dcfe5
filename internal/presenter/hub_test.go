package presenter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

func newTestHub() *Hub {
	return NewHub(config.Display{
		NumberOfNotifications: 2,
		MaxHeaderCharacters:   5,
		MaxMessageCharacters:  4,
	}, logger.Nop())
}

func receive(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscriber closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_InitialSnapshotsAreEmpty(t *testing.T) {
	h := newTestHub()

	assert.NotNil(t, h.Devices())
	assert.Empty(t, h.Devices())
	assert.NotNil(t, h.Notifications())
	assert.Empty(t, h.Notifications())
}

func TestHub_OnNotificationsUpdated_SlicesAndTruncates(t *testing.T) {
	h := newTestHub()
	now := time.Now()

	h.OnNotificationsUpdated([]models.NotificationView{
		{SourceKind: models.SourceMirror, Header: "Signal - Alice", Body: "hello there", IconRef: "b64", CreatedAt: now},
		{SourceKind: models.SourceSMS, Header: "SMS", Body: "hi", CreatedAt: now.Add(-time.Minute)},
		{SourceKind: models.SourcePush, Header: "third", Body: "dropped", CreatedAt: now.Add(-time.Hour)},
	})

	got := h.Notifications()
	require.Len(t, got, 2)

	assert.Equal(t, "Signa...", got[0].Header)
	assert.Equal(t, "hell", got[0].Body)
	assert.Equal(t, "b64", got[0].IconRef)

	assert.Equal(t, "SMS", got[1].Header)
	assert.Equal(t, "hi", got[1].Body)
}

func TestHub_OnNotificationsUpdated_CountsRunes(t *testing.T) {
	h := newTestHub()

	h.OnNotificationsUpdated([]models.NotificationView{
		{SourceKind: models.SourceSMS, Header: "Привет мир", Body: "ёжик"},
	})

	got := h.Notifications()
	require.Len(t, got, 1)
	assert.Equal(t, "Приве...", got[0].Header)
	assert.Equal(t, "ёжик", got[0].Body)
}

func TestHub_OnNotificationsUpdated_ZeroLimitsKeepText(t *testing.T) {
	h := NewHub(config.Display{NumberOfNotifications: 5}, logger.Nop())

	h.OnNotificationsUpdated([]models.NotificationView{
		{SourceKind: models.SourceSMS, Header: "a long header", Body: "a long body"},
	})

	got := h.Notifications()
	require.Len(t, got, 1)
	assert.Equal(t, "a long header", got[0].Header)
	assert.Equal(t, "a long body", got[0].Body)
}

func TestHub_PushIconResolvedFromDevice(t *testing.T) {
	h := newTestHub()
	h.OnDevicesUpdated([]models.Device{
		{Identifier: "d1", DisplayName: "Laptop", DeviceClassHint: "desktop", PlatformHint: "windows"},
		{Identifier: "d2", DisplayName: "Phone", DeviceClassHint: "phone"},
	})

	h.OnNotificationsUpdated([]models.NotificationView{
		{SourceKind: models.SourcePush, Header: "A", SourceDeviceID: "d1"},
		{SourceKind: models.SourcePush, Header: "B", SourceDeviceID: "unknown"},
	})

	got := h.Notifications()
	require.Len(t, got, 2)
	assert.Equal(t, models.IconWindows, got[0].IconRef)
	assert.Equal(t, models.IconMessage, got[1].IconRef)
}

func TestHub_SnapshotsAreCopies(t *testing.T) {
	h := newTestHub()
	devices := []models.Device{{Identifier: "d1"}}
	h.OnDevicesUpdated(devices)

	devices[0].Identifier = "mutated"
	got := h.Devices()
	got[0].DisplayName = "also mutated"

	assert.Equal(t, "d1", h.Devices()[0].Identifier)
	assert.Empty(t, h.Devices()[0].DisplayName)
}

func TestHub_BroadcastsEveryCallback(t *testing.T) {
	h := newTestHub()
	sub := h.Subscribe()
	defer h.Unsubscribe(sub)

	h.OnDevicesUpdated([]models.Device{{Identifier: "d1"}})
	ev := receive(t, sub)
	assert.Equal(t, EventDevices, ev.Kind)
	assert.Len(t, ev.Devices, 1)

	h.OnNotificationsUpdated([]models.NotificationView{{SourceKind: models.SourceSMS, Header: "hi"}})
	ev = receive(t, sub)
	assert.Equal(t, EventNotifications, ev.Kind)
	assert.Len(t, ev.Notifications, 1)

	h.OnFileReceived(models.Push{Identifier: "f1"})
	ev = receive(t, sub)
	assert.Equal(t, EventFile, ev.Kind)
	require.NotNil(t, ev.Push)
	assert.Equal(t, "f1", ev.Push.Identifier)

	h.OnCommandForwarded(models.Push{Identifier: "c1"})
	ev = receive(t, sub)
	assert.Equal(t, EventCommand, ev.Kind)
	require.NotNil(t, ev.Push)
	assert.Equal(t, "c1", ev.Push.Identifier)

	h.OnSpeak("hello")
	ev = receive(t, sub)
	assert.Equal(t, EventSpeak, ev.Kind)
	assert.Equal(t, "hello", ev.Text)

	h.OnModuleVisibility("clock", false)
	ev = receive(t, sub)
	assert.Equal(t, EventModuleVisibility, ev.Kind)
	assert.Equal(t, "clock", ev.Module)
	require.NotNil(t, ev.Visible)
	assert.False(t, *ev.Visible)
}

func TestHub_LaggingSubscriberDoesNotBlock(t *testing.T) {
	h := newTestHub()
	sub := h.Subscribe()
	defer h.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		for i := range subscriberBuffer + 10 {
			h.OnSpeak(fmt.Sprintf("msg %d", i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
	assert.Len(t, sub.Events(), subscriberBuffer)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := newTestHub()
	sub := h.Subscribe()

	h.Unsubscribe(sub)
	h.Unsubscribe(sub)

	_, ok := <-sub.Events()
	assert.False(t, ok)

	assert.NotPanics(t, func() { h.OnSpeak("after") })
	assert.False(t, sub.safeSend(Event{Kind: EventSpeak}))
}

func TestHub_Close(t *testing.T) {
	h := newTestHub()
	before := h.Subscribe()

	h.Close()

	_, ok := <-before.Events()
	assert.False(t, ok)

	after := h.Subscribe()
	_, ok = <-after.Events()
	assert.False(t, ok)

	h.OnNotificationsUpdated([]models.NotificationView{{SourceKind: models.SourceSMS, Header: "still stored"}})
	assert.Len(t, h.Notifications(), 1)
	assert.NotPanics(t, func() { h.Unsubscribe(before) })
}
