package service

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-push-mirror/models"
)

// Merge unions pushes and ephemerals into display-ready views, removes
// structural duplicates and sorts the result newest first. The function is
// pure; calling it twice with the same inputs yields the same output.
//
// Dismissal ephemerals are never rendered.
func Merge(pushes []models.Push, ephemerals []models.Ephemeral) []models.NotificationView {
	views := make([]models.NotificationView, 0, len(pushes)+len(ephemerals))
	seen := make(map[mergeKey]struct{}, cap(views))

	add := func(key mergeKey, view models.NotificationView) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		views = append(views, view)
	}

	for _, push := range pushes {
		add(pushKey(push), pushView(push))
	}

	for _, event := range ephemerals {
		switch event.Kind {
		case models.EphemeralMirror:
			add(mirrorKey(event), mirrorView(event))
		case models.EphemeralSMS:
			if len(event.Notifications) == 0 {
				continue
			}
			add(smsKey(event), smsView(event))
		case models.EphemeralDismissal:
			continue
		}
	}

	slices.SortStableFunc(views, func(a, b models.NotificationView) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return views
}

// mergeKey identifies a notification structurally. Fields not relevant for
// a kind stay empty.
type mergeKey struct {
	kind  models.SourceKind
	id    string
	pkg   string
	tag   string
	title string
	body  string
	stamp float64
}

func pushKey(push models.Push) mergeKey {
	if push.Identifier == "" {
		return mergeKey{kind: models.SourcePush, title: push.Title, body: push.Body, stamp: push.Created}
	}
	return mergeKey{kind: models.SourcePush, id: push.Identifier}
}

func mirrorKey(event models.Ephemeral) mergeKey {
	return mergeKey{
		kind:  models.SourceMirror,
		id:    event.NotificationID,
		pkg:   event.PackageName,
		tag:   event.NotificationTag,
		title: event.Title,
		body:  event.Body,
	}
}

func smsKey(event models.Ephemeral) mergeKey {
	first := event.Notifications[0]
	return mergeKey{
		kind:  models.SourceSMS,
		title: first.Title,
		body:  first.Body,
		stamp: first.Timestamp,
	}
}

func pushView(push models.Push) models.NotificationView {
	body := push.Body
	if body == "" {
		body = push.Title
	}
	return models.NotificationView{
		SourceKind:     models.SourcePush,
		Header:         push.SenderName,
		Body:           body,
		SourceDeviceID: push.SourceDeviceID,
		CreatedAt:      push.CreatedAt(),
	}
}

func mirrorView(event models.Ephemeral) models.NotificationView {
	return models.NotificationView{
		SourceKind:     models.SourceMirror,
		Header:         event.ApplicationName + " - " + event.Title,
		Body:           event.Body,
		IconRef:        event.IconData,
		SourceDeviceID: event.SourceDeviceID,
		CreatedAt:      event.ReceivedAt,
	}
}

func smsView(event models.Ephemeral) models.NotificationView {
	first := event.Notifications[0]

	createdAt := first.TimestampTime()
	if createdAt.IsZero() {
		createdAt = event.ReceivedAt
	}

	icon := first.ImageURL
	if icon == "" {
		icon = models.IconMessage
	}

	return models.NotificationView{
		SourceKind:     models.SourceSMS,
		Header:         "SMS: " + first.Title,
		Body:           first.Body,
		IconRef:        icon,
		SourceDeviceID: event.SourceDeviceID,
		CreatedAt:      createdAt,
	}
}
