package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-push-mirror/models"
)

func mergeFixture() ([]models.Push, []models.Ephemeral) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	pushes := []models.Push{
		notePush("p-old", "Alice", "old note", float64(base.Unix())),
		notePush("p-new", "Bob", "new note", float64(base.Add(3*time.Minute).Unix())),
	}

	chat := mirror("com.chat", "Carol", "lunch?")
	chat.ApplicationName = "Chat"
	chat.IconData = "iVBORw0KGgo="
	chat.ReceivedAt = base.Add(time.Minute)

	sms := models.Ephemeral{
		Kind:        models.EphemeralSMS,
		PackageName: models.SMSPackage,
		Notifications: []models.SMSNotification{
			{Title: "Dave", Body: "on my way", Timestamp: float64(base.Add(2 * time.Minute).Unix())},
			{Title: "Eve", Body: "ignored", Timestamp: float64(base.Add(10 * time.Minute).Unix())},
		},
		ReceivedAt: base.Add(20 * time.Minute),
	}

	return pushes, []models.Ephemeral{chat, sms}
}

func TestMerge_MapsEveryKind(t *testing.T) {
	pushes, ephemerals := mergeFixture()

	views := Merge(pushes, ephemerals)
	require.Len(t, views, 4)

	assert.Equal(t, models.SourcePush, views[0].SourceKind)
	assert.Equal(t, "Bob", views[0].Header)
	assert.Equal(t, "new note", views[0].Body)

	assert.Equal(t, models.SourceSMS, views[1].SourceKind)
	assert.Equal(t, "SMS: Dave", views[1].Header)
	assert.Equal(t, "on my way", views[1].Body)
	assert.Equal(t, models.IconMessage, views[1].IconRef)

	assert.Equal(t, models.SourceMirror, views[2].SourceKind)
	assert.Equal(t, "Chat - Carol", views[2].Header)
	assert.Equal(t, "iVBORw0KGgo=", views[2].IconRef)

	assert.Equal(t, "Alice", views[3].Header)
}

func TestMerge_SortedNewestFirst(t *testing.T) {
	pushes, ephemerals := mergeFixture()

	views := Merge(pushes, ephemerals)
	for i := 1; i < len(views); i++ {
		assert.False(t, views[i-1].CreatedAt.Before(views[i].CreatedAt),
			"entry %d (%s) is older than entry %d (%s)", i-1, views[i-1].CreatedAt, i, views[i].CreatedAt)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	pushes, ephemerals := mergeFixture()

	first := Merge(pushes, ephemerals)
	second := Merge(pushes, ephemerals)

	assert.Equal(t, first, second)
}

func TestMerge_DeduplicatesStructuralCopies(t *testing.T) {
	pushes, ephemerals := mergeFixture()

	doubledPushes := append(append([]models.Push{}, pushes...), pushes...)
	doubledEphemerals := append(append([]models.Ephemeral{}, ephemerals...), ephemerals...)

	assert.Len(t, Merge(doubledPushes, doubledEphemerals), 4)
}

func TestMerge_PreservesFullBody(t *testing.T) {
	long := "a message that is far longer than any configured display limit would ever allow on screen"

	views := Merge([]models.Push{notePush("p1", "Alice", long, 1)}, nil)

	require.Len(t, views, 1)
	assert.Equal(t, long, views[0].Body)
}

func TestMerge_SkipsDismissalsAndEmptySMS(t *testing.T) {
	views := Merge(nil, []models.Ephemeral{
		{Kind: models.EphemeralDismissal, PackageName: "a"},
		{Kind: models.EphemeralSMS, PackageName: models.SMSPackage},
	})

	assert.Empty(t, views)
}

func TestMerge_SMSWithoutTimestampUsesReceivedAt(t *testing.T) {
	received := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	views := Merge(nil, []models.Ephemeral{{
		Kind:          models.EphemeralSMS,
		Notifications: []models.SMSNotification{{Title: "Bob", Body: "hi", ImageURL: "https://img/bob.png"}},
		ReceivedAt:    received,
	}})

	require.Len(t, views, 1)
	assert.Equal(t, received, views[0].CreatedAt)
	assert.Equal(t, "https://img/bob.png", views[0].IconRef)
}
