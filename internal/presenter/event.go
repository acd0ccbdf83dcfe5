package presenter

import "github.com/MKhiriev/go-push-mirror/models"

// EventKind tags an [Event].
type EventKind string

const (
	EventDevices          EventKind = "devices"
	EventNotifications    EventKind = "notifications"
	EventFile             EventKind = "file"
	EventCommand          EventKind = "command"
	EventSpeak            EventKind = "speak"
	EventModuleVisibility EventKind = "module_visibility"
)

// Event is one presentation update. Only the fields of its kind are set.
type Event struct {
	Kind EventKind `json:"type"`

	Devices       []models.Device           `json:"devices,omitempty"`
	Notifications []models.NotificationView `json:"notifications,omitempty"`
	Push          *models.Push              `json:"push,omitempty"`
	Text          string                    `json:"text,omitempty"`
	Module        string                    `json:"module,omitempty"`
	Visible       *bool                     `json:"visible,omitempty"`
}
