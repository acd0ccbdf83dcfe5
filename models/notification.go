package models

import "time"

// SourceKind identifies where a [NotificationView] came from.
type SourceKind string

const (
	SourcePush   SourceKind = "push"
	SourceMirror SourceKind = "mirror"
	SourceSMS    SourceKind = "sms"
)

// NotificationView is the unified, display-ready notification. It is only
// produced by the merger, never persisted, and recomputed on every merge.
// Body always holds the full original text; truncation is a presentation
// concern.
type NotificationView struct {
	SourceKind SourceKind `json:"source_kind"`
	Header     string     `json:"header"`
	Body       string     `json:"body"`

	// IconRef is a device icon hint for pushes or the base64 icon for
	// mirrored notifications.
	IconRef string `json:"icon_ref,omitempty"`

	// SourceDeviceID lets the presentation layer resolve device icons.
	SourceDeviceID string `json:"source_device_iden,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
