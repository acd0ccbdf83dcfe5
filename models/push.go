package models

import (
	"math"
	"strings"
	"time"
)

// PushType is the kind of a persistent push.
type PushType string

const (
	PushNote PushType = "note"
	PushFile PushType = "file"
	PushLink PushType = "link"
)

// CommandMarker prefixes push bodies that carry a command instead of a
// notification.
const CommandMarker = "mm:"

// Push is a persistent notification record retrieved through the paginated
// history endpoint. It is created server-side and never mutated locally.
type Push struct {
	// Identifier is the push "iden".
	Identifier string `json:"iden"`

	// Type is one of [PushNote], [PushFile] or [PushLink]. Other values are
	// kept as-is and dropped by the filter pipeline.
	Type PushType `json:"type"`

	// SenderName is the display name of the account that sent the push.
	SenderName string `json:"sender_name"`

	// TargetDeviceID is set when the push was sent to a single device.
	// Empty means "sent to all devices".
	TargetDeviceID string `json:"target_device_iden,omitempty"`

	// SourceDeviceID identifies the device the push was sent from.
	SourceDeviceID string `json:"source_device_iden,omitempty"`

	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	URL   string `json:"url,omitempty"`

	// Created is the creation time in (fractional) epoch seconds.
	Created float64 `json:"created"`

	// Active is false once the push was deleted server-side.
	Active bool `json:"active"`

	// Dismissed is true once the push was acknowledged on another device.
	Dismissed bool `json:"dismissed"`

	// FileMeta is flattened from the push JSON; set for [PushFile] pushes.
	*FileMeta
}

// FileMeta describes the attachment of a file push.
type FileMeta struct {
	FileName string `json:"file_name,omitempty"`
	FileType string `json:"file_type,omitempty"`
	FileURL  string `json:"file_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// CreatedAt converts Created into a time.Time.
func (p Push) CreatedAt() time.Time {
	return epochToTime(p.Created)
}

// IsCommand reports whether the push body starts with [CommandMarker].
func (p Push) IsCommand() bool {
	return strings.HasPrefix(p.Body, CommandMarker)
}

func epochToTime(sec float64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}
