package models

import "strings"

// Device represents a Pushbullet device registered on the user's account.
// Devices are immutable once fetched; the registry only refreshes its cache
// when it is empty.
type Device struct {
	// Identifier is the stable device identifier ("iden").
	Identifier string `json:"iden"`

	// DisplayName is the human-readable nickname used in configuration
	// (filter target, command allow-list).
	DisplayName string `json:"nickname"`

	// DeviceClassHint is the icon class reported by the service
	// (e.g. "phone", "desktop", "system").
	DeviceClassHint string `json:"icon"`

	// PlatformHint is the device platform (e.g. "android", "windows").
	PlatformHint string `json:"type"`

	// Active reports whether the device is still registered.
	Active bool `json:"active"`
}

// Icon hints understood by the presentation layer.
const (
	IconPhone   = "phone"
	IconDesktop = "desktop"
	IconWindows = "windows"
	IconSystem  = "system"
	IconMessage = "message"
)

// IconHint maps the device class and platform onto one of the icon hints
// above. Unknown classes fall back to [IconMessage].
func (d Device) IconHint() string {
	switch strings.ToLower(d.DeviceClassHint) {
	case IconPhone:
		return IconPhone
	case IconDesktop:
		if strings.EqualFold(d.PlatformHint, IconWindows) {
			return IconWindows
		}
		return IconDesktop
	case IconSystem:
		return IconSystem
	default:
		return IconMessage
	}
}

// DeviceList is the response envelope of the devices endpoint.
type DeviceList struct {
	Devices []Device `json:"devices"`
	Cursor  string   `json:"cursor,omitempty"`
}

// DeviceOptions controls a device listing request.
type DeviceOptions struct {
	Active bool
	Limit  int
}
