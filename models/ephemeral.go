package models

import "time"

// EphemeralKind tags the variant carried by an [Ephemeral].
type EphemeralKind string

const (
	// EphemeralMirror is a notification mirrored from an Android device.
	EphemeralMirror EphemeralKind = "mirror"
	// EphemeralSMS is an SMS-changed event carrying the latest SMS threads.
	EphemeralSMS EphemeralKind = "sms_changed"
	// EphemeralDismissal removes a previously mirrored notification.
	EphemeralDismissal EphemeralKind = "dismissal"
)

// SMSPackage is the package marker used for stored SMS entries and carried
// by SMS dismissals, which have no matching notification ids.
const SMSPackage = "sms"

// Ephemeral is a transient, stream-delivered event. It is a tagged union
// over [EphemeralMirror], [EphemeralSMS] and [EphemeralDismissal]; only the
// fields of the active variant are meaningful.
type Ephemeral struct {
	Kind EphemeralKind `json:"type"`

	// mirror
	ApplicationName string `json:"application_name,omitempty"`
	Title           string `json:"title,omitempty"`
	Body            string `json:"body,omitempty"`
	IconData        string `json:"icon,omitempty"`

	// mirror, dismissal
	PackageName     string `json:"package_name,omitempty"`
	NotificationID  string `json:"notification_id,omitempty"`
	NotificationTag string `json:"notification_tag,omitempty"`

	SourceDeviceID string `json:"source_device_iden,omitempty"`

	// sms
	Notifications []SMSNotification `json:"notifications,omitempty"`

	// ReceivedAt is stamped by the ephemeral store at insertion time; the
	// event source does not provide a creation time.
	ReceivedAt time.Time `json:"-"`
}

// SMSNotification is a single SMS thread entry of an SMS-changed event.
type SMSNotification struct {
	ThreadID  string  `json:"thread_id,omitempty"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	ImageURL  string  `json:"image_url,omitempty"`
	Timestamp float64 `json:"timestamp,omitempty"`
}

// TimestampTime converts Timestamp into a time.Time.
func (n SMSNotification) TimestampTime() time.Time {
	return epochToTime(n.Timestamp)
}

// EncryptedEnvelope is the payload of an end-to-end encrypted ephemeral.
type EncryptedEnvelope struct {
	Encrypted  bool   `json:"encrypted"`
	Ciphertext string `json:"ciphertext"`
}
