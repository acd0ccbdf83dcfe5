package models

import "encoding/json"

// StreamEventKind tags a message received on the realtime event stream.
type StreamEventKind string

const (
	StreamConnect StreamEventKind = "connect"
	StreamError   StreamEventKind = "error"
	StreamTickle  StreamEventKind = "tickle"
	StreamPush    StreamEventKind = "push"
	StreamNop     StreamEventKind = "nop"
)

// TickleSubtypePush signals that the push history changed server-side.
const TickleSubtypePush = "push"

// StreamEvent is a single event of the realtime stream. Connect and error
// events are synthesised by the stream client; the others mirror the
// frames sent by the service.
type StreamEvent struct {
	Kind    StreamEventKind `json:"type"`
	Subtype string          `json:"subtype,omitempty"`
	// Push holds the raw ephemeral payload of a push event. It may be an
	// [EncryptedEnvelope] until decrypted.
	Push json.RawMessage `json:"push,omitempty"`
	// Err is set for [StreamError] events.
	Err error `json:"-"`
}
