package models

import "time"

// CommandOutcome describes the single transition the command dispatcher
// took for one command push.
type CommandOutcome string

const (
	// CommandIgnored means the push did not carry the command marker.
	CommandIgnored CommandOutcome = "ignored"
	// CommandDenied means the source device is not on the allow-list.
	CommandDenied CommandOutcome = "denied"
	// CommandExecuted means a built-in verb was handed to the executor.
	CommandExecuted CommandOutcome = "executed"
	// CommandSpeak means a spoken-message request was forwarded.
	CommandSpeak CommandOutcome = "speak"
	// CommandVisibility means a module visibility toggle was forwarded.
	CommandVisibility CommandOutcome = "visibility"
	// CommandForwarded means the command was forwarded verbatim.
	CommandForwarded CommandOutcome = "forwarded"
)

// Built-in command verbs, matched after trimming and lower-casing.
const (
	VerbShutdown   = "shutdown"
	VerbDisplayOn  = "display on"
	VerbDisplayOff = "display off"
	VerbPlaySound  = "play sound"
)

// Prefix forms that keep the raw (non-lowercased) suffix.
const (
	PrefixSay        = "say:"
	PrefixHideModule = "hide module:"
	PrefixShowModule = "show module:"
)

// CommandRecord is a journal entry describing a dispatched command.
type CommandRecord struct {
	ID             string         `json:"id"`
	PushID         string         `json:"push_iden"`
	SourceDeviceID string         `json:"source_device_iden"`
	Command        string         `json:"command"`
	Outcome        CommandOutcome `json:"outcome"`
	// Error holds the side-effect failure, if any. It is informational
	// only; command failures are never propagated.
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
