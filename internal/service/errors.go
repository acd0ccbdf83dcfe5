package service

import "errors"

var (
	// ErrDeviceNotFound is returned when a configured device name does not
	// match any cached device nickname.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrUnauthorizedCommand marks a command sent from a device outside the
	// allow-list. It is only ever logged.
	ErrUnauthorizedCommand = errors.New("command source not allowed")

	// ErrMalformedEphemeral marks an ephemeral that cannot be stored, such as
	// an SMS event without nested notifications.
	ErrMalformedEphemeral = errors.New("malformed ephemeral")

	// ErrCommandExecution wraps a failed command side effect.
	ErrCommandExecution = errors.New("command execution failed")

	// ErrEncryptionKeyMissing marks an encrypted ephemeral received while
	// no encryption key is derived.
	ErrEncryptionKeyMissing = errors.New("encrypted ephemeral without encryption key")

	// ErrSessionAlreadyStarted is returned by a second StreamSession.Start.
	ErrSessionAlreadyStarted = errors.New("stream session already started")
)
