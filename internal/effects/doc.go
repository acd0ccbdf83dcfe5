// Package effects implements the side effects behind built-in commands and
// the notification sound: shell command execution and throttled audio
// playback. Callers treat every result as informational only.
package effects
