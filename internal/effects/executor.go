package effects

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
)

// commandRunner runs a shell command line and returns its combined output.
type commandRunner func(ctx context.Context, command string) ([]byte, error)

// waitDelay bounds how long a killed command may keep its output pipes open.
const waitDelay = time.Second

func runShell(ctx context.Context, command string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.WaitDelay = waitDelay
	return cmd.CombinedOutput()
}

// Executor runs shell commands and plays the notification sound.
type Executor struct {
	sound   config.Sound
	limiter *rate.Limiter
	run     commandRunner

	logger *logger.Logger
}

// NewExecutor creates an executor. Sound playback is limited to one play per
// sound.MinInterval; plays inside the interval are skipped, not queued.
func NewExecutor(sound config.Sound, logger *logger.Logger) *Executor {
	limit := rate.Inf
	if sound.MinInterval > 0 {
		limit = rate.Every(sound.MinInterval)
	}

	return &Executor{
		sound:   sound,
		limiter: rate.NewLimiter(limit, 1),
		run:     runShell,
		logger:  logger,
	}
}

// RunCommand executes command with "sh -c". The context bounds the process
// lifetime.
func (e *Executor) RunCommand(ctx context.Context, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return ErrEmptyCommand
	}

	started := time.Now()
	out, err := e.run(ctx, command)
	if err != nil {
		output := strings.TrimSpace(string(out))
		e.logger.Debug().
			Str("func", "Executor.RunCommand").
			Str("command", command).
			Str("output", output).
			Msg("shell command failed")
		return fmt.Errorf("%w: %q: %w", ErrCommandFailed, command, err)
	}

	e.logger.Debug().
		Str("func", "Executor.RunCommand").
		Str("command", command).
		Dur("took", time.Since(started)).
		Msg("shell command finished")
	return nil
}

// PlaySound plays the configured sound file with the configured player. It
// is a no-op when muted, when no file is configured or when the previous
// play is more recent than the minimum interval.
func (e *Executor) PlaySound(ctx context.Context) error {
	if e.sound.Mute || e.sound.File == "" {
		return nil
	}
	if !e.limiter.Allow() {
		e.logger.Debug().Str("func", "Executor.PlaySound").Msg("sound throttled")
		return nil
	}

	return e.RunCommand(ctx, e.sound.Player+" "+shellQuote(e.sound.File))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
