package effects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
)

type recordingRunner struct {
	commands []string
	err      error
}

func (r *recordingRunner) run(_ context.Context, command string) ([]byte, error) {
	r.commands = append(r.commands, command)
	return []byte("output"), r.err
}

func newRecordingExecutor(sound config.Sound) (*Executor, *recordingRunner) {
	runner := &recordingRunner{}
	e := NewExecutor(sound, logger.Nop())
	e.run = runner.run
	return e, runner
}

func TestExecutor_RunCommand_Shell(t *testing.T) {
	e := NewExecutor(config.Sound{}, logger.Nop())

	require.NoError(t, e.RunCommand(context.Background(), "true"))

	err := e.RunCommand(context.Background(), "exit 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestExecutor_RunCommand_Timeout(t *testing.T) {
	e := NewExecutor(config.Sound{}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	err := e.RunCommand(ctx, "sleep 5")

	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Less(t, time.Since(started), 4*time.Second)
}

func TestExecutor_RunCommand_Empty(t *testing.T) {
	e, runner := newRecordingExecutor(config.Sound{})

	assert.ErrorIs(t, e.RunCommand(context.Background(), "   "), ErrEmptyCommand)
	assert.Empty(t, runner.commands)
}

func TestExecutor_RunCommand_WrapsRunnerError(t *testing.T) {
	e, runner := newRecordingExecutor(config.Sound{})
	runner.err = errors.New("exit status 1")

	err := e.RunCommand(context.Background(), "vcgencmd display_power 0")

	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.ErrorIs(t, err, runner.err)
	assert.Contains(t, err.Error(), "vcgencmd display_power 0")
}

func TestExecutor_PlaySound(t *testing.T) {
	tests := []struct {
		name  string
		sound config.Sound
		want  []string
	}{
		{
			name:  "plays quoted file",
			sound: config.Sound{File: "/sounds/it's here.mp3", Player: "mpg123 -q"},
			want:  []string{`mpg123 -q '/sounds/it'\''s here.mp3'`},
		},
		{
			name:  "muted",
			sound: config.Sound{Mute: true, File: "/sounds/ding.mp3", Player: "mpg123 -q"},
		},
		{
			name:  "no file",
			sound: config.Sound{Player: "mpg123 -q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, runner := newRecordingExecutor(tt.sound)

			require.NoError(t, e.PlaySound(context.Background()))
			assert.Equal(t, tt.want, runner.commands)
		})
	}
}

func TestExecutor_PlaySound_Throttled(t *testing.T) {
	e, runner := newRecordingExecutor(config.Sound{File: "ding.mp3", Player: "play", MinInterval: time.Hour})

	require.NoError(t, e.PlaySound(context.Background()))
	require.NoError(t, e.PlaySound(context.Background()))
	require.NoError(t, e.PlaySound(context.Background()))

	assert.Len(t, runner.commands, 1)
}

func TestExecutor_PlaySound_NoIntervalNeverThrottles(t *testing.T) {
	e, runner := newRecordingExecutor(config.Sound{File: "ding.mp3", Player: "play"})

	for range 3 {
		require.NoError(t, e.PlaySound(context.Background()))
	}

	assert.Len(t, runner.commands, 3)
}
