// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWorker appends its lifecycle calls to a shared journal.
type recordingWorker struct {
	name     string
	startErr error
	journal  *[]string
}

func (r *recordingWorker) Start(_ context.Context) error {
	*r.journal = append(*r.journal, "start "+r.name)
	return r.startErr
}

func (r *recordingWorker) Stop() {
	*r.journal = append(*r.journal, "stop "+r.name)
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&recordingWorker{name: "session", journal: &journal},
		&recordingWorker{name: "janitor", journal: &journal},
	)

	require.NoError(t, ws.Start(context.Background()))
	ws.Stop()

	assert.Equal(t, []string{"start session", "start janitor", "stop janitor", "stop session"}, journal)
}

func TestWorkers_StartFailureStopsStarted(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&recordingWorker{name: "a", journal: &journal},
		&recordingWorker{name: "b", journal: &journal, startErr: assert.AnError},
		&recordingWorker{name: "c", journal: &journal},
	)

	err := ws.Start(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"start a", "start b", "stop a"}, journal)
}

func TestWorkers_StopIsIdempotent(t *testing.T) {
	var journal []string
	ws := NewWorkers(&recordingWorker{name: "a", journal: &journal})

	require.NoError(t, ws.Start(context.Background()))
	ws.Stop()
	ws.Stop()

	assert.Equal(t, []string{"start a", "stop a"}, journal)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NoError(t, ws.Start(context.Background()))
	assert.NotPanics(t, ws.Stop)
}

// finishingWorker ends on its own once finish is closed.
type finishingWorker struct {
	recordingWorker
	finish chan struct{}
}

func (f *finishingWorker) Done() <-chan struct{} { return f.finish }

func TestWorkers_DoneWhenWorkerFinishes(t *testing.T) {
	var journal []string
	session := &finishingWorker{
		recordingWorker: recordingWorker{name: "session", journal: &journal},
		finish:          make(chan struct{}),
	}
	ws := NewWorkers(session, &recordingWorker{name: "janitor", journal: &journal})

	require.NoError(t, ws.Start(context.Background()))

	select {
	case <-ws.Done():
		t.Fatal("done before any worker finished")
	default:
	}

	close(session.finish)

	select {
	case <-ws.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("done was not closed")
	}
	ws.Stop()
}

func TestWorkers_DoneStaysOpenAfterStop(t *testing.T) {
	var journal []string
	session := &finishingWorker{
		recordingWorker: recordingWorker{name: "session", journal: &journal},
		finish:          make(chan struct{}),
	}
	ws := NewWorkers(session)

	require.NoError(t, ws.Start(context.Background()))
	ws.Stop()
	close(session.finish)

	assert.Never(t, func() bool {
		select {
		case <-ws.Done():
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)
}
