// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/crypto"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

type streamSession struct {
	pushAdapter   adapter.PushAdapter
	streamAdapter adapter.StreamAdapter
	keyChain      crypto.KeyChain
	fetcher       HistoryFetcher
	ephemerals    EphemeralStore
	feed          Feed
	executor      Executor
	cfg           *config.StructuredConfig

	run runner

	mu        sync.Mutex
	started   bool
	state     SessionState
	newestID  string
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

// NewStreamSession creates a disconnected session. Events are processed
// one at a time on the goroutine started by Start.
func NewStreamSession(
	pushAdapter adapter.PushAdapter,
	streamAdapter adapter.StreamAdapter,
	keyChain crypto.KeyChain,
	fetcher HistoryFetcher,
	ephemerals EphemeralStore,
	feed Feed,
	executor Executor,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) StreamSession {
	return &streamSession{
		pushAdapter:   pushAdapter,
		streamAdapter: streamAdapter,
		keyChain:      keyChain,
		fetcher:       fetcher,
		ephemerals:    ephemerals,
		feed:          feed,
		executor:      executor,
		cfg:           cfg,
		run:           goRunner,
		state:         SessionDisconnected,
		done:          make(chan struct{}),
		logger:        logger,
	}
}

func (s *streamSession) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrSessionAlreadyStarted
	}
	s.started = true
	s.state = SessionConnecting
	s.mu.Unlock()

	if s.cfg.Adapter.EncryptionPassword != "" {
		s.enableEncryption(ctx)
	}

	if !s.cfg.Display.SkipInitialLoad && !s.cfg.Features.DisablePushes {
		s.refresh(ctx, true)
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	events, err := s.streamAdapter.OpenStream(sessionCtx)
	if err != nil {
		cancel()
		s.mu.Lock()
		s.started = false
		s.state = SessionDisconnected
		s.mu.Unlock()
		s.logger.Err(err).Str("func", "streamSession.Start").Msg("failed to open event stream")
		return fmt.Errorf("open event stream: %w", err)
	}

	s.mu.Lock()
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.closeOnce.Do(func() { close(s.done) })

		for event := range events {
			s.handle(sessionCtx, event)
		}

		s.setState(SessionDisconnected)
		s.logger.Info().Str("func", "streamSession.Start").Msg("event stream closed")
	}()

	return nil
}

// Stop cancels the stream and blocks until the event loop has exited. Safe
// to call when the session is not running.
func (s *streamSession) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *streamSession) Done() <-chan struct{} {
	return s.done
}

func (s *streamSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *streamSession) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *streamSession) handle(ctx context.Context, event models.StreamEvent) {
	switch event.Kind {
	case models.StreamConnect:
		s.setState(SessionConnected)
		s.logger.Info().Str("func", "streamSession.handle").Msg("event stream connected")
	case models.StreamError:
		s.setState(SessionError)
		s.logger.Err(event.Err).Str("func", "streamSession.handle").Msg("event stream failed")
	case models.StreamTickle:
		if event.Subtype == models.TickleSubtypePush && !s.cfg.Features.DisablePushes {
			s.refresh(ctx, false)
		}
	case models.StreamPush:
		s.handleEphemeral(ctx, event.Push)
	case models.StreamNop:
	}
}

// refresh reloads the push history into the feed. A changed newest push
// outside the initialization load triggers the notification sound. A failed
// fetch leaves the feed untouched until the next tickle.
func (s *streamSession) refresh(ctx context.Context, initial bool) {
	result := s.fetcher.FetchFiltered(ctx, initial)
	if result.CommandHandled {
		return
	}
	if result.Failed {
		s.logger.Warn().Str("func", "streamSession.refresh").Msg("history unavailable, keeping displayed pushes")
		return
	}

	var newest string
	if len(result.Pushes) > 0 {
		newest = result.Pushes[0].Identifier
	}

	s.mu.Lock()
	changed := newest != "" && newest != s.newestID
	s.newestID = newest
	s.mu.Unlock()

	s.feed.SetPushes(result.Pushes)

	if changed && !initial {
		s.notify(ctx)
	}
}

func (s *streamSession) handleEphemeral(ctx context.Context, raw json.RawMessage) {
	payload, err := s.open(raw)
	if errors.Is(err, ErrEncryptionKeyMissing) {
		s.logger.Warn().
			Str("func", "streamSession.handleEphemeral").
			Msg("encrypted ephemeral dropped, set ADAPTER_ENCRYPTION_PASSWORD to read it")
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "streamSession.handleEphemeral").Msg("ephemeral dropped")
		return
	}

	var event models.Ephemeral
	if err = json.Unmarshal(payload, &event); err != nil {
		s.logger.Warn().Err(err).Str("func", "streamSession.handleEphemeral").Msg("failed to decode ephemeral")
		return
	}

	switch event.Kind {
	case models.EphemeralMirror:
		if s.cfg.Features.DisableMirrors {
			return
		}
		s.ephemerals.Add(event)
		s.feed.Refresh()
		s.notify(ctx)
	case models.EphemeralSMS:
		if s.cfg.Features.DisableSMS {
			return
		}
		event, err = normalizeSMS(event)
		if err != nil {
			s.logger.Debug().Err(err).Str("func", "streamSession.handleEphemeral").Msg("sms event discarded")
			return
		}
		s.ephemerals.Add(event)
		s.feed.Refresh()
		s.notify(ctx)
	case models.EphemeralDismissal:
		if s.ephemerals.Remove(event) > 0 {
			s.feed.Refresh()
		}
	default:
		s.logger.Debug().
			Str("func", "streamSession.handleEphemeral").
			Str("type", string(event.Kind)).
			Msg("ignoring ephemeral")
	}
}

// open unwraps an end-to-end encrypted envelope. Plain payloads are
// returned unchanged.
func (s *streamSession) open(raw json.RawMessage) ([]byte, error) {
	var envelope models.EncryptedEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEphemeral, err)
	}
	if !envelope.Encrypted {
		return raw, nil
	}
	if !s.keyChain.Enabled() {
		return nil, ErrEncryptionKeyMissing
	}

	plaintext, err := s.keyChain.Decrypt(envelope.Ciphertext)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

func (s *streamSession) enableEncryption(ctx context.Context) {
	user, err := s.pushAdapter.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "streamSession.enableEncryption").
			Msg("encrypted ephemerals will be dropped")
		return
	}

	s.keyChain.DeriveKey(s.cfg.Adapter.EncryptionPassword, user.Identifier)
	s.logger.Info().Str("func", "streamSession.enableEncryption").Msg("end-to-end encryption enabled")
}

// notify plays the notification sound as a fire-and-forget effect.
func (s *streamSession) notify(ctx context.Context) {
	detached := context.WithoutCancel(ctx)

	s.run(func() {
		soundCtx, cancel := context.WithTimeout(detached, s.cfg.Commands.Timeout)
		defer cancel()

		if err := s.executor.PlaySound(soundCtx); err != nil {
			s.logger.Warn().Err(err).Str("func", "streamSession.notify").Msg("failed to play sound")
		}
	})
}

// normalizeSMS stores an SMS event under the SMS package marker with the
// title and body of its first thread entry.
func normalizeSMS(event models.Ephemeral) (models.Ephemeral, error) {
	if len(event.Notifications) == 0 {
		return models.Ephemeral{}, fmt.Errorf("%w: sms event without notifications", ErrMalformedEphemeral)
	}

	first := event.Notifications[0]
	event.PackageName = models.SMSPackage
	event.Title = first.Title
	event.Body = first.Body

	return event, nil
}
