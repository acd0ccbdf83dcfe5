// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/store"
	"github.com/MKhiriev/go-push-mirror/models"
)

// runner starts a fire-and-forget effect.
type runner func(effect func())

func goRunner(effect func()) { go effect() }

type commandDispatcher struct {
	registry  DeviceRegistry
	presenter Presenter
	executor  Executor
	journal   store.CommandJournalRepository
	cfg       config.Commands

	run runner
	now func() time.Time

	logger *logger.Logger
}

// NewCommandDispatcher creates a dispatcher that authorizes command pushes
// against cfg.AllowedSourceDevices and routes them to executor or presenter.
// Every outcome is written to journal.
func NewCommandDispatcher(
	registry DeviceRegistry,
	presenter Presenter,
	executor Executor,
	journal store.CommandJournalRepository,
	cfg config.Commands,
	logger *logger.Logger,
) CommandDispatcher {
	return &commandDispatcher{
		registry:  registry,
		presenter: presenter,
		executor:  executor,
		journal:   journal,
		cfg:       cfg,
		run:       goRunner,
		now:       time.Now,
		logger:    logger,
	}
}

func (d *commandDispatcher) Dispatch(ctx context.Context, push models.Push) models.CommandOutcome {
	if !push.IsCommand() {
		return models.CommandIgnored
	}

	if !d.authorized(ctx, push) {
		d.logger.Debug().
			Err(ErrUnauthorizedCommand).
			Str("func", "commandDispatcher.Dispatch").
			Str("source_device_iden", push.SourceDeviceID).
			Msg("command dropped")
		d.record(ctx, push, models.CommandDenied, nil)
		return models.CommandDenied
	}

	raw := strings.TrimSpace(strings.TrimPrefix(push.Body, models.CommandMarker))

	switch strings.ToLower(raw) {
	case models.VerbShutdown:
		d.execute(ctx, push, func(ctx context.Context) error { return d.executor.RunCommand(ctx, d.cfg.Shutdown) })
		return models.CommandExecuted
	case models.VerbDisplayOn:
		d.execute(ctx, push, func(ctx context.Context) error { return d.executor.RunCommand(ctx, d.cfg.DisplayOn) })
		return models.CommandExecuted
	case models.VerbDisplayOff:
		d.execute(ctx, push, func(ctx context.Context) error { return d.executor.RunCommand(ctx, d.cfg.DisplayOff) })
		return models.CommandExecuted
	case models.VerbPlaySound:
		d.execute(ctx, push, d.executor.PlaySound)
		return models.CommandExecuted
	}

	if message, ok := cutPrefixFold(raw, models.PrefixSay); ok {
		d.presenter.OnSpeak(strings.TrimSpace(message))
		d.record(ctx, push, models.CommandSpeak, nil)
		return models.CommandSpeak
	}
	if module, ok := cutPrefixFold(raw, models.PrefixHideModule); ok {
		d.presenter.OnModuleVisibility(strings.TrimSpace(module), false)
		d.record(ctx, push, models.CommandVisibility, nil)
		return models.CommandVisibility
	}
	if module, ok := cutPrefixFold(raw, models.PrefixShowModule); ok {
		d.presenter.OnModuleVisibility(strings.TrimSpace(module), true)
		d.record(ctx, push, models.CommandVisibility, nil)
		return models.CommandVisibility
	}

	d.presenter.OnCommandForwarded(push)
	d.record(ctx, push, models.CommandForwarded, nil)
	return models.CommandForwarded
}

func (d *commandDispatcher) Recent(ctx context.Context, limit int) ([]models.CommandRecord, error) {
	return d.journal.List(ctx, limit)
}

func (d *commandDispatcher) authorized(ctx context.Context, push models.Push) bool {
	if len(d.cfg.AllowedSourceDevices) == 0 {
		return true
	}

	d.registry.EnsureLoaded(ctx)
	return slices.ContainsFunc(d.cfg.AllowedSourceDevices, func(name string) bool {
		deviceID, err := d.registry.Resolve(name)
		return err == nil && deviceID == push.SourceDeviceID
	})
}

// execute runs effect detached from ctx cancellation, bounded by the
// command timeout. The result is logged and journaled only.
func (d *commandDispatcher) execute(ctx context.Context, push models.Push, effect func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)

	d.run(func() {
		effectCtx, cancel := context.WithTimeout(detached, d.cfg.Timeout)
		defer cancel()

		var err error
		if effectErr := effect(effectCtx); effectErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommandExecution, effectErr)
			d.logger.Err(err).
				Str("func", "commandDispatcher.execute").
				Str("command", push.Body).
				Msg("command side effect failed")
		}
		d.record(detached, push, models.CommandExecuted, err)
	})
}

func (d *commandDispatcher) record(ctx context.Context, push models.Push, outcome models.CommandOutcome, cause error) {
	record := models.CommandRecord{
		PushID:         push.Identifier,
		SourceDeviceID: push.SourceDeviceID,
		Command:        push.Body,
		Outcome:        outcome,
		CreatedAt:      d.now().UTC(),
	}
	if cause != nil {
		record.Error = cause.Error()
	}

	if err := d.journal.Save(ctx, record); err != nil {
		d.logger.Warn().
			Err(err).
			Str("func", "commandDispatcher.record").
			Str("outcome", string(outcome)).
			Msg("failed to journal command")
	}
}

// cutPrefixFold is strings.CutPrefix with a case-insensitive prefix match.
// The returned suffix keeps its original case.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
