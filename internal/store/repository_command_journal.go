// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

type idGenerator interface {
	Generate() string
}

type commandJournalRepository struct {
	*DB
	ids    idGenerator
	logger *logger.Logger
}

// NewCommandJournalRepository returns a [CommandJournalRepository] backed by
// the command_journal table.
func NewCommandJournalRepository(db *DB, ids idGenerator, logger *logger.Logger) CommandJournalRepository {
	return &commandJournalRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

func (c *commandJournalRepository) Save(ctx context.Context, record models.CommandRecord) error {
	log := logger.FromContext(ctx)

	if record.ID == "" {
		record.ID = c.ids.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildSaveCommandQuery(record)
	if err != nil {
		log.Err(err).Str("func", "commandJournalRepository.Save").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "commandJournalRepository.Save").
			Str("push_iden", record.PushID).
			Msg("failed to insert command record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommandNotSaved
	}

	return nil
}

func (c *commandJournalRepository) List(ctx context.Context, limit int) ([]models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.CommandRecord{}, nil
	}

	query, args, err := buildListCommandsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "commandJournalRepository.List").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "commandJournalRepository.List").Msg("failed to query command journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CommandRecord, 0, limit)
	for rows.Next() {
		var (
			record  models.CommandRecord
			outcome string
		)
		if err = rows.Scan(
			&record.ID,
			&record.PushID,
			&record.SourceDeviceID,
			&record.Command,
			&outcome,
			&record.Error,
			&record.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "commandJournalRepository.List").Msg("failed to scan command row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.Outcome = models.CommandOutcome(outcome)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
