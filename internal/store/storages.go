package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/utils"
)

// Storages groups the storage repositories used by the service layer.
type Storages struct {
	// CommandJournal is the SQLite-backed command journal.
	CommandJournal CommandJournalRepository

	db *DB
}

// NewStorages opens the SQLite database at cfg.DB.DSN (creating the file if
// needed), applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CommandJournal: NewCommandJournalRepository(db, utils.NewUUIDGenerator(), logger),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
