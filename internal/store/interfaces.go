package store

import (
	"context"

	"github.com/MKhiriev/go-push-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CommandJournalRepository persists the outcome of every dispatched command.
type CommandJournalRepository interface {
	// Save appends record to the journal. An empty ID is replaced with a
	// generated one.
	Save(ctx context.Context, record models.CommandRecord) error

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]models.CommandRecord, error)
}
