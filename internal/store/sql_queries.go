package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-push-mirror/models"
)

const commandJournalTable = "command_journal"

var commandJournalColumns = []string{
	"id",
	"push_iden",
	"source_device_iden",
	"command",
	"outcome",
	"error",
	"created_at",
}

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveCommandQuery(record models.CommandRecord) (string, []any, error) {
	return psql.
		Insert(commandJournalTable).
		Columns(commandJournalColumns...).
		Values(
			record.ID,
			record.PushID,
			record.SourceDeviceID,
			record.Command,
			string(record.Outcome),
			record.Error,
			record.CreatedAt,
		).
		ToSql()
}

func buildListCommandsQuery(limit int) (string, []any, error) {
	return psql.
		Select(commandJournalColumns...).
		From(commandJournalTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
