package database

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	chatModels "github.com/beNeighb/backend/internal/chat/model"
	marketplaceModels "github.com/beNeighb/backend/internal/marketplace/model"
	profileModels "github.com/beNeighb/backend/internal/profile/model"
)

// Connect opens a bun handle over pgdriver and verifies the connection.
func Connect(ctx context.Context, dsn string) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type tableSpec struct {
	model       any
	foreignKeys []string
}

// The ownership chain cascades on delete except tasks, which outlive their
// owner (owner_id goes NULL instead).
var tables = []tableSpec{
	{model: (*profileModels.Profile)(nil)},
	{
		model: (*profileModels.Block)(nil),
		foreignKeys: []string{
			`("blocking_profile_id") REFERENCES "profiles" ("id") ON DELETE CASCADE`,
			`("blocked_profile_id") REFERENCES "profiles" ("id") ON DELETE CASCADE`,
		},
	},
	{model: (*marketplaceModels.Service)(nil)},
	{
		model: (*marketplaceModels.Task)(nil),
		foreignKeys: []string{
			`("owner_id") REFERENCES "profiles" ("id") ON DELETE SET NULL`,
			`("service_id") REFERENCES "services" ("id")`,
		},
	},
	{
		model: (*marketplaceModels.Offer)(nil),
		foreignKeys: []string{
			`("task_id") REFERENCES "tasks" ("id") ON DELETE CASCADE`,
			`("helper_id") REFERENCES "profiles" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*marketplaceModels.Assignment)(nil),
		foreignKeys: []string{
			`("offer_id") REFERENCES "offers" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*chatModels.Chat)(nil),
		foreignKeys: []string{
			`("offer_id") REFERENCES "offers" ("id") ON DELETE CASCADE`,
		},
	},
	{
		model: (*chatModels.Message)(nil),
		foreignKeys: []string{
			`("chat_id") REFERENCES "chats" ("id") ON DELETE CASCADE`,
			`("sender_id") REFERENCES "profiles" ("id") ON DELETE CASCADE`,
			`("recipient_id") REFERENCES "profiles" ("id") ON DELETE CASCADE`,
		},
	},
}

var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_block_pair ON blocks (blocking_profile_id, blocked_profile_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_offer_task_helper ON offers (task_id, helper_id)`,
	`CREATE INDEX IF NOT EXISTS idx_message_chat_sent_at ON messages (chat_id, sent_at)`,
}

// CreateSchema creates all tables, foreign keys and indexes. Used by the
// migrate command and by repository tests against a fresh database.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`); err != nil {
		return err
	}

	for _, spec := range tables {
		q := db.NewCreateTable().Model(spec.model).IfNotExists()
		for _, fk := range spec.foreignKeys {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return err
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
