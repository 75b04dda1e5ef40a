package postgres

import (
	"context"

	"tablebook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The exclusion constraint on reservations is the storage-level guard the
// scan-and-check flow lacks: two concurrent bookings for the same table,
// date and overlapping slot cannot both commit.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE IF NOT EXISTS tables (
		id        INTEGER PRIMARY KEY,
		number    INTEGER NOT NULL UNIQUE,
		places    INTEGER NOT NULL,
		is_vip    BOOLEAN NOT NULL DEFAULT FALSE,
		min_order INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id           UUID PRIMARY KEY,
		table_number INTEGER NOT NULL,
		client_name  TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		date         DATE NOT NULL,
		slot_start   INTEGER NOT NULL,
		slot_end     INTEGER NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT reservations_no_overlap EXCLUDE USING gist (
			table_number WITH =,
			date WITH =,
			int4range(slot_start, slot_end) WITH &&
		)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name    TEXT NOT NULL DEFAULT '',
		last_name     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "migration failed")
		}
	}
	return nil
}
