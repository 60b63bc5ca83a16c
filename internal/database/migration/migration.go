// Package migration creates the contents and transfers tables on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTables must all exist for the schema to count as migrated.
var sentinelTables = []string{"public.contents", "public.transfers"}

var steps = []migrationStep{
	{
		Name: "create_table_contents",
		SQL: `CREATE TABLE IF NOT EXISTS contents (
  seq        BIGSERIAL   NOT NULL UNIQUE,
  id         TEXT        PRIMARY KEY,
  data       TEXT        NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_sequence_transfers_id",
		SQL:  `CREATE SEQUENCE IF NOT EXISTS transfers_id_seq;`,
	},
	{
		Name: "create_table_transfers",
		SQL: `CREATE TABLE IF NOT EXISTS transfers (
  seq        BIGSERIAL   NOT NULL UNIQUE,
  id         TEXT        PRIMARY KEY,
  document   TEXT        NULL,
  asset      TEXT        NULL,
  contents   TEXT        NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated runs every step unless all sentinel tables already exist.
// Steps are idempotent so a partially applied schema is completed on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	exists, err := schemaExists(ctx, db)
	if err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func schemaExists(ctx context.Context, db *sql.DB) (bool, error) {
	for _, table := range sentinelTables {
		var exists bool
		if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to check sentinel table %s: %w", table, err)
		}
		if !exists {
			return false, nil
		}
	}
	return true, nil
}
