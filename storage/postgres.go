package storage

import (
	"adventbot/internal/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRunJournal struct {
	pool         *pgxpool.Pool
	log          *slog.Logger
	defaultLimit int
}

func NewPostgresRunJournal(pool *pgxpool.Pool, defaultLimit int, log *slog.Logger) *PostgresRunJournal {
	log.Info("Initializing Postgres run journal")
	return &PostgresRunJournal{
		pool:         pool,
		log:          log,
		defaultLimit: defaultLimit,
	}
}
func (db *PostgresRunJournal) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

// SaveRun
func (db *PostgresRunJournal) SaveRun(ctx context.Context, record domain.RunRecord) error {
	const op = "storage.postgres.SaveRun"
	query := `
	INSERT INTO runs (id, trigger, started_at, duration_ms, day, sent, dry_run, item_count, reason, error)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO NOTHING;
	`
	_, err := db.pool.Exec(ctx, query,
		record.ID,
		record.Trigger,
		record.StartedAt,
		record.Duration.Milliseconds(),
		record.Day,
		record.Sent,
		record.DryRun,
		record.Count,
		record.Reason,
		record.Error,
	)
	if err != nil {
		db.log.Error("Failed to insert run", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: failed to insert run: %w", op, err)
	}
	return nil
}

func (db *PostgresRunJournal) ListRuns(ctx context.Context, n int) ([]domain.RunRecord, error) {
	limit := n
	if limit <= 0 {
		limit = db.defaultLimit
	}
	log := db.log.With(slog.Int("limit", limit))
	const op = "storage.postgres.ListRuns"
	log = log.With(slog.String("op", op))
	query := `
	SELECT id, trigger, started_at, duration_ms, day, sent, dry_run, item_count, reason, error
	FROM runs
	ORDER BY started_at DESC
	LIMIT $1;
	`
	rows, err := db.pool.Query(ctx, query, limit)
	if err != nil {
		log.Error("Database query failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RunRecord, error) {
		var rec domain.RunRecord
		var durationMs int64
		err := row.Scan(
			&rec.ID,
			&rec.Trigger,
			&rec.StartedAt,
			&durationMs,
			&rec.Day,
			&rec.Sent,
			&rec.DryRun,
			&rec.Count,
			&rec.Reason,
			&rec.Error,
		)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		return rec, err
	})
	if err != nil {
		log.Error("Failed to collect rows", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
	}
	log.Debug("Successfully retrieved runs", slog.Int("count", len(runs)))
	return runs, nil
}
