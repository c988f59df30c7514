// Package repo contains all database access logic for the travelops backend.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StudyRepo defines the persistence operations for study progress.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// The contract mirrors the remote spreadsheet store the original feature
// used: read a counter, overwrite it, append a report. Each call stands
// alone — there is no transaction spanning progress and reports, so updates
// are at-least-once from the caller's perspective.
type StudyRepo interface {
	// Progress returns the current word index. A database with no progress
	// row yet reports index 0, not an error.
	Progress(ctx context.Context) (int, error)

	// SetProgress overwrites the current word index.
	SetProgress(ctx context.Context, index int) error

	// AddReport appends one study answer and returns the persisted record
	// (with DB-generated id and created_at populated).
	AddReport(ctx context.Context, report domain.WordReport) (domain.WordReport, error)
}

// pgStudyRepo is the Postgres implementation of StudyRepo.
type pgStudyRepo struct {
	db db
}

// NewStudyRepo constructs a StudyRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStudyRepo(db db) StudyRepo {
	return &pgStudyRepo{db: db}
}

// Progress reads the single-row progress counter.
func (r *pgStudyRepo) Progress(ctx context.Context) (int, error) {
	const q = `SELECT current_index FROM study_progress WHERE id = 1`

	var index int
	err := r.db.QueryRow(ctx, q).Scan(&index)
	if errors.Is(err, pgx.ErrNoRows) {
		// Fresh database: the learner starts at the top of the list.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("repo.StudyRepo.Progress: %w", err)
	}
	return index, nil
}

// SetProgress upserts the single-row progress counter.
func (r *pgStudyRepo) SetProgress(ctx context.Context, index int) error {
	const q = `
		INSERT INTO study_progress (id, current_index)
		VALUES (1, @index)
		ON CONFLICT (id) DO UPDATE SET current_index = @index, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"index": index}); err != nil {
		return fmt.Errorf("repo.StudyRepo.SetProgress: %w", err)
	}
	return nil
}

// AddReport inserts one study answer and returns the full persisted record.
func (r *pgStudyRepo) AddReport(ctx context.Context, report domain.WordReport) (domain.WordReport, error) {
	const q = `
		INSERT INTO word_reports (word_id, status)
		VALUES (@word_id, @status)
		RETURNING id, word_id, status, created_at`

	args := pgx.NamedArgs{
		"word_id": report.WordID,
		"status":  report.Status,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReport(row)
	if err != nil {
		return domain.WordReport{}, fmt.Errorf("repo.StudyRepo.AddReport: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReport maps a single database row into a domain.WordReport.
func scanReport(s scanner) (domain.WordReport, error) {
	var (
		rep domain.WordReport
		id  pgtype.UUID
	)

	if err := s.Scan(&id, &rep.WordID, &rep.Status, &rep.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WordReport{}, domain.ErrNotFound
		}
		return domain.WordReport{}, err
	}

	rep.ID = uuid.UUID(id.Bytes)
	return rep, nil
}
