package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mpcl/league-api/internal/models"
)

// ExportRepository persists registry export jobs.
type ExportRepository struct {
	db *sqlx.DB
}

// NewExportRepository constructs the repository.
func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

const exportJobColumns = "id, type, format, club_id, status, file_path, error, requested_by, created_at, completed_at"

// Create inserts a freshly queued job.
func (r *ExportRepository) Create(ctx context.Context, job *models.ExportJob) error {
	const query = `INSERT INTO export_jobs (id, type, format, club_id, status, requested_by, created_at)
	VALUES (:id, :type, :format, :club_id, :status, :requested_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create export job: %w", err)
	}
	return nil
}

// GetByID fetches a job.
func (r *ExportRepository) GetByID(ctx context.Context, id string) (*models.ExportJob, error) {
	query := fmt.Sprintf("SELECT %s FROM export_jobs WHERE id = $1", exportJobColumns)
	var job models.ExportJob
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListByRequester returns a person's jobs, newest first.
func (r *ExportRepository) ListByRequester(ctx context.Context, personID int64) ([]models.ExportJob, error) {
	query := fmt.Sprintf("SELECT %s FROM export_jobs WHERE requested_by = $1 ORDER BY created_at DESC", exportJobColumns)
	var jobs []models.ExportJob
	if err := r.db.SelectContext(ctx, &jobs, query, personID); err != nil {
		return nil, fmt.Errorf("list export jobs: %w", err)
	}
	return jobs, nil
}

// SetStatus moves a job between lifecycle states.
func (r *ExportRepository) SetStatus(ctx context.Context, id string, status models.ExportStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE export_jobs SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("set export job status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check export job rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkCompleted records the rendered file and completion time.
func (r *ExportRepository) MarkCompleted(ctx context.Context, id, filePath string, completedAt time.Time) error {
	const query = `UPDATE export_jobs SET status = $1, file_path = $2, completed_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, models.ExportStatusCompleted, filePath, completedAt, id); err != nil {
		return fmt.Errorf("mark export job completed: %w", err)
	}
	return nil
}

// MarkFailed records the failure reason.
func (r *ExportRepository) MarkFailed(ctx context.Context, id, reason string, failedAt time.Time) error {
	const query = `UPDATE export_jobs SET status = $1, error = $2, completed_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, models.ExportStatusFailed, reason, failedAt, id); err != nil {
		return fmt.Errorf("mark export job failed: %w", err)
	}
	return nil
}
