package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
	"github.com/mpcl/league-api/pkg/export"
	"github.com/mpcl/league-api/pkg/jobs"
	"github.com/mpcl/league-api/pkg/storage"
)

type exportJobStore interface {
	Create(ctx context.Context, job *models.ExportJob) error
	GetByID(ctx context.Context, id string) (*models.ExportJob, error)
	ListByRequester(ctx context.Context, personID int64) ([]models.ExportJob, error)
	SetStatus(ctx context.Context, id string, status models.ExportStatus) error
	MarkCompleted(ctx context.Context, id, filePath string, completedAt time.Time) error
	MarkFailed(ctx context.Context, id, reason string, failedAt time.Time) error
}

type exportPeopleSource interface {
	List(ctx context.Context) ([]models.PersonSummary, error)
}

type exportTeamSource interface {
	List(ctx context.Context) ([]models.Team, error)
	ListByClub(ctx context.Context, clubID int64) ([]models.Team, error)
}

// ExportConfig tunes the export worker pool.
type ExportConfig struct {
	Enabled     bool
	Concurrency int
	Retries     int
}

// ExportService renders registry exports in the background. Jobs are queued,
// picked up by the worker pool, rendered to CSV or PDF, stored on disk and
// served back through signed download tokens.
type ExportService struct {
	store   exportJobStore
	people  exportPeopleSource
	teams   exportTeamSource
	storage *storage.LocalStorage
	signer  *storage.SignedURLSigner
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	queue   *jobs.Queue
	logger  *zap.Logger
	enabled bool
}

// NewExportService constructs the service and its worker queue.
func NewExportService(store exportJobStore, people exportPeopleSource, teams exportTeamSource, files *storage.LocalStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ExportService{
		store:   store,
		people:  people,
		teams:   teams,
		storage: files,
		signer:  signer,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		enabled: cfg.Enabled,
	}
	s.queue = jobs.NewQueue("exports", s.process, jobs.QueueConfig{
		Workers:    cfg.Concurrency,
		MaxRetries: cfg.Retries,
		Logger:     logger,
	})
	return s
}

// Start launches the worker pool.
func (s *ExportService) Start(ctx context.Context) {
	if s.enabled {
		s.queue.Start(ctx)
	}
}

// Stop drains the worker pool.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// Create queues a new export job for the requesting person.
func (s *ExportService) Create(ctx context.Context, req dto.CreateExportRequest, requestedBy int64) (*models.ExportJob, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrValidation, "exports are disabled")
	}

	exportType := models.ExportType(strings.ToUpper(req.Type))
	if exportType != models.ExportTypePeople && exportType != models.ExportTypeRoster {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export type")
	}
	format := models.ExportFormat(strings.ToUpper(req.Format))
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export format")
	}

	job := &models.ExportJob{
		ID:          uuid.NewString(),
		Type:        exportType,
		Format:      format,
		ClubID:      req.ClubID,
		Status:      models.ExportStatusQueued,
		RequestedBy: requestedBy,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue export")
	}

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: string(job.Type)}); err != nil {
		s.logger.Error("failed to enqueue export", zap.String("export_id", job.ID), zap.Error(err))
		if markErr := s.store.MarkFailed(ctx, job.ID, "queue unavailable", time.Now().UTC()); markErr != nil {
			s.logger.Warn("failed to mark export failed", zap.Error(markErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue export")
	}
	return job, nil
}

// Get returns one of the requester's jobs.
func (s *ExportService) Get(ctx context.Context, id string, requestedBy int64) (*models.ExportJob, error) {
	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export")
	}
	if job.RequestedBy != requestedBy {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "export belongs to another person")
	}
	return job, nil
}

// List returns the requester's jobs, newest first.
func (s *ExportService) List(ctx context.Context, requestedBy int64) ([]models.ExportJob, error) {
	jobsList, err := s.store.ListByRequester(ctx, requestedBy)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exports")
	}
	return jobsList, nil
}

// DownloadURL issues a signed token for a completed job's artifact.
func (s *ExportService) DownloadURL(ctx context.Context, id string, requestedBy int64) (string, time.Time, error) {
	job, err := s.Get(ctx, id, requestedBy)
	if err != nil {
		return "", time.Time{}, err
	}
	if job.Status != models.ExportStatusCompleted || job.FilePath == nil {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrConflict, "export is not ready")
	}

	token, expiresAt, err := s.signer.Generate(job.ID, *job.FilePath)
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download")
	}
	return token, expiresAt, nil
}

// OpenDownload validates a signed token and opens the stored artifact.
func (s *ExportService) OpenDownload(token string) (string, *os.File, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}

	file, err := s.storage.Open(relPath)
	if err != nil {
		return "", nil, appErrors.Clone(appErrors.ErrNotFound, "export artifact no longer available")
	}
	return relPath, file, nil
}

func (s *ExportService) process(ctx context.Context, queued jobs.Job) error {
	job, err := s.store.GetByID(ctx, queued.ID)
	if err != nil {
		return fmt.Errorf("load export job %s: %w", queued.ID, err)
	}

	if err := s.store.SetStatus(ctx, job.ID, models.ExportStatusRunning); err != nil {
		return fmt.Errorf("mark export running: %w", err)
	}

	data, title, err := s.buildDataset(ctx, job)
	if err != nil {
		return s.fail(ctx, job.ID, err)
	}

	var rendered []byte
	var extension string
	switch job.Format {
	case models.ExportFormatPDF:
		rendered, err = s.pdf.Render(data, title)
		extension = "pdf"
	default:
		rendered, err = s.csv.Render(data)
		extension = "csv"
	}
	if err != nil {
		return s.fail(ctx, job.ID, err)
	}

	filename := fmt.Sprintf("%s/%s.%s", strings.ToLower(string(job.Type)), job.ID, extension)
	stored, err := s.storage.Save(filename, rendered)
	if err != nil {
		return s.fail(ctx, job.ID, err)
	}

	if err := s.store.MarkCompleted(ctx, job.ID, stored, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark export completed: %w", err)
	}

	s.logger.Info("export rendered",
		zap.String("export_id", job.ID),
		zap.String("type", string(job.Type)),
		zap.String("format", string(job.Format)))
	return nil
}

func (s *ExportService) fail(ctx context.Context, id string, cause error) error {
	if err := s.store.MarkFailed(ctx, id, cause.Error(), time.Now().UTC()); err != nil {
		s.logger.Warn("failed to mark export failed", zap.String("export_id", id), zap.Error(err))
	}
	return cause
}

func (s *ExportService) buildDataset(ctx context.Context, job *models.ExportJob) (export.Dataset, string, error) {
	switch job.Type {
	case models.ExportTypeRoster:
		return s.buildRosterDataset(ctx, job.ClubID)
	default:
		return s.buildPeopleDataset(ctx)
	}
}

func (s *ExportService) buildPeopleDataset(ctx context.Context) (export.Dataset, string, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return export.Dataset{}, "", fmt.Errorf("load people: %w", err)
	}

	headers := []string{"id", "fname", "lname", "email", "phone", "club", "league_position", "club_position"}
	rows := make([]map[string]string, 0, len(people))
	for _, person := range people {
		rows = append(rows, map[string]string{
			"id":              strconv.FormatInt(person.ID, 10),
			"fname":           person.FirstName,
			"lname":           person.LastName,
			"email":           person.Email,
			"phone":           stringOrEmpty(person.Phone),
			"club":            int64OrEmpty(person.Club),
			"league_position": stringOrEmpty(person.LeaguePosition),
			"club_position":   stringOrEmpty(person.ClubPosition),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}, "League People Registry", nil
}

func (s *ExportService) buildRosterDataset(ctx context.Context, clubID *int64) (export.Dataset, string, error) {
	var teams []models.Team
	var err error
	if clubID != nil {
		teams, err = s.teams.ListByClub(ctx, *clubID)
	} else {
		teams, err = s.teams.List(ctx)
	}
	if err != nil {
		return export.Dataset{}, "", fmt.Errorf("load teams: %w", err)
	}

	headers := append([]string{"team_id", "team", "club"}, models.RosterSlotColumns...)
	rows := make([]map[string]string, 0, len(teams))
	for i := range teams {
		team := &teams[i]
		row := map[string]string{
			"team_id": strconv.FormatInt(team.ID, 10),
			"team":    stringOrEmpty(team.Name),
			"club":    int64OrEmpty(team.Club),
		}
		for slot, value := range team.RosterSlots() {
			row[models.RosterSlotColumns[slot]] = int64OrEmpty(value)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}, "Team Rosters", nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func int64OrEmpty(value *int64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatInt(*value, 10)
}
