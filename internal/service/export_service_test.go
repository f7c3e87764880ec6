package service

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	"github.com/mpcl/league-api/pkg/storage"
)

type exportStoreStub struct {
	jobs map[string]*models.ExportJob
}

func newExportStoreStub() *exportStoreStub {
	return &exportStoreStub{jobs: make(map[string]*models.ExportJob)}
}

func (s *exportStoreStub) Create(ctx context.Context, job *models.ExportJob) error {
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *exportStoreStub) GetByID(ctx context.Context, id string) (*models.ExportJob, error) {
	if job, ok := s.jobs[id]; ok {
		copied := *job
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *exportStoreStub) ListByRequester(ctx context.Context, personID int64) ([]models.ExportJob, error) {
	out := make([]models.ExportJob, 0)
	for _, job := range s.jobs {
		if job.RequestedBy == personID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (s *exportStoreStub) SetStatus(ctx context.Context, id string, status models.ExportStatus) error {
	job, ok := s.jobs[id]
	if !ok {
		return sql.ErrNoRows
	}
	job.Status = status
	return nil
}

func (s *exportStoreStub) MarkCompleted(ctx context.Context, id, filePath string, completedAt time.Time) error {
	job, ok := s.jobs[id]
	if !ok {
		return sql.ErrNoRows
	}
	job.Status = models.ExportStatusCompleted
	job.FilePath = &filePath
	job.CompletedAt = &completedAt
	return nil
}

func (s *exportStoreStub) MarkFailed(ctx context.Context, id, reason string, failedAt time.Time) error {
	job, ok := s.jobs[id]
	if !ok {
		return sql.ErrNoRows
	}
	job.Status = models.ExportStatusFailed
	job.Error = &reason
	job.CompletedAt = &failedAt
	return nil
}

type exportPeopleStub struct{ people []models.PersonSummary }

func (s *exportPeopleStub) List(ctx context.Context) ([]models.PersonSummary, error) {
	return s.people, nil
}

type exportTeamsStub struct{ teams []models.Team }

func (s *exportTeamsStub) List(ctx context.Context) ([]models.Team, error) { return s.teams, nil }

func (s *exportTeamsStub) ListByClub(ctx context.Context, clubID int64) ([]models.Team, error) {
	out := make([]models.Team, 0)
	for _, team := range s.teams {
		if team.Club != nil && *team.Club == clubID {
			out = append(out, team)
		}
	}
	return out, nil
}

func newExportFixture(t *testing.T) (*exportStoreStub, *ExportService) {
	t.Helper()
	store := newExportStoreStub()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("export-secret", time.Hour)

	club := int64(2)
	people := &exportPeopleStub{people: []models.PersonSummary{
		{ID: 42, FirstName: "Asha", LastName: "Patel", Email: "asha@example.com"},
	}}
	p1 := int64(42)
	teams := &exportTeamsStub{teams: []models.Team{{ID: 5, Club: &club, Player1: &p1}}}

	svc := NewExportService(store, people, teams, files, signer, ExportConfig{
		Enabled:     true,
		Concurrency: 1,
	}, nil)
	return store, svc
}

func TestExportServiceCreateValidatesTypeAndFormat(t *testing.T) {
	_, svc := newExportFixture(t)

	_, err := svc.Create(context.Background(), dto.CreateExportRequest{Type: "NONSENSE", Format: "CSV"}, 11)
	require.Error(t, err)

	_, err = svc.Create(context.Background(), dto.CreateExportRequest{Type: "PEOPLE", Format: "XLSX"}, 11)
	require.Error(t, err)
}

func TestExportServiceRendersPeopleCSV(t *testing.T) {
	store, svc := newExportFixture(t)
	svc.Start(context.Background())
	defer svc.Stop()

	job, err := svc.Create(context.Background(), dto.CreateExportRequest{Type: "people", Format: "csv"}, 11)
	require.NoError(t, err)
	require.Equal(t, models.ExportTypePeople, job.Type)

	require.Eventually(t, func() bool {
		stored, err := store.GetByID(context.Background(), job.ID)
		return err == nil && stored.Status == models.ExportStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	token, _, err := svc.DownloadURL(context.Background(), job.ID, 11)
	require.NoError(t, err)

	_, file, err := svc.OpenDownload(token)
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "id,fname,lname"))
	require.Contains(t, string(content), "asha@example.com")
}

func TestExportServiceRosterScopedToClub(t *testing.T) {
	store, svc := newExportFixture(t)
	clubID := int64(2)
	svc.Start(context.Background())
	defer svc.Stop()

	job, err := svc.Create(context.Background(), dto.CreateExportRequest{Type: "ROSTER", Format: "CSV", ClubID: &clubID}, 11)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		stored, err := store.GetByID(context.Background(), job.ID)
		return err == nil && stored.Status == models.ExportStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestExportServiceDownloadGuards(t *testing.T) {
	store, svc := newExportFixture(t)
	store.jobs["queued-job"] = &models.ExportJob{
		ID:          "queued-job",
		Type:        models.ExportTypePeople,
		Format:      models.ExportFormatCSV,
		Status:      models.ExportStatusQueued,
		RequestedBy: 11,
	}

	// Not the requester's job.
	_, err := svc.Get(context.Background(), "queued-job", 99)
	require.Error(t, err)

	// Not completed yet.
	_, _, err = svc.DownloadURL(context.Background(), "queued-job", 11)
	require.Error(t, err)

	// Garbage token.
	_, _, err = svc.OpenDownload("not-a-token")
	require.Error(t, err)
}
