package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

func newClubRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestClubRepositoryCreateApplication(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO club_applications")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))

	id, err := repo.CreateApplication(context.Background(), dto.ClubRegistrationRequest{Name: "Riverside CC"})
	require.NoError(t, err)
	require.Equal(t, int64(6), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryAcceptApplication(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clubs")).
		WithArgs(int64(6), models.ClubApplicationPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(14)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE club_applications SET status = $1")).
		WithArgs(models.ClubApplicationAccepted, int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	clubID, err := repo.AcceptApplication(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, int64(14), clubID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryAcceptApplicationMissingRollsBack(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clubs")).
		WithArgs(int64(99), models.ClubApplicationPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.AcceptApplication(context.Background(), 99)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryRejectApplication(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE club_applications SET status = $1")).
		WithArgs(models.ClubApplicationRejected, int64(6), models.ClubApplicationPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RejectApplication(context.Background(), 6))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE club_applications SET status = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.Error(t, repo.RejectApplication(context.Background(), 6))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryUpsertUpdate(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	id, chairman := int64(14), int64(11)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE clubs SET chairman = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(chairman, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Upsert(context.Background(), dto.UpsertClubRequest{ID: &id, Chairman: &chairman})
	require.NoError(t, err)
	require.Equal(t, id, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryListApplications(t *testing.T) {
	db, mock, cleanup := newClubRepoMock(t)
	defer cleanup()

	repo := NewClubRepository(db)
	rows := sqlmock.NewRows([]string{"id", "name", "primary_club_contact", "primary_position_in_the_club",
		"primary_phone_number", "primary_email", "secondary_club_contact", "secondary_phone_number",
		"secondary_email", "ground_1", "ground_2", "established", "logo", "club_type", "website",
		"status", "created_at", "updated_at"}).
		AddRow(int64(6), "Riverside CC", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
			"pending", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM club_applications WHERE status = $1")).
		WithArgs(models.ClubApplicationPending).
		WillReturnRows(rows)

	applications, err := repo.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, applications, 1)
	require.Equal(t, models.ClubApplicationPending, applications[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
