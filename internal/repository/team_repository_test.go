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
)

func newTeamRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func teamRows(id int64, name string, club int64, player1 interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "club",
		"player1", "player2", "player3", "player4", "player5", "player6", "player7",
		"player8", "player9", "player10", "player11", "sub1", "sub2", "sub3", "sub4",
		"created_at", "updated_at"}).
		AddRow(id, name, club, player1, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
			time.Now(), time.Now())
}

func TestTeamRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newTeamRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, club")).
		WithArgs(int64(5)).
		WillReturnRows(teamRows(5, "First XI", 2, int64(42)))

	team, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, team.Name)
	require.Equal(t, "First XI", *team.Name)
	require.NotNil(t, team.Player1)
	require.Equal(t, int64(42), *team.Player1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryUpsertInsert(t *testing.T) {
	db, mock, cleanup := newTeamRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	name, club, p1 := "First XI", int64(2), int64(42)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teams (name, club, player1) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs(name, club, p1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := repo.Upsert(context.Background(), dto.UpsertTeamRequest{Name: &name, Club: &club, Player1: &p1})
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryUpsertUpdateMissing(t *testing.T) {
	db, mock, cleanup := newTeamRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	id, name := int64(99), "Ghost XI"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE teams SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Upsert(context.Background(), dto.UpsertTeamRequest{ID: &id, Name: &name})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryClearRosterSlotsForClub(t *testing.T) {
	db, mock, cleanup := newTeamRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE teams SET player1 = NULLIF(player1, $1)")).
		WithArgs(int64(42), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.ClearRosterSlotsForClub(context.Background(), 42, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryClearRosterSlotsForTeamID(t *testing.T) {
	db, mock, cleanup := newTeamRepoMock(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("sub4 = NULLIF(sub4, $1) WHERE id = $2")).
		WithArgs(int64(42), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearRosterSlotsForTeamID(context.Background(), 42, 42))
	require.NoError(t, mock.ExpectationsWereMet())
}
