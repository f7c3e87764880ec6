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

func newPersonRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPersonRepositoryUpsertInsert(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	fname, lname, email := "Asha", "Patel", "asha@example.com"
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO people (fname, lname, email) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs(fname, lname, email).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Upsert(context.Background(), dto.UpsertPersonRequest{
		FirstName: &fname, LastName: &lname, Email: &email,
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepositoryUpsertUpdateOnlySuppliedFields(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	id, phone := int64(11), "07000 000000"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE people SET phone = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(phone, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Upsert(context.Background(), dto.UpsertPersonRequest{ID: &id, Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, id, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepositoryUpsertNoFields(t *testing.T) {
	db, _, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	_, err := repo.Upsert(context.Background(), dto.UpsertPersonRequest{})
	require.Error(t, err)
}

func TestPersonRepositoryUpsertPlayer(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	club := int64(4)
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (email) DO UPDATE")).
		WithArgs("Asha", "Patel", "asha@example.com", nil, club, models.RolePlayer).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertPlayer(context.Background(), &models.Person{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "asha@example.com",
		Club:      &club,
		Role:      models.RolePlayer,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	rows := sqlmock.NewRows([]string{"id", "fname", "lname", "email", "phone", "address", "password_hash",
		"role", "club", "team", "league_position", "club_position", "image", "created_at", "updated_at"}).
		AddRow(int64(11), "Asha", "Patel", "asha@example.com", nil, nil, "hash", "player",
			nil, nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM people WHERE email = $1")).
		WithArgs("asha@example.com").
		WillReturnRows(rows)

	person, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(11), person.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepositoryGetSummariesByIDs(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	rows := sqlmock.NewRows([]string{"id", "fname", "lname", "email", "phone", "club", "team",
		"league_position", "club_position", "image"}).
		AddRow(int64(1), "Asha", "Patel", "asha@example.com", nil, nil, nil, nil, nil, nil).
		AddRow(int64(2), "Ben", "Okoro", "ben@example.com", nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM people WHERE id IN")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	people, err := repo.GetSummariesByIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, people, 2)
	require.NoError(t, mock.ExpectationsWereMet())

	people, err = repo.GetSummariesByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, people)
}

func TestPersonRepositoryUpdateClub(t *testing.T) {
	db, mock, cleanup := newPersonRepoMock(t)
	defer cleanup()

	repo := NewPersonRepository(db)
	club := int64(9)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE people SET club = $1")).
		WithArgs(club, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateClub(context.Background(), 42, &club))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE people SET club = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.Error(t, repo.UpdateClub(context.Background(), 99, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
