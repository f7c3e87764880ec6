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

func newApplicationRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestApplicationRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	club := int64(4)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO player_applications")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.CreateApplication(context.Background(), dto.PlayerRegistrationRequest{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "asha@example.com",
		ClubID:    &club,
		Terms:     true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)

	rows := sqlmock.NewRows([]string{"id", "fname", "lname", "date_of_birth", "email", "phone_number",
		"address", "club", "signature", "terms", "club_appr", "league_appr", "status", "created_at"}).
		AddRow(int64(7), "Asha", "Patel", nil, "asha@example.com", nil, nil, club, nil, true, nil, nil, "pending", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fname, lname")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.GetApplication(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), found.ID)
	require.Nil(t, found.ClubApproval)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositorySetApplicationDecision(t *testing.T) {
	db, mock, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE player_applications SET club_appr = $1 WHERE id = $2 RETURNING club_appr, league_appr")).
		WithArgs("1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"club_appr", "league_appr"}).AddRow("1", nil))

	flags, err := repo.SetApplicationDecision(context.Background(), 7, models.PartyClub, models.DecisionApprove)
	require.NoError(t, err)
	require.False(t, flags.BothApproved())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE player_applications SET league_appr = $1 WHERE id = $2 RETURNING club_appr, league_appr")).
		WithArgs("1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"club_appr", "league_appr"}).AddRow("1", "1"))

	flags, err = repo.SetApplicationDecision(context.Background(), 7, models.PartyLeague, models.DecisionApprove)
	require.NoError(t, err)
	require.True(t, flags.BothApproved())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositorySetApplicationDecisionRejectsForeignParty(t *testing.T) {
	db, _, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	_, err := repo.SetApplicationDecision(context.Background(), 7, models.PartyFromClub, models.DecisionApprove)
	require.Error(t, err)
}

func TestApplicationRepositorySetTransferDecision(t *testing.T) {
	db, mock, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE player_transfers SET to_club_appr = $1 WHERE id = $2 RETURNING from_club_appr, to_club_appr")).
		WithArgs("0", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"from_club_appr", "to_club_appr"}).AddRow("1", "0"))

	flags, err := repo.SetTransferDecision(context.Background(), 3, models.PartyToClub, models.DecisionReject)
	require.NoError(t, err)
	require.False(t, flags.BothApproved())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateTransfer(t *testing.T) {
	db, mock, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	from, to := int64(2), int64(9)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO player_transfers")).
		WithArgs(int64(42), from, to, nil, nil, true, models.ApplicationPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.CreateTransfer(context.Background(), dto.PlayerTransferRequest{
		PlayerID:   42,
		FromClubID: &from,
		ToClubID:   &to,
		Terms:      true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newApplicationRepoMock(t)
	defer cleanup()

	repo := NewApplicationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM player_applications")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.Error(t, repo.DeleteApplication(context.Background(), 99))
	require.NoError(t, mock.ExpectationsWereMet())
}
