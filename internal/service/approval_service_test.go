package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

type approvalStoreStub struct {
	applications map[int64]*models.PlayerApplication
	transfers    map[int64]*models.PlayerTransfer
}

func newApprovalStoreStub() *approvalStoreStub {
	return &approvalStoreStub{
		applications: make(map[int64]*models.PlayerApplication),
		transfers:    make(map[int64]*models.PlayerTransfer),
	}
}

func (s *approvalStoreStub) GetApplication(ctx context.Context, id int64) (*models.PlayerApplication, error) {
	if application, ok := s.applications[id]; ok {
		copied := *application
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *approvalStoreStub) SetApplicationDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.ApplicationFlags, error) {
	application, ok := s.applications[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	value := decision.FlagValue()
	if party == models.PartyClub {
		application.ClubApproval = &value
	} else {
		application.LeagueApproval = &value
	}
	return &models.ApplicationFlags{
		ClubApproval:   application.ClubApproval,
		LeagueApproval: application.LeagueApproval,
	}, nil
}

func (s *approvalStoreStub) GetTransfer(ctx context.Context, id int64) (*models.PlayerTransfer, error) {
	if transfer, ok := s.transfers[id]; ok {
		copied := *transfer
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *approvalStoreStub) SetTransferDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.TransferFlags, error) {
	transfer, ok := s.transfers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	value := decision.FlagValue()
	if party == models.PartyFromClub {
		transfer.FromClubApproval = &value
	} else {
		transfer.ToClubApproval = &value
	}
	return &models.TransferFlags{
		FromClubApproval: transfer.FromClubApproval,
		ToClubApproval:   transfer.ToClubApproval,
	}, nil
}

type approvalPeopleStub struct {
	people   map[int64]*models.Person
	upserted []models.Person
	clubs    map[int64]*int64
}

func newApprovalPeopleStub() *approvalPeopleStub {
	return &approvalPeopleStub{
		people: make(map[int64]*models.Person),
		clubs:  make(map[int64]*int64),
	}
}

func (s *approvalPeopleStub) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	if person, ok := s.people[id]; ok {
		copied := *person
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *approvalPeopleStub) UpsertPlayer(ctx context.Context, person *models.Person) error {
	s.upserted = append(s.upserted, *person)
	return nil
}

func (s *approvalPeopleStub) UpdateClub(ctx context.Context, personID int64, club *int64) error {
	if _, ok := s.people[personID]; !ok {
		return sql.ErrNoRows
	}
	s.people[personID].Club = club
	s.clubs[personID] = club
	return nil
}

type approvalTeamsStub struct {
	clubCalls [][2]int64
	teamCalls [][2]int64
}

func (s *approvalTeamsStub) ClearRosterSlotsForClub(ctx context.Context, playerID, clubID int64) error {
	s.clubCalls = append(s.clubCalls, [2]int64{playerID, clubID})
	return nil
}

func (s *approvalTeamsStub) ClearRosterSlotsForTeamID(ctx context.Context, playerID, teamID int64) error {
	s.teamCalls = append(s.teamCalls, [2]int64{playerID, teamID})
	return nil
}

func newApprovalFixture() (*approvalStoreStub, *approvalPeopleStub, *approvalTeamsStub, *ApprovalService) {
	store := newApprovalStoreStub()
	people := newApprovalPeopleStub()
	teams := &approvalTeamsStub{}
	svc := NewApprovalService(store, people, teams, nil, nil, nil)
	return store, people, teams, svc
}

func TestDecideApplicationFirstApprovalDoesNotFinalize(t *testing.T) {
	store, people, _, svc := newApprovalFixture()
	club := int64(4)
	store.applications[7] = &models.PlayerApplication{
		ID: 7, FirstName: "Asha", LastName: "Patel", Email: "asha@example.com", Club: &club,
		Status: models.ApplicationPending,
	}

	application, err := svc.DecideApplication(context.Background(), 7, models.PartyClub, models.DecisionApprove)
	require.NoError(t, err)
	require.NotNil(t, application.ClubApproval)
	require.Equal(t, models.FlagApproved, *application.ClubApproval)
	require.Nil(t, application.LeagueApproval)
	require.Empty(t, people.upserted)
}

func TestDecideApplicationSecondApprovalFinalizes(t *testing.T) {
	store, people, _, svc := newApprovalFixture()
	club := int64(4)
	approved := models.FlagApproved
	store.applications[7] = &models.PlayerApplication{
		ID: 7, FirstName: "Asha", LastName: "Patel", Email: "asha@example.com", Club: &club,
		ClubApproval: &approved,
	}

	_, err := svc.DecideApplication(context.Background(), 7, models.PartyLeague, models.DecisionApprove)
	require.NoError(t, err)
	require.Len(t, people.upserted, 1)
	registered := people.upserted[0]
	require.Equal(t, "asha@example.com", registered.Email)
	require.Equal(t, models.RolePlayer, registered.Role)
	require.Equal(t, club, *registered.Club)
}

func TestDecideApplicationOrderIndependent(t *testing.T) {
	store, people, _, svc := newApprovalFixture()
	store.applications[7] = &models.PlayerApplication{ID: 7, Email: "asha@example.com"}

	_, err := svc.DecideApplication(context.Background(), 7, models.PartyLeague, models.DecisionApprove)
	require.NoError(t, err)
	require.Empty(t, people.upserted)

	_, err = svc.DecideApplication(context.Background(), 7, models.PartyClub, models.DecisionApprove)
	require.NoError(t, err)
	require.Len(t, people.upserted, 1)
}

func TestDecideApplicationRejectionNeverPropagates(t *testing.T) {
	store, people, _, svc := newApprovalFixture()
	approved := models.FlagApproved
	store.applications[7] = &models.PlayerApplication{ID: 7, Email: "asha@example.com", ClubApproval: &approved}

	application, err := svc.DecideApplication(context.Background(), 7, models.PartyLeague, models.DecisionReject)
	require.NoError(t, err)
	require.Empty(t, people.upserted)
	// The opposite flag keeps its value.
	require.NotNil(t, application.ClubApproval)
	require.Equal(t, models.FlagApproved, *application.ClubApproval)
	require.NotNil(t, application.LeagueApproval)
	require.Equal(t, models.FlagRejected, *application.LeagueApproval)
}

func TestDecideApplicationReApprovalRerunsFinalize(t *testing.T) {
	store, people, _, svc := newApprovalFixture()
	approved := models.FlagApproved
	store.applications[7] = &models.PlayerApplication{
		ID: 7, Email: "asha@example.com", ClubApproval: &approved, LeagueApproval: &approved,
	}

	_, err := svc.DecideApplication(context.Background(), 7, models.PartyLeague, models.DecisionApprove)
	require.NoError(t, err)
	_, err = svc.DecideApplication(context.Background(), 7, models.PartyClub, models.DecisionApprove)
	require.NoError(t, err)
	require.Len(t, people.upserted, 2)
}

func TestDecideApplicationUnknownPartyAndMissingRow(t *testing.T) {
	store, _, _, svc := newApprovalFixture()
	store.applications[7] = &models.PlayerApplication{ID: 7}

	_, err := svc.DecideApplication(context.Background(), 7, models.PartyFromClub, models.DecisionApprove)
	require.Error(t, err)

	_, err = svc.DecideApplication(context.Background(), 99, models.PartyClub, models.DecisionApprove)
	require.Error(t, err)
}

func TestDecideTransferSecondApprovalMovesPlayerAndClearsSlots(t *testing.T) {
	store, people, teams, svc := newApprovalFixture()
	oldClub, newClub := int64(2), int64(9)
	approved := models.FlagApproved
	store.transfers[3] = &models.PlayerTransfer{
		ID: 3, RegistrationNumber: 42, FromClub: &oldClub, NewClub: &newClub,
		FromClubApproval: &approved,
	}
	people.people[42] = &models.Person{ID: 42, Club: &oldClub}

	transfer, err := svc.DecideTransfer(context.Background(), 3, models.PartyToClub, models.DecisionApprove)
	require.NoError(t, err)
	require.NotNil(t, transfer.ToClubApproval)
	require.Equal(t, newClub, *people.clubs[42])
	require.Equal(t, [][2]int64{{42, 42}}, teams.teamCalls)
	require.Empty(t, teams.clubCalls)
}

func TestDecideTransferRejectionNeverPropagates(t *testing.T) {
	store, people, teams, svc := newApprovalFixture()
	approved := models.FlagApproved
	store.transfers[3] = &models.PlayerTransfer{ID: 3, RegistrationNumber: 42, FromClubApproval: &approved}
	people.people[42] = &models.Person{ID: 42}

	_, err := svc.DecideTransfer(context.Background(), 3, models.PartyToClub, models.DecisionReject)
	require.NoError(t, err)
	require.Empty(t, people.clubs)
	require.Empty(t, teams.teamCalls)
}

func TestDecideTransferSinglePartyDoesNotFinalize(t *testing.T) {
	store, people, teams, svc := newApprovalFixture()
	store.transfers[3] = &models.PlayerTransfer{ID: 3, RegistrationNumber: 42}
	people.people[42] = &models.Person{ID: 42}

	_, err := svc.DecideTransfer(context.Background(), 3, models.PartyFromClub, models.DecisionApprove)
	require.NoError(t, err)
	require.Empty(t, people.clubs)
	require.Empty(t, teams.teamCalls)
}

func TestDecideTransferUnknownParty(t *testing.T) {
	store, _, _, svc := newApprovalFixture()
	store.transfers[3] = &models.PlayerTransfer{ID: 3}

	_, err := svc.DecideTransfer(context.Background(), 3, models.PartyLeague, models.DecisionApprove)
	require.Error(t, err)
}

func TestReassignPlayerClearsPreviousClubSlots(t *testing.T) {
	_, people, teams, svc := newApprovalFixture()
	oldClub, newClub := int64(2), int64(9)
	people.people[42] = &models.Person{ID: 42, Club: &oldClub}

	err := svc.ReassignPlayer(context.Background(), dto.UpdatePlayerClubRequest{PlayerID: 42, NewClubID: &newClub})
	require.NoError(t, err)
	require.Equal(t, newClub, *people.clubs[42])
	// Scoped to the club the player left, not the destination.
	require.Equal(t, [][2]int64{{42, 2}}, teams.clubCalls)
}

func TestReassignPlayerRepeatCallKeepsNewClubSlots(t *testing.T) {
	_, people, teams, svc := newApprovalFixture()
	oldClub, newClub := int64(2), int64(9)
	people.people[42] = &models.Person{ID: 42, Club: &oldClub}

	req := dto.UpdatePlayerClubRequest{PlayerID: 42, NewClubID: &newClub}
	require.NoError(t, svc.ReassignPlayer(context.Background(), req))
	require.NoError(t, svc.ReassignPlayer(context.Background(), req))

	require.Equal(t, newClub, *people.clubs[42])
	// The second call must not clear slots in the destination club.
	require.Equal(t, [][2]int64{{42, 2}}, teams.clubCalls)
}

func TestReassignPlayerWithoutPreviousClubSkipsClearing(t *testing.T) {
	_, people, teams, svc := newApprovalFixture()
	newClub := int64(9)
	people.people[42] = &models.Person{ID: 42}

	err := svc.ReassignPlayer(context.Background(), dto.UpdatePlayerClubRequest{PlayerID: 42, NewClubID: &newClub})
	require.NoError(t, err)
	require.Empty(t, teams.clubCalls)
}

func TestReassignPlayerUnknownPlayer(t *testing.T) {
	_, _, _, svc := newApprovalFixture()
	err := svc.ReassignPlayer(context.Background(), dto.UpdatePlayerClubRequest{PlayerID: 99})
	require.Error(t, err)
}
