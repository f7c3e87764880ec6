package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

type teamStoreStub struct {
	teams map[int64]*models.Team
}

func (s *teamStoreStub) List(ctx context.Context) ([]models.Team, error) {
	out := make([]models.Team, 0, len(s.teams))
	for _, team := range s.teams {
		out = append(out, *team)
	}
	return out, nil
}

func (s *teamStoreStub) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	if team, ok := s.teams[id]; ok {
		copied := *team
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *teamStoreStub) ListByClub(ctx context.Context, clubID int64) ([]models.Team, error) {
	out := make([]models.Team, 0)
	for _, team := range s.teams {
		if team.Club != nil && *team.Club == clubID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func (s *teamStoreStub) Upsert(ctx context.Context, req dto.UpsertTeamRequest) (int64, error) {
	if req.ID != nil {
		if _, ok := s.teams[*req.ID]; !ok {
			return 0, sql.ErrNoRows
		}
		return *req.ID, nil
	}
	id := int64(len(s.teams) + 1)
	s.teams[id] = &models.Team{ID: id, Name: req.Name, Club: req.Club}
	return id, nil
}

func (s *teamStoreStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.teams[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.teams, id)
	return nil
}

type peopleLookupStub struct {
	summaries map[int64]models.PersonSummary
	requested []int64
}

func (s *peopleLookupStub) GetSummariesByIDs(ctx context.Context, ids []int64) ([]models.PersonSummary, error) {
	s.requested = append(s.requested, ids...)
	out := make([]models.PersonSummary, 0, len(ids))
	for _, id := range ids {
		if summary, ok := s.summaries[id]; ok {
			out = append(out, summary)
		}
	}
	return out, nil
}

func TestTeamServiceGetResolvesRosterInSlotOrder(t *testing.T) {
	p1, p2 := int64(42), int64(43)
	name := "First XI"
	store := &teamStoreStub{teams: map[int64]*models.Team{
		5: {ID: 5, Name: &name, Player1: &p2, Player2: &p1, Sub1: &p1},
	}}
	people := &peopleLookupStub{summaries: map[int64]models.PersonSummary{
		42: {ID: 42, FirstName: "Asha"},
		43: {ID: 43, FirstName: "Ben"},
	}}
	svc := NewTeamService(store, people, nil, nil, nil)

	team, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	// Slot order wins, and a player appearing twice shows up per slot.
	require.Len(t, team.Players, 3)
	require.Equal(t, int64(43), team.Players[0].ID)
	require.Equal(t, int64(42), team.Players[1].ID)
	require.Equal(t, int64(42), team.Players[2].ID)
	// The lookup itself deduplicates ids.
	require.Equal(t, []int64{43, 42}, people.requested)
}

func TestTeamServiceGetEmptyRoster(t *testing.T) {
	store := &teamStoreStub{teams: map[int64]*models.Team{5: {ID: 5}}}
	people := &peopleLookupStub{summaries: map[int64]models.PersonSummary{}}
	svc := NewTeamService(store, people, nil, nil, nil)

	team, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, team.Players)
	require.Empty(t, people.requested)
}

func TestTeamServiceGetUnknownTeam(t *testing.T) {
	store := &teamStoreStub{teams: map[int64]*models.Team{}}
	svc := NewTeamService(store, &peopleLookupStub{}, nil, nil, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
}

func TestTeamServiceUpsertUnknownTeam(t *testing.T) {
	store := &teamStoreStub{teams: map[int64]*models.Team{}}
	svc := NewTeamService(store, &peopleLookupStub{}, nil, nil, nil)

	id := int64(99)
	_, err := svc.Upsert(context.Background(), dto.UpsertTeamRequest{ID: &id})
	require.Error(t, err)
}
