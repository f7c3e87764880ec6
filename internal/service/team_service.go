package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
)

const cacheKeyTeamList = "teams:list"

type teamStore interface {
	List(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	ListByClub(ctx context.Context, clubID int64) ([]models.Team, error)
	Upsert(ctx context.Context, req dto.UpsertTeamRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type teamPersonLookup interface {
	GetSummariesByIDs(ctx context.Context, ids []int64) ([]models.PersonSummary, error)
}

// TeamService serves teams and resolves roster slots into people.
type TeamService struct {
	store     teamStore
	people    teamPersonLookup
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeamService constructs the service.
func NewTeamService(store teamStore, people teamPersonLookup, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *TeamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeamService{store: store, people: people, cache: cache, validator: validate, logger: logger}
}

// List returns every team, served from cache when possible.
func (s *TeamService) List(ctx context.Context) ([]models.Team, error) {
	var cached []models.Team
	if hit, _ := s.cache.Get(ctx, cacheKeyTeamList, &cached); hit {
		return cached, nil
	}

	teams, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teams")
	}

	if err := s.cache.Set(ctx, cacheKeyTeamList, teams, 0); err != nil {
		s.logger.Warn("failed to cache team list", zap.Error(err))
	}
	return teams, nil
}

// Get fetches a team with its roster resolved to person summaries. Slot
// order is preserved; empty slots are skipped.
func (s *TeamService) Get(ctx context.Context, id int64) (*models.TeamWithPlayers, error) {
	team, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load team")
	}

	players, err := s.resolveRoster(ctx, team)
	if err != nil {
		return nil, err
	}
	return &models.TeamWithPlayers{Team: *team, Players: players}, nil
}

// ListByClub returns the teams fielded by one club.
func (s *TeamService) ListByClub(ctx context.Context, clubID int64) ([]models.Team, error) {
	teams, err := s.store.ListByClub(ctx, clubID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list club teams")
	}
	return teams, nil
}

// Upsert adds or updates a team and returns its id.
func (s *TeamService) Upsert(ctx context.Context, req dto.UpsertTeamRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid team payload")
	}

	id, err := s.store.Upsert(ctx, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save team")
	}

	s.invalidate(ctx)
	return id, nil
}

// Delete removes a team.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete team")
	}

	s.invalidate(ctx)
	return nil
}

func (s *TeamService) resolveRoster(ctx context.Context, team *models.Team) ([]models.PersonSummary, error) {
	ids := team.RosterPlayerIDs()
	if len(ids) == 0 {
		return nil, nil
	}

	summaries, err := s.people.GetSummariesByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve roster")
	}

	byID := make(map[int64]models.PersonSummary, len(summaries))
	for _, summary := range summaries {
		byID[summary.ID] = summary
	}

	players := make([]models.PersonSummary, 0, len(ids))
	for _, slot := range team.RosterSlots() {
		if slot == nil {
			continue
		}
		if summary, ok := byID[*slot]; ok {
			players = append(players, summary)
		}
	}
	return players, nil
}

func (s *TeamService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "teams:*"); err != nil {
		s.logger.Warn("failed to invalidate team cache", zap.Error(err))
	}
}
