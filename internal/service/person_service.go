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

const (
	cacheKeyPeopleList      = "people:list"
	cacheKeyPeopleUmpires   = "people:umpires"
	cacheKeyPeopleCommittee = "people:committee"
)

type personStore interface {
	Upsert(ctx context.Context, req dto.UpsertPersonRequest) (int64, error)
	List(ctx context.Context) ([]models.PersonSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	GetSummariesByIDs(ctx context.Context, ids []int64) ([]models.PersonSummary, error)
	Umpires(ctx context.Context) ([]models.PersonSummary, error)
	CommitteeMembers(ctx context.Context) ([]models.PersonSummary, error)
	Delete(ctx context.Context, id int64) error
}

// PersonService serves the people registry.
type PersonService struct {
	store     personStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPersonService constructs the service.
func NewPersonService(store personStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PersonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PersonService{store: store, cache: cache, validator: validate, logger: logger}
}

// Upsert adds or updates a person and returns its id.
func (s *PersonService) Upsert(ctx context.Context, req dto.UpsertPersonRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}

	id, err := s.store.Upsert(ctx, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "person not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save person")
	}

	s.invalidate(ctx)
	return id, nil
}

// List returns every person, served from cache when possible.
func (s *PersonService) List(ctx context.Context) ([]models.PersonSummary, error) {
	var cached []models.PersonSummary
	if hit, _ := s.cache.Get(ctx, cacheKeyPeopleList, &cached); hit {
		return cached, nil
	}

	people, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list people")
	}

	if err := s.cache.Set(ctx, cacheKeyPeopleList, people, 0); err != nil {
		s.logger.Warn("failed to cache people list", zap.Error(err))
	}
	return people, nil
}

// Get fetches a single person.
func (s *PersonService) Get(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "person not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load person")
	}
	return person, nil
}

// Details fetches summaries for a batch of ids.
func (s *PersonService) Details(ctx context.Context, req dto.PersonDetailsRequest) ([]models.PersonSummary, error) {
	people, err := s.store.GetSummariesByIDs(ctx, req.IDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up people")
	}
	return people, nil
}

// Umpires lists people in umpire league positions, served from cache.
func (s *PersonService) Umpires(ctx context.Context) ([]models.PersonSummary, error) {
	var cached []models.PersonSummary
	if hit, _ := s.cache.Get(ctx, cacheKeyPeopleUmpires, &cached); hit {
		return cached, nil
	}

	umpires, err := s.store.Umpires(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list umpires")
	}

	if err := s.cache.Set(ctx, cacheKeyPeopleUmpires, umpires, 0); err != nil {
		s.logger.Warn("failed to cache umpires", zap.Error(err))
	}
	return umpires, nil
}

// Committee lists league officials and registrars, served from cache.
func (s *PersonService) Committee(ctx context.Context) ([]models.PersonSummary, error) {
	var cached []models.PersonSummary
	if hit, _ := s.cache.Get(ctx, cacheKeyPeopleCommittee, &cached); hit {
		return cached, nil
	}

	committee, err := s.store.CommitteeMembers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list committee")
	}

	if err := s.cache.Set(ctx, cacheKeyPeopleCommittee, committee, 0); err != nil {
		s.logger.Warn("failed to cache committee", zap.Error(err))
	}
	return committee, nil
}

// Delete removes a person.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "person not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete person")
	}

	s.invalidate(ctx)
	return nil
}

func (s *PersonService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "people:*"); err != nil {
		s.logger.Warn("failed to invalidate people cache", zap.Error(err))
	}
}
