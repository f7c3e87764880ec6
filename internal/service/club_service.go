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

const cacheKeyClubList = "clubs:list"

type clubStore interface {
	List(ctx context.Context) ([]models.Club, error)
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	Upsert(ctx context.Context, req dto.UpsertClubRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
	CreateApplication(ctx context.Context, req dto.ClubRegistrationRequest) (int64, error)
	ListApplications(ctx context.Context) ([]models.ClubApplication, error)
	AcceptApplication(ctx context.Context, id int64) (int64, error)
	RejectApplication(ctx context.Context, id int64) error
}

// ClubService serves clubs and the club application review workflow.
type ClubService struct {
	store     clubStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClubService constructs the service.
func NewClubService(store clubStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClubService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClubService{store: store, cache: cache, validator: validate, logger: logger}
}

// List returns every club, served from cache when possible.
func (s *ClubService) List(ctx context.Context) ([]models.Club, error) {
	var cached []models.Club
	if hit, _ := s.cache.Get(ctx, cacheKeyClubList, &cached); hit {
		return cached, nil
	}

	clubs, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list clubs")
	}

	if err := s.cache.Set(ctx, cacheKeyClubList, clubs, 0); err != nil {
		s.logger.Warn("failed to cache club list", zap.Error(err))
	}
	return clubs, nil
}

// Get fetches a single club.
func (s *ClubService) Get(ctx context.Context, id int64) (*models.Club, error) {
	club, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "club not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load club")
	}
	return club, nil
}

// Upsert adds or updates a club and returns its id.
func (s *ClubService) Upsert(ctx context.Context, req dto.UpsertClubRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid club payload")
	}

	id, err := s.store.Upsert(ctx, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "club not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save club")
	}

	s.invalidate(ctx)
	return id, nil
}

// Delete removes a club.
func (s *ClubService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "club not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete club")
	}

	s.invalidate(ctx)
	return nil
}

// Register files a club application for league review.
func (s *ClubService) Register(ctx context.Context, req dto.ClubRegistrationRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid club registration payload")
	}

	id, err := s.store.CreateApplication(ctx, req)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to file club application")
	}
	return id, nil
}

// PendingApplications returns the review inbox.
func (s *ClubService) PendingApplications(ctx context.Context) ([]models.ClubApplication, error) {
	applications, err := s.store.ListApplications(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list club applications")
	}
	return applications, nil
}

// Accept copies an application into the clubs table and returns the new
// club id. Accepting an already reviewed application reports not found.
func (s *ClubService) Accept(ctx context.Context, id int64) (int64, error) {
	clubID, err := s.store.AcceptApplication(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "pending club application not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to accept club application")
	}

	s.logger.Info("club application accepted", zap.Int64("application_id", id), zap.Int64("club_id", clubID))
	s.invalidate(ctx)
	return clubID, nil
}

// Reject marks a pending application rejected.
func (s *ClubService) Reject(ctx context.Context, id int64) error {
	if err := s.store.RejectApplication(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "pending club application not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reject club application")
	}
	return nil
}

func (s *ClubService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "clubs:*"); err != nil {
		s.logger.Warn("failed to invalidate club cache", zap.Error(err))
	}
}
