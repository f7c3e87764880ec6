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

type playerApplicationStore interface {
	CreateApplication(ctx context.Context, req dto.PlayerRegistrationRequest) (int64, error)
	ListApplications(ctx context.Context) ([]models.PlayerApplication, error)
	GetApplication(ctx context.Context, id int64) (*models.PlayerApplication, error)
	DeleteApplication(ctx context.Context, id int64) error
	CreateTransfer(ctx context.Context, req dto.PlayerTransferRequest) (int64, error)
	ListTransfers(ctx context.Context) ([]models.PlayerTransfer, error)
	GetTransfer(ctx context.Context, id int64) (*models.PlayerTransfer, error)
	DeleteTransfer(ctx context.Context, id int64) error
}

// PlayerService files and lists player applications and transfers. Decisions
// on them are the ApprovalService's concern.
type PlayerService struct {
	store     playerApplicationStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPlayerService constructs the service.
func NewPlayerService(store playerApplicationStore, validate *validator.Validate, logger *zap.Logger) *PlayerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PlayerService{store: store, validator: validate, logger: logger}
}

// Register files a new player application with both approval flags unset.
func (s *PlayerService) Register(ctx context.Context, req dto.PlayerRegistrationRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid player registration payload")
	}
	if !req.Terms {
		return 0, appErrors.Clone(appErrors.ErrValidation, "terms must be accepted")
	}

	id, err := s.store.CreateApplication(ctx, req)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to file player application")
	}

	s.logger.Info("player application filed", zap.Int64("application_id", id))
	return id, nil
}

// Applications lists every player application.
func (s *PlayerService) Applications(ctx context.Context) ([]models.PlayerApplication, error) {
	applications, err := s.store.ListApplications(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list player applications")
	}
	return applications, nil
}

// Application fetches one player application.
func (s *PlayerService) Application(ctx context.Context, id int64) (*models.PlayerApplication, error) {
	application, err := s.store.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player application")
	}
	return application, nil
}

// DeleteApplication withdraws a player application.
func (s *PlayerService) DeleteApplication(ctx context.Context, id int64) error {
	if err := s.store.DeleteApplication(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "player application not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete player application")
	}
	return nil
}

// RequestTransfer files a transfer with both club flags unset.
func (s *PlayerService) RequestTransfer(ctx context.Context, req dto.PlayerTransferRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transfer payload")
	}
	if !req.Terms {
		return 0, appErrors.Clone(appErrors.ErrValidation, "terms must be accepted")
	}

	id, err := s.store.CreateTransfer(ctx, req)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to file transfer")
	}

	s.logger.Info("player transfer filed", zap.Int64("transfer_id", id), zap.Int64("player_id", req.PlayerID))
	return id, nil
}

// Transfers lists every transfer.
func (s *PlayerService) Transfers(ctx context.Context) ([]models.PlayerTransfer, error) {
	transfers, err := s.store.ListTransfers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list transfers")
	}
	return transfers, nil
}

// Transfer fetches one transfer.
func (s *PlayerService) Transfer(ctx context.Context, id int64) (*models.PlayerTransfer, error) {
	transfer, err := s.store.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player transfer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transfer")
	}
	return transfer, nil
}

// DeleteTransfer withdraws a transfer.
func (s *PlayerService) DeleteTransfer(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransfer(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "player transfer not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete transfer")
	}
	return nil
}
