package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
	appErrors "github.com/mpcl/league-api/pkg/errors"
)

type approvalApplicationStore interface {
	GetApplication(ctx context.Context, id int64) (*models.PlayerApplication, error)
	SetApplicationDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.ApplicationFlags, error)
	GetTransfer(ctx context.Context, id int64) (*models.PlayerTransfer, error)
	SetTransferDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.TransferFlags, error)
}

type approvalPersonStore interface {
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	UpsertPlayer(ctx context.Context, person *models.Person) error
	UpdateClub(ctx context.Context, personID int64, club *int64) error
}

type approvalTeamStore interface {
	ClearRosterSlotsForClub(ctx context.Context, playerID, clubID int64) error
	ClearRosterSlotsForTeamID(ctx context.Context, playerID, teamID int64) error
}

// ApprovalService runs the two-party sign-off workflows: player applications
// approved by club and league, and transfers approved by both clubs. Once the
// second party approves, the decision is finalized into the people registry
// and team rosters.
type ApprovalService struct {
	applications approvalApplicationStore
	people       approvalPersonStore
	teams        approvalTeamStore
	cache        *CacheService
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewApprovalService constructs the service.
func NewApprovalService(applications approvalApplicationStore, people approvalPersonStore, teams approvalTeamStore, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ApprovalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalService{applications: applications, people: people, teams: teams, cache: cache, metrics: metrics, logger: logger}
}

// DecideApplication records one party's verdict on a player application.
// Approval by the second party finalizes the application: the applicant is
// written into the people registry with the player role. Finalization is
// idempotent, so a repeated approval only re-runs the registry upsert.
// A rejection stores the flag and never touches the other party's flag.
func (s *ApprovalService) DecideApplication(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.PlayerApplication, error) {
	if party != models.PartyClub && party != models.PartyLeague {
		return nil, appErrors.Clone(appErrors.ErrValidation, "applications are decided by the club and the league")
	}

	flags, err := s.applications.SetApplicationDecision(ctx, id, party, decision)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record decision")
	}

	if decision == models.DecisionApprove && flags.BothApproved() {
		if err := s.finalizeApplication(ctx, id); err != nil {
			return nil, err
		}
	}

	application, err := s.applications.GetApplication(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload application")
	}
	return application, nil
}

// DecideTransfer records one club's verdict on a transfer. Approval by the
// second club finalizes it: the player's club assignment moves to the new
// club and any roster slots still holding the player are blanked.
func (s *ApprovalService) DecideTransfer(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.PlayerTransfer, error) {
	if party != models.PartyFromClub && party != models.PartyToClub {
		return nil, appErrors.Clone(appErrors.ErrValidation, "transfers are decided by the two clubs")
	}

	flags, err := s.applications.SetTransferDecision(ctx, id, party, decision)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player transfer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record decision")
	}

	if decision == models.DecisionApprove && flags.BothApproved() {
		if err := s.finalizeTransfer(ctx, id); err != nil {
			return nil, err
		}
	}

	transfer, err := s.applications.GetTransfer(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload transfer")
	}
	return transfer, nil
}

// ReassignPlayer moves a player to a new club without the transfer workflow
// and blanks the player's roster slots across the previous club's teams. A
// nil new club releases the player from club membership entirely.
func (s *ApprovalService) ReassignPlayer(ctx context.Context, req dto.UpdatePlayerClubRequest) error {
	person, err := s.people.GetByID(ctx, req.PlayerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "player not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}
	previousClub := person.Club

	if err := s.people.UpdateClub(ctx, req.PlayerID, req.NewClubID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reassign player")
	}

	// Slot clearing is scoped to the club the player is leaving. Teams of
	// the new club keep any slots that already reference the player, so a
	// repeat call with the same destination must not clear anything.
	if previousClub != nil && (req.NewClubID == nil || *previousClub != *req.NewClubID) {
		if err := s.teams.ClearRosterSlotsForClub(ctx, req.PlayerID, *previousClub); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear roster slots")
		}
	}

	s.invalidateRegistryCaches(ctx)
	return nil
}

func (s *ApprovalService) finalizeApplication(ctx context.Context, id int64) error {
	application, err := s.applications.GetApplication(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}

	person := &models.Person{
		FirstName: application.FirstName,
		LastName:  application.LastName,
		Email:     application.Email,
		Phone:     application.PhoneNumber,
		Club:      application.Club,
		Role:      models.RolePlayer,
	}
	if err := s.people.UpsertPlayer(ctx, person); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register player")
	}

	s.logger.Info("player application finalized",
		zap.Int64("application_id", id),
		zap.String("email", application.Email))
	s.metrics.RecordFinalization("application")
	s.invalidateRegistryCaches(ctx)
	return nil
}

func (s *ApprovalService) finalizeTransfer(ctx context.Context, id int64) error {
	transfer, err := s.applications.GetTransfer(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transfer")
	}

	if err := s.people.UpdateClub(ctx, transfer.RegistrationNumber, transfer.NewClub); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "transferred player not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move player")
	}

	// The registration number doubles as the team row id on this path.
	if err := s.teams.ClearRosterSlotsForTeamID(ctx, transfer.RegistrationNumber, transfer.RegistrationNumber); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear roster slots")
	}

	s.logger.Info("player transfer finalized",
		zap.Int64("transfer_id", id),
		zap.Int64("registration_number", transfer.RegistrationNumber))
	s.metrics.RecordFinalization("transfer")
	s.invalidateRegistryCaches(ctx)
	return nil
}

func (s *ApprovalService) invalidateRegistryCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, pattern := range []string{"people:*", "teams:*"} {
		if err := s.cache.Invalidate(ctx, pattern); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
