package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

// ApplicationRepository persists player applications and transfers together
// with their two-party approval flags.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const playerApplicationColumns = `id, fname, lname, date_of_birth, email, phone_number, address, club,
	signature, terms, club_appr, league_appr, status, created_at`

const playerTransferColumns = `id, registration_number, from_club, new_club, transfer_reason,
	signature, terms, from_club_appr, to_club_appr, status, created_at`

var applicationFlagColumn = map[models.ApprovalParty]string{
	models.PartyClub:   "club_appr",
	models.PartyLeague: "league_appr",
}

var transferFlagColumn = map[models.ApprovalParty]string{
	models.PartyFromClub: "from_club_appr",
	models.PartyToClub:   "to_club_appr",
}

// CreateApplication files a new player application with both flags unset.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, req dto.PlayerRegistrationRequest) (int64, error) {
	const query = `INSERT INTO player_applications
	(fname, lname, date_of_birth, email, phone_number, address, club, signature, terms, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.FirstName, req.LastName, req.DateOfBirth, req.Email, req.PhoneNumber,
		req.Address, req.ClubID, req.Signature, req.Terms, models.ApplicationPending)
	if err != nil {
		return 0, fmt.Errorf("create player application: %w", err)
	}
	return id, nil
}

// ListApplications returns every player application, newest last.
func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]models.PlayerApplication, error) {
	query := fmt.Sprintf("SELECT %s FROM player_applications ORDER BY created_at", playerApplicationColumns)
	var applications []models.PlayerApplication
	if err := r.db.SelectContext(ctx, &applications, query); err != nil {
		return nil, fmt.Errorf("list player applications: %w", err)
	}
	return applications, nil
}

// GetApplication fetches one player application.
func (r *ApplicationRepository) GetApplication(ctx context.Context, id int64) (*models.PlayerApplication, error) {
	query := fmt.Sprintf("SELECT %s FROM player_applications WHERE id = $1", playerApplicationColumns)
	var application models.PlayerApplication
	if err := r.db.GetContext(ctx, &application, query, id); err != nil {
		return nil, err
	}
	return &application, nil
}

// SetApplicationDecision writes one party's flag and returns both flags as
// they stand after the write. The single UPDATE ... RETURNING serializes
// concurrent decisions on the row lock, so when both parties approve at the
// same time exactly one of them observes the completed pair.
func (r *ApplicationRepository) SetApplicationDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.ApplicationFlags, error) {
	column, ok := applicationFlagColumn[party]
	if !ok {
		return nil, fmt.Errorf("party %q cannot decide player applications", party)
	}
	query := fmt.Sprintf(
		"UPDATE player_applications SET %s = $1 WHERE id = $2 RETURNING club_appr, league_appr", column)
	var flags models.ApplicationFlags
	if err := r.db.GetContext(ctx, &flags, query, decision.FlagValue(), id); err != nil {
		return nil, err
	}
	return &flags, nil
}

// DeleteApplication removes a player application.
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM player_applications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete player application: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check player application rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateTransfer files a new transfer with both flags unset.
func (r *ApplicationRepository) CreateTransfer(ctx context.Context, req dto.PlayerTransferRequest) (int64, error) {
	const query = `INSERT INTO player_transfers
	(registration_number, from_club, new_club, transfer_reason, signature, terms, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.PlayerID, req.FromClubID, req.ToClubID, req.TransferReason,
		req.Signature, req.Terms, models.ApplicationPending)
	if err != nil {
		return 0, fmt.Errorf("create player transfer: %w", err)
	}
	return id, nil
}

// ListTransfers returns every transfer, newest last.
func (r *ApplicationRepository) ListTransfers(ctx context.Context) ([]models.PlayerTransfer, error) {
	query := fmt.Sprintf("SELECT %s FROM player_transfers ORDER BY created_at", playerTransferColumns)
	var transfers []models.PlayerTransfer
	if err := r.db.SelectContext(ctx, &transfers, query); err != nil {
		return nil, fmt.Errorf("list player transfers: %w", err)
	}
	return transfers, nil
}

// GetTransfer fetches one transfer.
func (r *ApplicationRepository) GetTransfer(ctx context.Context, id int64) (*models.PlayerTransfer, error) {
	query := fmt.Sprintf("SELECT %s FROM player_transfers WHERE id = $1", playerTransferColumns)
	var transfer models.PlayerTransfer
	if err := r.db.GetContext(ctx, &transfer, query, id); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// SetTransferDecision writes one club's flag and returns both flags as they
// stand after the write, with the same row-lock serialization as
// SetApplicationDecision.
func (r *ApplicationRepository) SetTransferDecision(ctx context.Context, id int64, party models.ApprovalParty, decision models.Decision) (*models.TransferFlags, error) {
	column, ok := transferFlagColumn[party]
	if !ok {
		return nil, fmt.Errorf("party %q cannot decide player transfers", party)
	}
	query := fmt.Sprintf(
		"UPDATE player_transfers SET %s = $1 WHERE id = $2 RETURNING from_club_appr, to_club_appr", column)
	var flags models.TransferFlags
	if err := r.db.GetContext(ctx, &flags, query, decision.FlagValue(), id); err != nil {
		return nil, err
	}
	return &flags, nil
}

// DeleteTransfer removes a transfer.
func (r *ApplicationRepository) DeleteTransfer(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM player_transfers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete player transfer: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check player transfer rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
