package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

// ClubRepository persists clubs and the club application inbox.
type ClubRepository struct {
	db *sqlx.DB
}

// NewClubRepository constructs the repository.
func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

const clubColumns = `id, name, primary_club_contact, primary_position_in_the_club, primary_phone_number,
	primary_email, secondary_club_contact, secondary_phone_number, secondary_email, ground_1, ground_2,
	established, logo, club_type, website, chairman, general_secretary, treasurer, welfare_officer,
	registrar, admin, created_at, updated_at`

const clubApplicationColumns = `id, name, primary_club_contact, primary_position_in_the_club,
	primary_phone_number, primary_email, secondary_club_contact, secondary_phone_number, secondary_email,
	ground_1, ground_2, established, logo, club_type, website, status, created_at, updated_at`

// List returns every club.
func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	query := fmt.Sprintf("SELECT %s FROM clubs ORDER BY name", clubColumns)
	var clubs []models.Club
	if err := r.db.SelectContext(ctx, &clubs, query); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}

// GetByID fetches a single club.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := fmt.Sprintf("SELECT %s FROM clubs WHERE id = $1", clubColumns)
	var club models.Club
	if err := r.db.GetContext(ctx, &club, query, id); err != nil {
		return nil, err
	}
	return &club, nil
}

// Upsert inserts a club or updates the supplied fields when ID is set.
func (r *ClubRepository) Upsert(ctx context.Context, req dto.UpsertClubRequest) (int64, error) {
	assignments := clubAssignments(req)
	if len(assignments) == 0 {
		return 0, fmt.Errorf("no club fields supplied")
	}

	if req.ID != nil {
		setParts := make([]string, 0, len(assignments)+1)
		args := make([]interface{}, 0, len(assignments)+1)
		for _, a := range assignments {
			args = append(args, a.value)
			setParts = append(setParts, fmt.Sprintf("%s = $%d", a.column, len(args)))
		}
		setParts = append(setParts, "updated_at = NOW()")
		args = append(args, *req.ID)
		query := fmt.Sprintf("UPDATE clubs SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("update club: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("check club update rows: %w", err)
		}
		if rows == 0 {
			return 0, sql.ErrNoRows
		}
		return *req.ID, nil
	}

	columns := make([]string, 0, len(assignments))
	placeholders := make([]string, 0, len(assignments))
	args := make([]interface{}, 0, len(assignments))
	for _, a := range assignments {
		args = append(args, a.value)
		columns = append(columns, a.column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	query := fmt.Sprintf("INSERT INTO clubs (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert club: %w", err)
	}
	return id, nil
}

// Delete removes a club.
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clubs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check club delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateApplication files a new club application in pending state.
func (r *ClubRepository) CreateApplication(ctx context.Context, req dto.ClubRegistrationRequest) (int64, error) {
	const query = `INSERT INTO club_applications
	(name, primary_club_contact, primary_position_in_the_club, primary_phone_number, primary_email,
	 secondary_club_contact, secondary_phone_number, secondary_email, ground_1, ground_2,
	 established, logo, club_type, website, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING id`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.Name, req.PrimaryContact, req.PrimaryPosition, req.PrimaryPhoneNumber, req.PrimaryEmail,
		req.SecondaryContact, req.SecondaryPhone, req.SecondaryEmail, req.GroundOne, req.GroundTwo,
		req.Established, req.Logo, req.ClubType, req.Website, models.ClubApplicationPending)
	if err != nil {
		return 0, fmt.Errorf("create club application: %w", err)
	}
	return id, nil
}

// ListApplications returns the pending club application inbox.
func (r *ClubRepository) ListApplications(ctx context.Context) ([]models.ClubApplication, error) {
	query := fmt.Sprintf("SELECT %s FROM club_applications WHERE status = $1 ORDER BY created_at",
		clubApplicationColumns)
	var applications []models.ClubApplication
	if err := r.db.SelectContext(ctx, &applications, query, models.ClubApplicationPending); err != nil {
		return nil, fmt.Errorf("list club applications: %w", err)
	}
	return applications, nil
}

// GetApplication fetches a club application by id.
func (r *ClubRepository) GetApplication(ctx context.Context, id int64) (*models.ClubApplication, error) {
	query := fmt.Sprintf("SELECT %s FROM club_applications WHERE id = $1", clubApplicationColumns)
	var application models.ClubApplication
	if err := r.db.GetContext(ctx, &application, query, id); err != nil {
		return nil, err
	}
	return &application, nil
}

// AcceptApplication copies an application into the clubs table and marks it
// accepted, all inside one transaction. Returns the new club id.
func (r *ClubRepository) AcceptApplication(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin accept club application: %w", err)
	}
	defer tx.Rollback()

	const copyQuery = `INSERT INTO clubs
	(name, primary_club_contact, primary_position_in_the_club, primary_phone_number, primary_email,
	 secondary_club_contact, secondary_phone_number, secondary_email, ground_1, ground_2,
	 established, logo, club_type, website)
	SELECT name, primary_club_contact, primary_position_in_the_club, primary_phone_number, primary_email,
	       secondary_club_contact, secondary_phone_number, secondary_email, ground_1, ground_2,
	       established, logo, club_type, website
	FROM club_applications WHERE id = $1 AND status = $2
	RETURNING id`
	var clubID int64
	if err := tx.GetContext(ctx, &clubID, copyQuery, id, models.ClubApplicationPending); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE club_applications SET status = $1, updated_at = NOW() WHERE id = $2",
		models.ClubApplicationAccepted, id); err != nil {
		return 0, fmt.Errorf("mark club application accepted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit accept club application: %w", err)
	}
	return clubID, nil
}

// RejectApplication marks a pending application rejected.
func (r *ClubRepository) RejectApplication(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE club_applications SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3",
		models.ClubApplicationRejected, id, models.ClubApplicationPending)
	if err != nil {
		return fmt.Errorf("reject club application: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check club application rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func clubAssignments(req dto.UpsertClubRequest) []columnValue {
	out := make([]columnValue, 0, 21)
	if req.Name != nil {
		out = append(out, columnValue{"name", *req.Name})
	}
	if req.PrimaryContact != nil {
		out = append(out, columnValue{"primary_club_contact", *req.PrimaryContact})
	}
	if req.PrimaryPosition != nil {
		out = append(out, columnValue{"primary_position_in_the_club", *req.PrimaryPosition})
	}
	if req.PrimaryPhoneNumber != nil {
		out = append(out, columnValue{"primary_phone_number", *req.PrimaryPhoneNumber})
	}
	if req.PrimaryEmail != nil {
		out = append(out, columnValue{"primary_email", *req.PrimaryEmail})
	}
	if req.SecondaryContact != nil {
		out = append(out, columnValue{"secondary_club_contact", *req.SecondaryContact})
	}
	if req.SecondaryPhone != nil {
		out = append(out, columnValue{"secondary_phone_number", *req.SecondaryPhone})
	}
	if req.SecondaryEmail != nil {
		out = append(out, columnValue{"secondary_email", *req.SecondaryEmail})
	}
	if req.GroundOne != nil {
		out = append(out, columnValue{"ground_1", *req.GroundOne})
	}
	if req.GroundTwo != nil {
		out = append(out, columnValue{"ground_2", *req.GroundTwo})
	}
	if req.Established != nil {
		out = append(out, columnValue{"established", *req.Established})
	}
	if req.Logo != nil {
		out = append(out, columnValue{"logo", *req.Logo})
	}
	if req.ClubType != nil {
		out = append(out, columnValue{"club_type", *req.ClubType})
	}
	if req.Website != nil {
		out = append(out, columnValue{"website", *req.Website})
	}
	if req.Chairman != nil {
		out = append(out, columnValue{"chairman", *req.Chairman})
	}
	if req.GeneralSecretary != nil {
		out = append(out, columnValue{"general_secretary", *req.GeneralSecretary})
	}
	if req.Treasurer != nil {
		out = append(out, columnValue{"treasurer", *req.Treasurer})
	}
	if req.WelfareOfficer != nil {
		out = append(out, columnValue{"welfare_officer", *req.WelfareOfficer})
	}
	if req.Registrar != nil {
		out = append(out, columnValue{"registrar", *req.Registrar})
	}
	if req.Admin != nil {
		out = append(out, columnValue{"admin", *req.Admin})
	}
	return out
}
