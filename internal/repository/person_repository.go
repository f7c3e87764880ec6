package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mpcl/league-api/internal/dto"
	"github.com/mpcl/league-api/internal/models"
)

const personSummaryColumns = "id, fname, lname, email, phone, club, team, league_position, club_position, image"

// PersonRepository persists the canonical people registry.
type PersonRepository struct {
	db *sqlx.DB
}

// NewPersonRepository constructs the repository.
func NewPersonRepository(db *sqlx.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

type columnValue struct {
	column string
	value  interface{}
}

// Upsert inserts a person or updates the supplied fields when ID is set.
// Returns the person id.
func (r *PersonRepository) Upsert(ctx context.Context, req dto.UpsertPersonRequest) (int64, error) {
	assignments := personAssignments(req)
	if len(assignments) == 0 {
		return 0, fmt.Errorf("no person fields supplied")
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
		query := fmt.Sprintf("UPDATE people SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("update person: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("check person update rows: %w", err)
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
	query := fmt.Sprintf("INSERT INTO people (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert person: %w", err)
	}
	return id, nil
}

// UpsertPlayer writes the person record produced by a fully approved player
// application, keyed by email so repeated finalization stays idempotent.
func (r *PersonRepository) UpsertPlayer(ctx context.Context, person *models.Person) error {
	const query = `INSERT INTO people (fname, lname, email, phone, club, role)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (email) DO UPDATE
	SET fname = EXCLUDED.fname, lname = EXCLUDED.lname, phone = EXCLUDED.phone,
	    club = EXCLUDED.club, role = EXCLUDED.role, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query,
		person.FirstName, person.LastName, person.Email, person.Phone, person.Club, person.Role); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

// List returns summaries for every person.
func (r *PersonRepository) List(ctx context.Context) ([]models.PersonSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM people ORDER BY lname, fname", personSummaryColumns)
	var people []models.PersonSummary
	if err := r.db.SelectContext(ctx, &people, query); err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

// GetByID fetches a full person row.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	const query = `SELECT id, fname, lname, email, phone, address, password_hash, role, club, team,
	league_position, club_position, image, created_at, updated_at
	FROM people WHERE id = $1`
	var person models.Person
	if err := r.db.GetContext(ctx, &person, query, id); err != nil {
		return nil, err
	}
	return &person, nil
}

// GetSummariesByIDs fetches summaries for a batch of ids.
func (r *PersonRepository) GetSummariesByIDs(ctx context.Context, ids []int64) ([]models.PersonSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT %s FROM people WHERE id IN (?)", personSummaryColumns), ids)
	if err != nil {
		return nil, fmt.Errorf("build people lookup: %w", err)
	}
	query = r.db.Rebind(query)
	var people []models.PersonSummary
	if err := r.db.SelectContext(ctx, &people, query, args...); err != nil {
		return nil, fmt.Errorf("lookup people: %w", err)
	}
	return people, nil
}

// FindByEmail returns the full person row for login flows.
func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	const query = `SELECT id, fname, lname, email, phone, address, password_hash, role, club, team,
	league_position, club_position, image, created_at, updated_at
	FROM people WHERE email = $1`
	var person models.Person
	if err := r.db.GetContext(ctx, &person, query, email); err != nil {
		return nil, err
	}
	return &person, nil
}

// Umpires lists everyone holding an umpire league position.
func (r *PersonRepository) Umpires(ctx context.Context) ([]models.PersonSummary, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM people WHERE LOWER(league_position) LIKE '%%umpire%%' ORDER BY lname, fname",
		personSummaryColumns)
	var people []models.PersonSummary
	if err := r.db.SelectContext(ctx, &people, query); err != nil {
		return nil, fmt.Errorf("list umpires: %w", err)
	}
	return people, nil
}

// CommitteeMembers lists league officials and registrars.
func (r *PersonRepository) CommitteeMembers(ctx context.Context) ([]models.PersonSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM people WHERE role IN ($1, $2) ORDER BY lname, fname", personSummaryColumns)
	var people []models.PersonSummary
	if err := r.db.SelectContext(ctx, &people, query, models.RoleLeagueOfficial, models.RoleLeagueRegistrar); err != nil {
		return nil, fmt.Errorf("list committee members: %w", err)
	}
	return people, nil
}

// Delete removes a person row.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM people WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check person delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateClub reassigns a person's club. A nil club clears the assignment.
func (r *PersonRepository) UpdateClub(ctx context.Context, personID int64, club *int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE people SET club = $1, updated_at = NOW() WHERE id = $2", club, personID)
	if err != nil {
		return fmt.Errorf("update person club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check person club rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateRefreshToken persists a refresh token session.
func (r *PersonRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const query = `INSERT INTO refresh_tokens
	(id, person_id, token, expires_at, created_at, revoked, ip_address, user_agent)
	VALUES (:id, :person_id, :token, :expires_at, :created_at, :revoked, :ip_address, :user_agent)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken loads a refresh token session by its opaque value.
func (r *PersonRepository) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	const query = `SELECT id, person_id, token, expires_at, created_at, revoked, revoked_at, ip_address, user_agent
	FROM refresh_tokens WHERE token = $1`
	var stored models.RefreshToken
	if err := r.db.GetContext(ctx, &stored, query, token); err != nil {
		return nil, err
	}
	return &stored, nil
}

// RevokeRefreshToken marks a session revoked.
func (r *PersonRepository) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $1 WHERE id = $2", revokedAt, id); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokePersonRefreshTokens revokes every live session for a person.
func (r *PersonRepository) RevokePersonRefreshTokens(ctx context.Context, personID int64) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked = TRUE, revoked_at = NOW() WHERE person_id = $1 AND NOT revoked",
		personID); err != nil {
		return fmt.Errorf("revoke person refresh tokens: %w", err)
	}
	return nil
}

func personAssignments(req dto.UpsertPersonRequest) []columnValue {
	out := make([]columnValue, 0, 11)
	if req.FirstName != nil {
		out = append(out, columnValue{"fname", *req.FirstName})
	}
	if req.LastName != nil {
		out = append(out, columnValue{"lname", *req.LastName})
	}
	if req.Email != nil {
		out = append(out, columnValue{"email", *req.Email})
	}
	if req.Phone != nil {
		out = append(out, columnValue{"phone", *req.Phone})
	}
	if req.Address != nil {
		out = append(out, columnValue{"address", *req.Address})
	}
	if req.Role != nil {
		out = append(out, columnValue{"role", *req.Role})
	}
	if req.Club != nil {
		out = append(out, columnValue{"club", *req.Club})
	}
	if req.Team != nil {
		out = append(out, columnValue{"team", *req.Team})
	}
	if req.LeaguePosition != nil {
		out = append(out, columnValue{"league_position", *req.LeaguePosition})
	}
	if req.ClubPosition != nil {
		out = append(out, columnValue{"club_position", *req.ClubPosition})
	}
	if req.Image != nil {
		out = append(out, columnValue{"image", *req.Image})
	}
	return out
}
