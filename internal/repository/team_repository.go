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

// TeamRepository persists teams and their fixed fifteen-slot rosters.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository constructs the repository.
func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

var teamColumns = "id, name, club, " + strings.Join(models.RosterSlotColumns, ", ") + ", created_at, updated_at"

// List returns every team.
func (r *TeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM teams ORDER BY name", teamColumns)
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// GetByID fetches a single team.
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM teams WHERE id = $1", teamColumns)
	var team models.Team
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByClub returns the teams fielded by one club.
func (r *TeamRepository) ListByClub(ctx context.Context, clubID int64) ([]models.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM teams WHERE club = $1 ORDER BY name", teamColumns)
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query, clubID); err != nil {
		return nil, fmt.Errorf("list club teams: %w", err)
	}
	return teams, nil
}

// Upsert inserts a team or updates the supplied fields when ID is set.
func (r *TeamRepository) Upsert(ctx context.Context, req dto.UpsertTeamRequest) (int64, error) {
	assignments := teamAssignments(req)
	if len(assignments) == 0 {
		return 0, fmt.Errorf("no team fields supplied")
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
		query := fmt.Sprintf("UPDATE teams SET %s WHERE id = $%d", strings.Join(setParts, ", "), len(args))
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("update team: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("check team update rows: %w", err)
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
	query := fmt.Sprintf("INSERT INTO teams (%s) VALUES (%s) RETURNING id",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}
	return id, nil
}

// Delete removes a team.
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check team delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClearRosterSlotsForClub blanks every roster slot holding playerID across all
// teams of one club. NULLIF leaves non-matching slots untouched, so the update
// is idempotent.
func (r *TeamRepository) ClearRosterSlotsForClub(ctx context.Context, playerID, clubID int64) error {
	query := fmt.Sprintf("UPDATE teams SET %s WHERE club = $2", nullifAssignments())
	if _, err := r.db.ExecContext(ctx, query, playerID, clubID); err != nil {
		return fmt.Errorf("clear roster slots for club: %w", err)
	}
	return nil
}

// ClearRosterSlotsForTeamID blanks every roster slot holding playerID on one
// team row, addressed by team id.
func (r *TeamRepository) ClearRosterSlotsForTeamID(ctx context.Context, playerID, teamID int64) error {
	query := fmt.Sprintf("UPDATE teams SET %s WHERE id = $2", nullifAssignments())
	if _, err := r.db.ExecContext(ctx, query, playerID, teamID); err != nil {
		return fmt.Errorf("clear roster slots for team: %w", err)
	}
	return nil
}

func nullifAssignments() string {
	parts := make([]string, 0, len(models.RosterSlotColumns))
	for _, col := range models.RosterSlotColumns {
		parts = append(parts, fmt.Sprintf("%s = NULLIF(%s, $1)", col, col))
	}
	return strings.Join(parts, ", ")
}

func teamAssignments(req dto.UpsertTeamRequest) []columnValue {
	out := make([]columnValue, 0, 17)
	if req.Name != nil {
		out = append(out, columnValue{"name", *req.Name})
	}
	if req.Club != nil {
		out = append(out, columnValue{"club", *req.Club})
	}
	slots := []struct {
		column string
		value  *int64
	}{
		{"player1", req.Player1}, {"player2", req.Player2}, {"player3", req.Player3},
		{"player4", req.Player4}, {"player5", req.Player5}, {"player6", req.Player6},
		{"player7", req.Player7}, {"player8", req.Player8}, {"player9", req.Player9},
		{"player10", req.Player10}, {"player11", req.Player11},
		{"sub1", req.Sub1}, {"sub2", req.Sub2}, {"sub3", req.Sub3}, {"sub4", req.Sub4},
	}
	for _, s := range slots {
		if s.value != nil {
			out = append(out, columnValue{s.column, *s.value})
		}
	}
	return out
}
