package models

import "time"

// PersonRole classifies the people known to the league registry.
type PersonRole string

const (
	RolePlayer          PersonRole = "player"
	RoleUmpire          PersonRole = "umpire"
	RoleClubAdmin       PersonRole = "club_admin"
	RoleLeagueOfficial  PersonRole = "league_official"
	RoleLeagueRegistrar PersonRole = "league_registrar"
)

// Person is the canonical identity record for any human in the league:
// players, club officials, umpires and committee members alike. The club
// column carries the current club assignment and is the target of transfer
// propagation.
type Person struct {
	ID             int64      `db:"id" json:"id"`
	FirstName      string     `db:"fname" json:"fname"`
	LastName       string     `db:"lname" json:"lname"`
	Email          string     `db:"email" json:"email"`
	Phone          *string    `db:"phone" json:"phone,omitempty"`
	Address        *string    `db:"address" json:"address,omitempty"`
	PasswordHash   *string    `db:"password_hash" json:"-"`
	Role           PersonRole `db:"role" json:"role"`
	Club           *int64     `db:"club" json:"club,omitempty"`
	Team           *int64     `db:"team" json:"team,omitempty"`
	LeaguePosition *string    `db:"league_position" json:"league_position,omitempty"`
	ClubPosition   *string    `db:"club_position" json:"club_position,omitempty"`
	Image          *string    `db:"image" json:"image,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// PersonSummary is the projection served by listing and lookup endpoints.
type PersonSummary struct {
	ID             int64   `db:"id" json:"id"`
	FirstName      string  `db:"fname" json:"fname"`
	LastName       string  `db:"lname" json:"lname"`
	Email          string  `db:"email" json:"email"`
	Phone          *string `db:"phone" json:"phone,omitempty"`
	Club           *int64  `db:"club" json:"club,omitempty"`
	Team           *int64  `db:"team" json:"team,omitempty"`
	LeaguePosition *string `db:"league_position" json:"league_position,omitempty"`
	ClubPosition   *string `db:"club_position" json:"club_position,omitempty"`
	Image          *string `db:"image" json:"image,omitempty"`
}
