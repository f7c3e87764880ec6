package models

import "time"

// ClubApplicationStatus tracks the lifecycle of a club registration request.
type ClubApplicationStatus string

const (
	ClubApplicationPending  ClubApplicationStatus = "pending"
	ClubApplicationAccepted ClubApplicationStatus = "accepted"
	ClubApplicationRejected ClubApplicationStatus = "rejected"
)

// Club is a registered member club of the league.
type Club struct {
	ID                 int64     `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	PrimaryContact     *string   `db:"primary_club_contact" json:"primary_club_contact,omitempty"`
	PrimaryPosition    *string   `db:"primary_position_in_the_club" json:"primary_position_in_the_club,omitempty"`
	PrimaryPhoneNumber *string   `db:"primary_phone_number" json:"primary_phone_number,omitempty"`
	PrimaryEmail       *string   `db:"primary_email" json:"primary_email,omitempty"`
	SecondaryContact   *string   `db:"secondary_club_contact" json:"secondary_club_contact,omitempty"`
	SecondaryPhone     *string   `db:"secondary_phone_number" json:"secondary_phone_number,omitempty"`
	SecondaryEmail     *string   `db:"secondary_email" json:"secondary_email,omitempty"`
	GroundOne          *string   `db:"ground_1" json:"ground_1,omitempty"`
	GroundTwo          *string   `db:"ground_2" json:"ground_2,omitempty"`
	Established        *string   `db:"established" json:"established,omitempty"`
	Logo               *string   `db:"logo" json:"logo,omitempty"`
	ClubType           *string   `db:"club_type" json:"club_type,omitempty"`
	Website            *string   `db:"website" json:"website,omitempty"`
	Chairman           *int64    `db:"chairman" json:"chairman,omitempty"`
	GeneralSecretary   *int64    `db:"general_secretary" json:"general_secretary,omitempty"`
	Treasurer          *int64    `db:"treasurer" json:"treasurer,omitempty"`
	WelfareOfficer     *int64    `db:"welfare_officer" json:"welfare_officer,omitempty"`
	Registrar          *int64    `db:"registrar" json:"registrar,omitempty"`
	Admin              *int64    `db:"admin" json:"admin,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// ClubApplication mirrors the club columns plus a review status. Accepting
// an application copies it into the clubs table.
type ClubApplication struct {
	ID                 int64                 `db:"id" json:"id"`
	Name               string                `db:"name" json:"name"`
	PrimaryContact     *string               `db:"primary_club_contact" json:"primary_club_contact,omitempty"`
	PrimaryPosition    *string               `db:"primary_position_in_the_club" json:"primary_position_in_the_club,omitempty"`
	PrimaryPhoneNumber *string               `db:"primary_phone_number" json:"primary_phone_number,omitempty"`
	PrimaryEmail       *string               `db:"primary_email" json:"primary_email,omitempty"`
	SecondaryContact   *string               `db:"secondary_club_contact" json:"secondary_club_contact,omitempty"`
	SecondaryPhone     *string               `db:"secondary_phone_number" json:"secondary_phone_number,omitempty"`
	SecondaryEmail     *string               `db:"secondary_email" json:"secondary_email,omitempty"`
	GroundOne          *string               `db:"ground_1" json:"ground_1,omitempty"`
	GroundTwo          *string               `db:"ground_2" json:"ground_2,omitempty"`
	Established        *string               `db:"established" json:"established,omitempty"`
	Logo               *string               `db:"logo" json:"logo,omitempty"`
	ClubType           *string               `db:"club_type" json:"club_type,omitempty"`
	Website            *string               `db:"website" json:"website,omitempty"`
	Status             ClubApplicationStatus `db:"status" json:"status"`
	CreatedAt          time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time             `db:"updated_at" json:"updated_at"`
}
