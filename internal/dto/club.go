package dto

// ClubRegistrationRequest submits a club application for league review.
type ClubRegistrationRequest struct {
	Name               string  `json:"name" binding:"required"`
	PrimaryContact     *string `json:"primary_club_contact"`
	PrimaryPosition    *string `json:"primary_position_in_the_club"`
	PrimaryPhoneNumber *string `json:"primary_phone_number"`
	PrimaryEmail       *string `json:"primary_email" validate:"omitempty,email"`
	SecondaryContact   *string `json:"secondary_club_contact"`
	SecondaryPhone     *string `json:"secondary_phone_number"`
	SecondaryEmail     *string `json:"secondary_email" validate:"omitempty,email"`
	GroundOne          *string `json:"ground_1"`
	GroundTwo          *string `json:"ground_2"`
	Established        *string `json:"established"`
	Logo               *string `json:"logo"`
	ClubType           *string `json:"club_type"`
	Website            *string `json:"website"`
}

// UpsertClubRequest creates a club or, when ID is set, updates the named
// fields of an existing one.
type UpsertClubRequest struct {
	ID                 *int64  `json:"id"`
	Name               *string `json:"name"`
	PrimaryContact     *string `json:"primary_club_contact"`
	PrimaryPosition    *string `json:"primary_position_in_the_club"`
	PrimaryPhoneNumber *string `json:"primary_phone_number"`
	PrimaryEmail       *string `json:"primary_email" validate:"omitempty,email"`
	SecondaryContact   *string `json:"secondary_club_contact"`
	SecondaryPhone     *string `json:"secondary_phone_number"`
	SecondaryEmail     *string `json:"secondary_email" validate:"omitempty,email"`
	GroundOne          *string `json:"ground_1"`
	GroundTwo          *string `json:"ground_2"`
	Established        *string `json:"established"`
	Logo               *string `json:"logo"`
	ClubType           *string `json:"club_type"`
	Website            *string `json:"website"`
	Chairman           *int64  `json:"chairman"`
	GeneralSecretary   *int64  `json:"general_secretary"`
	Treasurer          *int64  `json:"treasurer"`
	WelfareOfficer     *int64  `json:"welfare_officer"`
	Registrar          *int64  `json:"registrar"`
	Admin              *int64  `json:"admin"`
}

// ReviewClubApplicationRequest identifies the application under review.
type ReviewClubApplicationRequest struct {
	ID int64 `json:"id" binding:"required"`
}
