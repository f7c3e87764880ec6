package models

import "time"

// Approval flag values as stored in the tri-state flag columns. A NULL flag
// means the party has not decided yet.
const (
	FlagApproved = "1"
	FlagRejected = "0"
)

// ApplicationStatus is the submission lifecycle marker for player
// applications and transfers.
type ApplicationStatus string

const (
	ApplicationPending ApplicationStatus = "pending"
)

// ApprovalParty identifies one of the two sides whose sign-off an
// application or transfer requires.
type ApprovalParty string

const (
	PartyClub     ApprovalParty = "club"
	PartyLeague   ApprovalParty = "league"
	PartyFromClub ApprovalParty = "from_club"
	PartyToClub   ApprovalParty = "to_club"
)

// Decision is a party's verdict on an application or transfer.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// FlagValue maps the decision onto the stored tri-state flag value.
func (d Decision) FlagValue() string {
	if d == DecisionApprove {
		return FlagApproved
	}
	return FlagRejected
}

// PlayerApplication is a player's registration request. Both the club and
// the league must approve before the applicant becomes a Person with the
// player role.
type PlayerApplication struct {
	ID             int64             `db:"id" json:"id"`
	FirstName      string            `db:"fname" json:"fname"`
	LastName       string            `db:"lname" json:"lname"`
	DateOfBirth    *string           `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Email          string            `db:"email" json:"email"`
	PhoneNumber    *string           `db:"phone_number" json:"phone_number,omitempty"`
	Address        *string           `db:"address" json:"address,omitempty"`
	Club           *int64            `db:"club" json:"club,omitempty"`
	Signature      *string           `db:"signature" json:"signature,omitempty"`
	Terms          bool              `db:"terms" json:"terms"`
	ClubApproval   *string           `db:"club_appr" json:"club_appr,omitempty"`
	LeagueApproval *string           `db:"league_appr" json:"league_appr,omitempty"`
	Status         ApplicationStatus `db:"status" json:"status"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}

// ApplicationFlags carries the pair of application approval flags as they
// stood immediately after a decision write.
type ApplicationFlags struct {
	ClubApproval   *string `db:"club_appr"`
	LeagueApproval *string `db:"league_appr"`
}

// BothApproved reports whether the two parties have both approved.
func (f ApplicationFlags) BothApproved() bool {
	return flagApproved(f.ClubApproval) && flagApproved(f.LeagueApproval)
}

// PlayerTransfer records a request to move a registered player between
// clubs. The registration number is the person id of the moving player.
type PlayerTransfer struct {
	ID                 int64             `db:"id" json:"id"`
	RegistrationNumber int64             `db:"registration_number" json:"registration_number"`
	FromClub           *int64            `db:"from_club" json:"from_club,omitempty"`
	NewClub            *int64            `db:"new_club" json:"new_club,omitempty"`
	TransferReason     *string           `db:"transfer_reason" json:"transfer_reason,omitempty"`
	Signature          *string           `db:"signature" json:"signature,omitempty"`
	Terms              bool              `db:"terms" json:"terms"`
	FromClubApproval   *string           `db:"from_club_appr" json:"from_club_appr,omitempty"`
	ToClubApproval     *string           `db:"to_club_appr" json:"to_club_appr,omitempty"`
	Status             ApplicationStatus `db:"status" json:"status"`
	CreatedAt          time.Time         `db:"created_at" json:"created_at"`
}

// TransferFlags carries the pair of transfer approval flags as they stood
// immediately after a decision write.
type TransferFlags struct {
	FromClubApproval *string `db:"from_club_appr"`
	ToClubApproval   *string `db:"to_club_appr"`
}

// BothApproved reports whether both clubs have approved.
func (f TransferFlags) BothApproved() bool {
	return flagApproved(f.FromClubApproval) && flagApproved(f.ToClubApproval)
}

func flagApproved(flag *string) bool {
	return flag != nil && *flag == FlagApproved
}
