package dto

// PlayerRegistrationRequest submits a new player application. The field set
// is declared statically; unknown JSON keys are dropped at decode time.
type PlayerRegistrationRequest struct {
	FirstName   string  `json:"fname" binding:"required"`
	LastName    string  `json:"lname" binding:"required"`
	DateOfBirth *string `json:"date_of_birth"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	ClubID      *int64  `json:"club_id"`
	Signature   *string `json:"signature"`
	Terms       bool    `json:"terms"`
}

// PlayerTransferRequest submits a transfer of a registered player.
type PlayerTransferRequest struct {
	PlayerID       int64   `json:"player_id" binding:"required"`
	FromClubID     *int64  `json:"from_club_id"`
	ToClubID       *int64  `json:"to_club_id"`
	TransferReason *string `json:"transfer_reason"`
	Signature      *string `json:"signature"`
	Terms          bool    `json:"terms"`
}

// ApplicationDecisionRequest carries a party's approval of an application.
type ApplicationDecisionRequest struct {
	ID         int64  `json:"id" binding:"required"`
	ApprovedBy string `json:"approvedBy"`
	RejectedBy string `json:"rejectedBy"`
}

// UpdatePlayerClubRequest directly reassigns a player to a new club.
type UpdatePlayerClubRequest struct {
	PlayerID  int64  `json:"playerId" binding:"required"`
	NewClubID *int64 `json:"newClubId"`
}
