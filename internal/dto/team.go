package dto

// UpsertTeamRequest creates a team or, when ID is set, updates the named
// fields of an existing one. Roster slots are individually addressable.
type UpsertTeamRequest struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Club     *int64  `json:"club"`
	Player1  *int64  `json:"player1"`
	Player2  *int64  `json:"player2"`
	Player3  *int64  `json:"player3"`
	Player4  *int64  `json:"player4"`
	Player5  *int64  `json:"player5"`
	Player6  *int64  `json:"player6"`
	Player7  *int64  `json:"player7"`
	Player8  *int64  `json:"player8"`
	Player9  *int64  `json:"player9"`
	Player10 *int64  `json:"player10"`
	Player11 *int64  `json:"player11"`
	Sub1     *int64  `json:"sub1"`
	Sub2     *int64  `json:"sub2"`
	Sub3     *int64  `json:"sub3"`
	Sub4     *int64  `json:"sub4"`
}
