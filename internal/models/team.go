package models

import "time"

// RosterSlotColumns lists the 15 positional roster columns of a team row:
// eleven starters followed by four substitutes, in the batting order the
// frontend renders.
var RosterSlotColumns = []string{
	"player1", "player2", "player3", "player4", "player5", "player6",
	"player7", "player8", "player9", "player10", "player11",
	"sub1", "sub2", "sub3", "sub4",
}

// Team holds a club's named side. Each roster slot is an independent
// nullable reference to a person id.
type Team struct {
	ID       int64   `db:"id" json:"id"`
	Name     *string `db:"name" json:"name,omitempty"`
	Club     *int64  `db:"club" json:"club,omitempty"`
	Player1  *int64  `db:"player1" json:"player1,omitempty"`
	Player2  *int64  `db:"player2" json:"player2,omitempty"`
	Player3  *int64  `db:"player3" json:"player3,omitempty"`
	Player4  *int64  `db:"player4" json:"player4,omitempty"`
	Player5  *int64  `db:"player5" json:"player5,omitempty"`
	Player6  *int64  `db:"player6" json:"player6,omitempty"`
	Player7  *int64  `db:"player7" json:"player7,omitempty"`
	Player8  *int64  `db:"player8" json:"player8,omitempty"`
	Player9  *int64  `db:"player9" json:"player9,omitempty"`
	Player10 *int64  `db:"player10" json:"player10,omitempty"`
	Player11 *int64  `db:"player11" json:"player11,omitempty"`
	Sub1     *int64  `db:"sub1" json:"sub1,omitempty"`
	Sub2     *int64  `db:"sub2" json:"sub2,omitempty"`
	Sub3     *int64  `db:"sub3" json:"sub3,omitempty"`
	Sub4     *int64  `db:"sub4" json:"sub4,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RosterSlots returns the slot values in positional order.
func (t *Team) RosterSlots() []*int64 {
	return []*int64{
		t.Player1, t.Player2, t.Player3, t.Player4, t.Player5, t.Player6,
		t.Player7, t.Player8, t.Player9, t.Player10, t.Player11,
		t.Sub1, t.Sub2, t.Sub3, t.Sub4,
	}
}

// RosterPlayerIDs returns the distinct, non-null person ids on the roster.
func (t *Team) RosterPlayerIDs() []int64 {
	seen := make(map[int64]struct{}, 15)
	ids := make([]int64, 0, 15)
	for _, slot := range t.RosterSlots() {
		if slot == nil {
			continue
		}
		if _, dup := seen[*slot]; dup {
			continue
		}
		seen[*slot] = struct{}{}
		ids = append(ids, *slot)
	}
	return ids
}

// TeamWithPlayers augments a team row with resolved player summaries in
// slot order.
type TeamWithPlayers struct {
	Team
	Players []PersonSummary `json:"players"`
}
