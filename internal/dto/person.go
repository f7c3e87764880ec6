package dto

// UpsertPersonRequest adds a new person or, when ID is set, updates the
// named fields of an existing one. Only declared fields reach the store.
type UpsertPersonRequest struct {
	ID             *int64  `json:"id"`
	FirstName      *string `json:"fname"`
	LastName       *string `json:"lname"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Role           *string `json:"role"`
	Club           *int64  `json:"club"`
	Team           *int64  `json:"team"`
	LeaguePosition *string `json:"league_position"`
	ClubPosition   *string `json:"club_position"`
	Image          *string `json:"image"`
}

// PersonDetailsRequest fetches summaries for a batch of person ids.
type PersonDetailsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}
