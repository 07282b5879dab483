package domain

// Member represents user's participation meta for a room.
// No transport or lifecycle logic here.
type Member struct {
	Username string `json:"username"`
	Team     Team   `json:"team"`
}

// NewMember avoids raw literals in adapters and keeps construction obvious.
func NewMember(username string, team Team) Member {
	return Member{Username: username, Team: team}
}
