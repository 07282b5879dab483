package domain

// Topic identifies a debate room.
type Topic string

// Scores is the per-room team score pair. Both values stay >= 0.
type Scores struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

func (s Scores) Of(t Team) int {
	switch t {
	case Team1:
		return s.Team1
	case Team2:
		return s.Team2
	}
	return 0
}
