// Package domain contains entity without logic, just meta-data
package domain

import "errors"

type Team string

const (
	Team1 Team = "team1"
	Team2 Team = "team2"
)

var ErrUnknownTeam = errors.New("unknown team")

func (t Team) Valid() bool {
	return t == Team1 || t == Team2
}

// ParseTeam rejects anything outside the two known teams so that a bad
// client value never becomes a score key.
func ParseTeam(raw string) (Team, error) {
	t := Team(raw)
	if !t.Valid() {
		return "", ErrUnknownTeam
	}
	return t, nil
}
