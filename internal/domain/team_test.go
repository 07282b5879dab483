package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTeam(t *testing.T) {
	tests := []struct {
		raw     string
		want    Team
		wantErr bool
	}{
		{raw: "team1", want: Team1},
		{raw: "team2", want: Team2},
		{raw: "team3", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "Team1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTeam(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownTeam)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(true, true)
	require.True(t, ok)
	require.Equal(t, PollQuestion, kind)

	kind, ok = KindOf(false, true)
	require.True(t, ok)
	require.Equal(t, PollAnswer, kind)

	_, ok = KindOf(false, false)
	require.False(t, ok)
}

func TestScoresOf(t *testing.T) {
	s := Scores{Team1: 4, Team2: 1}
	require.Equal(t, 4, s.Of(Team1))
	require.Equal(t, 1, s.Of(Team2))
	require.Equal(t, 0, s.Of(Team("x")))
}
