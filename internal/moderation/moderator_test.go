package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censor(t *testing.T) {
	m, err := NewModerator([]string{"liar", "fraud"}, '*')
	require.NoError(t, err)
	require.NotNil(t, m)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "you are a liar", "you are a ****"},
		{"case", "LIAR!", "****!"},
		{"leet", "total fr4ud here", "total ***** here"},
		{"untouched", "a fair point", "a fair point"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, m.Censor(tt.in))
		})
	}
}

func TestNewModerator_EmptyListDisables(t *testing.T) {
	m, err := NewModerator(nil, '*')
	require.NoError(t, err)
	require.Nil(t, m)

	m, err = NewModerator([]string{" ", "..."}, '*')
	require.NoError(t, err)
	require.Nil(t, m)
}
