package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionRateLimiter_Window(t *testing.T) {
	clock := time.Unix(1000, 0)
	rl := NewSessionRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return clock }

	require.True(t, rl.Allow("a"))
	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))
	require.True(t, rl.Allow("b"))

	clock = clock.Add(61 * time.Second)
	require.True(t, rl.Allow("a"))

	rl.Forget("a")
	require.True(t, rl.Allow("a"))
}

func TestSessionRateLimiter_Disabled(t *testing.T) {
	rl := NewSessionRateLimiter(0, time.Minute)
	for i := 0; i < 10; i++ {
		require.True(t, rl.Allow("a"))
	}
	var nilLimiter *SessionRateLimiter
	require.True(t, nilLimiter.Allow("a"))
}
