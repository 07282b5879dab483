package core

import (
	"testing"

	"github.com/dkeye/Debate/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestReactionIndex_KeepsReactionOrder(t *testing.T) {
	ri := NewReactionIndex()
	require.True(t, ri.Add("msg-1", "👍", "Alice"))
	require.True(t, ri.Add("msg-1", "👍", "Bob"))

	require.Equal(t, domain.Reactions{"👍": {"Alice", "Bob"}}, ri.Snapshot("msg-1"))
}

func TestReactionIndex_Idempotent(t *testing.T) {
	once := NewReactionIndex()
	once.Add("m", "🔥", "Alice")

	twice := NewReactionIndex()
	twice.Add("m", "🔥", "Alice")
	require.False(t, twice.Add("m", "🔥", "Alice"))

	require.Equal(t, once.Snapshot("m"), twice.Snapshot("m"))
}

func TestReactionIndex_SnapshotIsFullAndDetached(t *testing.T) {
	ri := NewReactionIndex()
	ri.Add("m", "👍", "Alice")
	ri.Add("m", "👎", "Bob")
	ri.Add("other", "👍", "Carol")

	snap := ri.Snapshot("m")
	require.Equal(t, domain.Reactions{"👍": {"Alice"}, "👎": {"Bob"}}, snap)

	snap["👍"][0] = "Mallory"
	require.Equal(t, []string{"Alice"}, ri.Snapshot("m")["👍"])
	require.Empty(t, ri.Snapshot("unknown"))
	require.Equal(t, 2, ri.Len())
}

func TestRoom_ReactReturnsFullState(t *testing.T) {
	room := newRoom("t")
	room.React("msg-1", "👍", "Alice")
	got := room.React("msg-1", "👍", "Bob")
	require.Equal(t, domain.Reactions{"👍": {"Alice", "Bob"}}, got)
}
