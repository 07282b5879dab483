package core

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dkeye/Debate/internal/domain"
	"github.com/stretchr/testify/require"
)

func openTestPoll(t *testing.T, kind domain.PollKind) (*PollLedger, *Poll) {
	t.Helper()
	rr := NewRoomRegistry()
	s, _ := newTestSession("alice")
	room, _ := rr.Join("climate", s, domain.NewMember("Alice", domain.Team1))
	l := NewPollLedger()
	return l, l.Open(room, kind, domain.Team1, "Alice", "is it warming?")
}

func TestPollLedger_OpenAndGet(t *testing.T) {
	l, p := openTestPoll(t, domain.PollQuestion)
	require.True(t, strings.HasPrefix(string(p.ID), "poll-"))

	got, ok := l.Get(p.ID)
	require.True(t, ok)
	require.Same(t, p, got)

	_, ok = l.Get("poll-missing")
	require.False(t, ok)
}

func TestPoll_CastOneVotePerUser(t *testing.T) {
	_, p := openTestPoll(t, domain.PollQuestion)
	q := DefaultQuorumRule()

	_, err := p.Cast("bob", domain.ChoiceValid, 1, q)
	require.NoError(t, err)
	_, err = p.Cast("bob", domain.ChoiceInvalid, 2, q)
	require.ErrorIs(t, err, ErrAlreadyVoted)

	require.Equal(t, domain.Tally{Valid: 1}, p.Tally())
}

// Votes valid, valid, invalid then invalid: +2 once the quorum is reached,
// then -1 when the tally drops to exactly half.
func TestPoll_CastScoresIncrementally(t *testing.T) {
	_, p := openTestPoll(t, domain.PollQuestion)
	q := DefaultQuorumRule()

	out, err := p.Cast("u1", domain.ChoiceValid, 1, q)
	require.NoError(t, err)
	require.False(t, out.Scored)

	out, err = p.Cast("u2", domain.ChoiceValid, 2, q)
	require.NoError(t, err)
	require.False(t, out.Scored)

	out, err = p.Cast("u3", domain.ChoiceInvalid, 3, q)
	require.NoError(t, err)
	require.True(t, out.Scored)
	require.Equal(t, domain.Scores{Team1: 2}, out.Scores)

	out, err = p.Cast("u4", domain.ChoiceInvalid, 4, q)
	require.NoError(t, err)
	require.True(t, out.Scored)
	require.Equal(t, domain.Tally{Valid: 2, Invalid: 2}, out.Tally)
	require.Equal(t, domain.Scores{Team1: 1}, out.Scores)
}

func TestPoll_CastClientQuorumTrustsReportedTotal(t *testing.T) {
	_, p := openTestPoll(t, domain.PollAnswer)
	q := Quorum{Threshold: 3, Source: QuorumClient}

	out, err := p.Cast("u1", domain.ChoiceValid, 3, q)
	require.NoError(t, err)
	require.True(t, out.Scored)
	require.Equal(t, domain.Scores{Team1: 3}, out.Scores)
}

func TestPoll_CastNeverDrivesScoresNegative(t *testing.T) {
	_, p := openTestPoll(t, domain.PollAnswer)
	q := Quorum{Threshold: 1, Source: QuorumServer}
	for i := 0; i < 5; i++ {
		out, err := p.Cast(fmt.Sprintf("u%d", i), domain.ChoiceInvalid, 0, q)
		require.NoError(t, err)
		require.GreaterOrEqual(t, out.Scores.Team1, 0)
		require.GreaterOrEqual(t, out.Scores.Team2, 0)
	}
}

func TestPoll_ConcurrentVotesCountedOnce(t *testing.T) {
	_, p := openTestPoll(t, domain.PollQuestion)
	q := DefaultQuorumRule()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for j := 0; j < 3; j++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = p.Cast(fmt.Sprintf("u%d", i), domain.ChoiceValid, 0, q)
			}(i)
		}
	}
	wg.Wait()

	require.Equal(t, 20, p.Tally().Total())
}

func TestPollLedger_DropRoom(t *testing.T) {
	rr := NewRoomRegistry()
	s, _ := newTestSession("a")
	one, _ := rr.Join("one", s, domain.NewMember("A", domain.Team1))
	two, _ := rr.Join("two", s, domain.NewMember("A", domain.Team1))
	l := NewPollLedger()
	l.Open(one, domain.PollQuestion, domain.Team1, "A", "q")
	l.Open(one, domain.PollAnswer, domain.Team1, "A", "a")
	kept := l.Open(two, domain.PollAnswer, domain.Team1, "A", "a")

	require.Equal(t, 2, l.DropRoom(one))
	require.Equal(t, 1, l.Len())
	_, ok := l.Get(kept.ID)
	require.True(t, ok)
}

func TestPoll_CastOnReclaimedRoom(t *testing.T) {
	rr := NewRoomRegistry()
	s, _ := newTestSession("a")
	room, _ := rr.Join("t", s, domain.NewMember("A", domain.Team1))
	p := NewPollLedger().Open(room, domain.PollQuestion, domain.Team1, "A", "q")
	rr.Leave("a")

	_, err := p.Cast("b", domain.ChoiceValid, 0, DefaultQuorumRule())
	require.ErrorIs(t, err, ErrPollClosed)
}
