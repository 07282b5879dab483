package core

import (
	"errors"
	"sync"

	"github.com/dkeye/Debate/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrAlreadyVoted = errors.New("already voted")
	ErrPollClosed   = errors.New("poll room reclaimed")
)

// Poll is a validity vote on a flagged question or answer. It stays open
// for as long as its room lives.
type Poll struct {
	ID     domain.PollID
	Text   string
	Kind   domain.PollKind
	Team   domain.Team
	Author string

	room *Room

	mu     sync.Mutex
	tally  domain.Tally
	voters map[string]struct{}
}

// VoteOutcome is the state a single accepted vote left behind.
type VoteOutcome struct {
	Tally  domain.Tally
	Scored bool
	Scores domain.Scores
}

func (p *Poll) Room() *Room { return p.room }

func (p *Poll) Tally() domain.Tally {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tally
}

// Cast records one vote per username and, once the quorum holds, applies
// the resulting score delta to the poll's room. Tally and score update run
// in a single critical section so concurrent votes on a poll are applied in
// the order they were counted.
func (p *Poll) Cast(voter string, choice domain.Choice, reported int, q Quorum) (VoteOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.room.Closed() {
		return VoteOutcome{}, ErrPollClosed
	}
	if _, ok := p.voters[voter]; ok {
		return VoteOutcome{}, ErrAlreadyVoted
	}
	switch choice {
	case domain.ChoiceValid:
		p.tally.Valid++
	case domain.ChoiceInvalid:
		p.tally.Invalid++
	default:
		return VoteOutcome{}, errors.New("unknown choice")
	}
	p.voters[voter] = struct{}{}

	out := VoteOutcome{Tally: p.tally}
	if q.Met(p.tally, reported) {
		out.Scored = true
		out.Scores = p.room.ApplyDelta(p.Team, ScoreDelta(p.Kind, p.tally))
	}
	return out, nil
}

// PollLedger tracks in-flight polls by id.
type PollLedger struct {
	mu    sync.RWMutex
	polls map[domain.PollID]*Poll
}

func NewPollLedger() *PollLedger {
	return &PollLedger{polls: make(map[domain.PollID]*Poll)}
}

func newPollID() domain.PollID {
	return domain.PollID("poll-" + uuid.NewString())
}

// Open creates a poll attached to room.
func (l *PollLedger) Open(room *Room, kind domain.PollKind, team domain.Team, author, text string) *Poll {
	p := &Poll{
		ID:     newPollID(),
		Text:   text,
		Kind:   kind,
		Team:   team,
		Author: author,
		room:   room,
		voters: make(map[string]struct{}),
	}
	l.mu.Lock()
	l.polls[p.ID] = p
	l.mu.Unlock()
	log.Info().Str("module", "core.polls").Str("poll", string(p.ID)).Str("topic", string(room.Topic())).Str("kind", string(kind)).Msg("poll opened")
	return p
}

func (l *PollLedger) Get(id domain.PollID) (*Poll, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.polls[id]
	return p, ok
}

// DropRoom forgets every poll of a reclaimed room.
func (l *PollLedger) DropRoom(room *Room) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for id, p := range l.polls {
		if p.room == room {
			delete(l.polls, id)
			n++
		}
	}
	if n > 0 {
		log.Info().Str("module", "core.polls").Str("topic", string(room.Topic())).Int("dropped", n).Msg("polls dropped")
	}
	return n
}

func (l *PollLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.polls)
}
