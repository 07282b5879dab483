package app

import (
	"errors"
	"fmt"

	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/domain"
	"github.com/rs/zerolog/log"
)

// VotePoll counts one vote and broadcasts the new tally, plus the team
// scores whenever the quorum holds.
func (o *Orchestrator) VotePoll(sid core.SessionID, req VoteRequest) error {
	if err := check(req); err != nil {
		return err
	}
	poll, ok := o.Polls.Get(domain.PollID(req.PollID))
	if !ok {
		return ErrUnknownPoll
	}
	room := poll.Room()
	if room.Topic() != domain.Topic(req.Topic) {
		return fmt.Errorf("%w: topic mismatch", ErrUnknownPoll)
	}

	out, err := poll.Cast(req.Username, domain.Choice(req.Vote), req.TotalVotes, o.Quorum)
	switch {
	case errors.Is(err, core.ErrPollClosed):
		return ErrUnknownPoll
	case err != nil:
		return err
	}
	log.Debug().Str("module", "app.orch").Str("poll", req.PollID).Str("voter", req.Username).Int("valid", out.Tally.Valid).Int("invalid", out.Tally.Invalid).Bool("scored", out.Scored).Msg("vote counted")

	if out.Scored {
		o.broadcast(room, "", EventUpdatePoints, out.Scores)
	}
	o.broadcast(room, "", EventPollUpdate, PollUpdatePayload{
		PollID:     poll.ID,
		Votes:      out.Tally,
		TotalVotes: out.Tally.Total(),
	})
	return nil
}
