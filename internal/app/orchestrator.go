package app

import (
	"context"
	"time"

	"github.com/dkeye/Debate/internal/core"
	"github.com/rs/zerolog/log"
)

// FactCheckFallback is what a requester receives whenever the oracle fails.
const FactCheckFallback = "Error processing the fact check request. Please try again later."

// FactChecker is the text-oracle that verifies or answers a claim.
type FactChecker interface {
	Verify(ctx context.Context, claim string) (string, error)
}

// Censor masks forbidden words in message text.
type Censor interface {
	Censor(text string) string
}

type JoinNotice string

const (
	// JoinSnapshot sends the current scores to the joining connection.
	JoinSnapshot JoinNotice = "snapshot"
	// JoinAnnounce tells every other member who joined.
	JoinAnnounce JoinNotice = "announce"
)

const timeLayout = "15:04:05"

var now = time.Now

// Orchestrator receives decoded transport events, drives rooms, polls and
// reactions, and issues outbound events.
type Orchestrator struct {
	Registry *Registry
	Rooms    *core.RoomRegistry
	Polls    *core.PollLedger
	Policy   Policy
	Oracle   FactChecker
	Censor   Censor

	JoinNotice JoinNotice
	Quorum     core.Quorum
}

func NewOrchestrator(oracle FactChecker) *Orchestrator {
	return &Orchestrator{
		Registry:   NewRegistry(),
		Rooms:      core.NewRoomRegistry(),
		Polls:      core.NewPollLedger(),
		Policy:     SimplePolicy{},
		Oracle:     oracle,
		JoinNotice: JoinSnapshot,
		Quorum:     core.DefaultQuorumRule(),
	}
}

// Connect registers a fresh connection.
func (o *Orchestrator) Connect(sess core.Session, cancel context.CancelFunc) {
	o.Registry.Bind(sess, cancel)
}

func (o *Orchestrator) broadcast(room *core.Room, except core.SessionID, typ string, payload any) {
	frame, err := core.Encode(typ, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Msg("encode broadcast")
		return
	}
	res := room.Broadcast(except, frame)
	if o.Policy == nil {
		return
	}
	for _, slow := range res.Dropped {
		switch o.Policy.OnBackPressure(room, slow) {
		case KickMember:
			log.Warn().Str("module", "app.orch").Str("sid", string(slow)).Str("topic", string(room.Topic())).Msg("kicking slow member")
			o.Registry.Cancel(slow)
		case MarkSlow, DropFrame, NoAction:
		}
	}
}

// SendTo delivers one event to a single connection.
func (o *Orchestrator) SendTo(sid core.SessionID, typ string, payload any) {
	sess, ok := o.Registry.GetSession(sid)
	if !ok {
		return
	}
	frame, err := core.Encode(typ, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Msg("encode direct")
		return
	}
	if err := sess.Signal().TrySend(frame); err != nil {
		log.Warn().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Str("type", typ).Msg("direct send dropped")
	}
}
