package core

import "github.com/dkeye/Debate/internal/domain"

const (
	QuestionAward  = 2
	AnswerAward    = 3
	InvalidPenalty = -1

	DefaultQuorum = 3
)

type QuorumSource string

const (
	// QuorumServer counts the votes held by the poll.
	QuorumServer QuorumSource = "server"
	// QuorumClient trusts the total reported by the voting client.
	QuorumClient QuorumSource = "client"
)

// Quorum decides when a poll tally starts to move team scores.
type Quorum struct {
	Threshold int
	Source    QuorumSource
}

func DefaultQuorumRule() Quorum {
	return Quorum{Threshold: DefaultQuorum, Source: QuorumServer}
}

func (q Quorum) Met(t domain.Tally, reported int) bool {
	total := t.Total()
	if q.Source == QuorumClient {
		total = reported
	}
	return total >= q.Threshold
}

// ValidPercentage is the share of valid votes in percent.
func ValidPercentage(t domain.Tally) float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Valid) / float64(t.Total()) * 100
}

// ScoreDelta is the score change a tally earns the poll's team: an award by
// kind when strictly more than half the votes are valid, a penalty otherwise.
func ScoreDelta(kind domain.PollKind, t domain.Tally) int {
	if ValidPercentage(t) <= 50 {
		return InvalidPenalty
	}
	switch kind {
	case domain.PollQuestion:
		return QuestionAward
	case domain.PollAnswer:
		return AnswerAward
	}
	return 0
}
