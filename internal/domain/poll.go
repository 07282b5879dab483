package domain

type (
	PollID   string
	PollKind string
	Choice   string
)

const (
	PollQuestion PollKind = "question"
	PollAnswer   PollKind = "answer"
)

const (
	ChoiceValid   Choice = "valid"
	ChoiceInvalid Choice = "invalid"
)

// Tally is the vote count of a poll.
type Tally struct {
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

func (t Tally) Total() int { return t.Valid + t.Invalid }

// KindOf returns the poll kind for a flagged message; a question flag wins
// over an answer flag. ok is false when neither flag is set.
func KindOf(isQuestion, isAnswer bool) (PollKind, bool) {
	switch {
	case isQuestion:
		return PollQuestion, true
	case isAnswer:
		return PollAnswer, true
	}
	return "", false
}
