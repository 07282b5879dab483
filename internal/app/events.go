package app

import (
	"github.com/dkeye/Debate/internal/domain"
)

// Outbound event types.
const (
	EventReceiveMessage      = "receiveMessage"
	EventReceiveVoiceMessage = "receiveVoiceMessage"
	EventPollUpdate          = "pollUpdate"
	EventUpdatePoints        = "updatePoints"
	EventReactionUpdate      = "reactionUpdate"
	EventFactCheckResult     = "factCheckResult"
	EventUserJoined          = "userJoined"
	EventUserLeft            = "userLeft"
	EventPong                = "pong"
	EventError               = "error"
)

// Inbound event types.
const (
	EventJoinDebate       = "joinDebate"
	EventLeaveDebate      = "leaveDebate"
	EventSendMessage      = "sendMessage"
	EventSendVoiceMessage = "sendVoiceMessage"
	EventVotePoll         = "votePoll"
	EventCheckFact        = "checkFact"
	EventAddReaction      = "addReaction"
	EventPing             = "ping"
)

type MessagePayload struct {
	ID         domain.MessageID `json:"id"`
	Text       string           `json:"text"`
	Team       domain.Team      `json:"team"`
	Username   string           `json:"username"`
	Timestamp  string           `json:"timestamp"`
	IsQuestion bool             `json:"isQuestion"`
	IsAnswer   bool             `json:"isAnswer"`
	PollID     *domain.PollID   `json:"pollId"`
}

type VoicePayload struct {
	AudioURL  string      `json:"audioUrl"`
	Team      domain.Team `json:"team"`
	Username  string      `json:"username"`
	Timestamp string      `json:"timestamp"`
}

type PollUpdatePayload struct {
	PollID     domain.PollID `json:"pollId"`
	Votes      domain.Tally  `json:"votes"`
	TotalVotes int           `json:"totalVotes"`
}

type ReactionPayload struct {
	MessageID domain.MessageID `json:"messageId"`
	Reactions domain.Reactions `json:"reactions"`
}

type FactCheckPayload struct {
	Original  string `json:"original"`
	Result    string `json:"result"`
	Timestamp string `json:"timestamp"`
}

type MemberPayload struct {
	Username string      `json:"username"`
	Team     domain.Team `json:"team"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
