package app

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type JoinRequest struct {
	Topic    string `json:"topic" validate:"required,max=128"`
	Username string `json:"username" validate:"required,max=36"`
	Team     string `json:"team" validate:"required,oneof=team1 team2"`
}

type LeaveRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type MessageRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Text       string `json:"text" validate:"required,max=4096"`
	Team       string `json:"team" validate:"required,oneof=team1 team2"`
	Username   string `json:"username" validate:"required,max=36"`
	IsQuestion bool   `json:"isQuestion"`
	IsAnswer   bool   `json:"isAnswer"`
}

type VoiceRequest struct {
	Topic    string `json:"topic" validate:"required"`
	AudioURL string `json:"audioUrl" validate:"required"`
	Team     string `json:"team" validate:"required,oneof=team1 team2"`
	Username string `json:"username" validate:"required,max=36"`
}

type VoteRequest struct {
	PollID     string `json:"pollId" validate:"required"`
	Vote       string `json:"vote" validate:"required,oneof=valid invalid"`
	Username   string `json:"username" validate:"required,max=36"`
	TotalVotes int    `json:"totalVotes" validate:"gte=0"`
	Topic      string `json:"topic" validate:"required"`
	// Team is informational; the poll's own team is scored.
	Team string `json:"team" validate:"omitempty,oneof=team1 team2"`
}

type FactCheckRequest struct {
	Text string `json:"text" validate:"required,max=2048"`
}

type ReactionRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	Emoji     string `json:"emoji" validate:"required,max=32"`
	Username  string `json:"username" validate:"required,max=36"`
	Topic     string `json:"topic" validate:"required"`
}

func check(req any) error {
	if err := validate.Struct(req); err != nil {
		return invalid(err)
	}
	return nil
}
