package app

import (
	"errors"
	"fmt"

	"github.com/dkeye/Debate/internal/core"
)

var (
	// ErrInvalidRequest marks malformed input; the sender gets an error event.
	ErrInvalidRequest = errors.New("invalid request")

	ErrNotMember    = errors.New("not a member of the room")
	ErrRoomNotFound = errors.New("room not found")
	ErrUnknownPoll  = errors.New("unknown poll")
	ErrAlreadyVoted = core.ErrAlreadyVoted
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
