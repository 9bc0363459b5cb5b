package poker

import "errors"

// Kind classifies engine failures for the caller
type Kind int

const (
	// NotFound: the referenced room or player does not exist. Not retried.
	NotFound Kind = iota + 1
	// IllegalAction: the request broke a rule; the room is unchanged and the
	// same actor may be prompted again.
	IllegalAction
	// Precondition: the table is not in a state that allows the request.
	Precondition
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case IllegalAction:
		return "illegal action"
	case Precondition:
		return "precondition failed"
	default:
		return "unknown"
	}
}

// Error is an engine failure with a Kind
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// KindOf returns the Kind of an engine error anywhere in err's chain, or 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

var (
	ErrRoomNotFound   = newError(NotFound, "room not found")
	ErrPlayerNotFound = newError(NotFound, "player not found")

	ErrPlayerInactive    = newError(IllegalAction, "player is not active in this hand")
	ErrNotYourTurn       = newError(IllegalAction, "it is not this player's turn")
	ErrCannotCheck       = newError(IllegalAction, "cannot check while facing a bet")
	ErrInsufficientChips = newError(IllegalAction, "not enough chips, go all-in instead")
	ErrInvalidRaise      = newError(IllegalAction, "invalid raise amount")
	ErrNoChips           = newError(IllegalAction, "player has no chips left")
	ErrUnknownAction     = newError(IllegalAction, "unknown action")
	ErrRoomFull          = newError(IllegalAction, "room is full")
	ErrDuplicateName     = newError(IllegalAction, "a player with this name is already seated")
	ErrStillInHand       = newError(IllegalAction, "player must fold before leaving a hand in progress")
	ErrInvalidPot        = newError(IllegalAction, "pot amount must be positive")
	ErrInvalidSettings   = newError(IllegalAction, "invalid room settings")

	ErrInsufficientPlayers = newError(Precondition, "at least two players with chips are needed to start a hand")
	ErrNoHandInProgress    = newError(Precondition, "no hand in progress")
	ErrBettingClosed       = newError(Precondition, "betting is closed for this hand")
	ErrHandInProgress      = newError(Precondition, "a hand is in progress")
)
