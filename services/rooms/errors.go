package rooms

import "errors"

var (
	ErrForbidden     = errors.New("only the room owner can do that")
	ErrNotYourSeat   = errors.New("that seat belongs to another player")
	ErrWrongPassword = errors.New("wrong room password")
	ErrAlreadySeated = errors.New("you already have a seat in this room")
	ErrNameRequired  = errors.New("room name is required")
)
