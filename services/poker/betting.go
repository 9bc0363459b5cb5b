package poker

import (
	"fmt"
	"strings"
)

// ActionType is a betting decision
type ActionType string

const (
	Fold  ActionType = "fold"
	Check ActionType = "check"
	Call  ActionType = "call"
	Raise ActionType = "raise"
	AllIn ActionType = "all-in"
)

// ParseAction maps the wire name of an action to its ActionType
func ParseAction(s string) (ActionType, error) {
	switch a := ActionType(strings.ToLower(strings.TrimSpace(s))); a {
	case Fold, Check, Call, Raise, AllIn:
		return a, nil
	case "allin":
		return AllIn, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Action is one player's request against a room
type Action struct {
	PlayerID string     `json:"playerId"`
	Type     ActionType `json:"action"`
	Amount   int        `json:"amount,omitempty"`
}

// chipsFor validates the action for the seat and returns how many chips it
// moves into the pot. No state is touched.
func (r *Room) chipsFor(s *Seat, a Action) (int, error) {
	toCall := r.CallAmount(s)
	switch a.Type {
	case Fold:
		return 0, nil
	case Check:
		if toCall > 0 {
			return 0, fmt.Errorf("%w: %d to call", ErrCannotCheck, toCall)
		}
		return 0, nil
	case Call:
		if toCall > s.Chips {
			return 0, fmt.Errorf("%w: %d to call, %d left", ErrInsufficientChips, toCall, s.Chips)
		}
		return toCall, nil
	case Raise:
		if a.Amount <= 0 || a.Amount > s.Chips {
			return 0, fmt.Errorf("%w: %d with %d chips", ErrInvalidRaise, a.Amount, s.Chips)
		}
		if s.CurrentBet+a.Amount <= r.MaxCurrentBet() {
			return 0, fmt.Errorf("%w: bet of %d does not exceed %d", ErrInvalidRaise, s.CurrentBet+a.Amount, r.MaxCurrentBet())
		}
		return a.Amount, nil
	case AllIn:
		if s.Chips <= 0 {
			return 0, ErrNoChips
		}
		return s.Chips, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

func describe(s *Seat, a ActionType, amount int) string {
	switch a {
	case Fold:
		return fmt.Sprintf("%s folded", s.Name)
	case Check:
		return fmt.Sprintf("%s checked", s.Name)
	case Call:
		return fmt.Sprintf("%s called %d", s.Name, amount)
	case Raise:
		return fmt.Sprintf("%s raised to %d", s.Name, s.CurrentBet)
	default:
		return fmt.Sprintf("%s went all-in with %d", s.Name, amount)
	}
}

// validate checks everything about the action before any mutation happens
func (r *Room) validate(a Action) (*Seat, int, error) {
	if !r.InHand {
		return nil, 0, ErrNoHandInProgress
	}
	s := r.Seat(a.PlayerID)
	if s == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrPlayerNotFound, a.PlayerID)
	}
	if !s.IsActive {
		return nil, 0, ErrPlayerInactive
	}
	if r.CurrentRound == Showdown {
		return nil, 0, ErrBettingClosed
	}
	if !r.IsTurn(s.ID) {
		return nil, 0, ErrNotYourTurn
	}
	amount, err := r.chipsFor(s, a)
	if err != nil {
		return nil, 0, err
	}
	return s, amount, nil
}

// apply performs an already validated action
func (r *Room) apply(s *Seat, a Action, amount int) {
	if a.Type == Fold {
		s.IsActive = false
	} else {
		r.commit(s, amount)
	}
	r.ActedPlayers[s.ID] = true
	r.LastAction = describe(s, a.Type, amount)
}

// RoundComplete reports whether the current betting round is over: at most
// one player still contests the hand, or every contender with chips left has
// acted this round and matches the highest live bet.
func (r *Room) RoundComplete() bool {
	active := r.ActivePlayers()
	if len(active) <= 1 {
		return true
	}
	high := 0
	for _, p := range active {
		if p.CurrentBet > high {
			high = p.CurrentBet
		}
	}
	for _, p := range active {
		if !p.CanBet() {
			continue
		}
		if !r.ActedPlayers[p.ID] || p.CurrentBet != high {
			return false
		}
	}
	return true
}

// bettingLocked reports whether no further betting can happen this hand:
// nobody can bet, or the only seat that can has nothing left to answer.
func (r *Room) bettingLocked() bool {
	var bettors []*Seat
	high := 0
	for _, p := range r.ActivePlayers() {
		if p.CurrentBet > high {
			high = p.CurrentBet
		}
		if p.CanBet() {
			bettors = append(bettors, p)
		}
	}
	switch len(bettors) {
	case 0:
		return true
	case 1:
		return bettors[0].CurrentBet >= high
	}
	return false
}
