package poker

import (
	"fmt"
	"strings"
)

// DefaultSettings mirror the values a room gets when the creator leaves them out
var DefaultSettings = Settings{
	MaxPlayers:    6,
	SmallBlind:    5,
	BigBlind:      10,
	StartingChips: 1000,
}

const MaxSeats = 10

// Validate checks the table parameters
func (s Settings) Validate() error {
	switch {
	case s.SmallBlind <= 0:
		return fmt.Errorf("%w: small blind must be positive", ErrInvalidSettings)
	case s.BigBlind < s.SmallBlind:
		return fmt.Errorf("%w: big blind must be at least the small blind", ErrInvalidSettings)
	case s.MaxPlayers < 2 || s.MaxPlayers > MaxSeats:
		return fmt.Errorf("%w: max players must be between 2 and %d", ErrInvalidSettings, MaxSeats)
	case s.StartingChips < s.BigBlind:
		return fmt.Errorf("%w: starting chips must cover the big blind", ErrInvalidSettings)
	}
	return nil
}

// NewRoom opens a table with the owner in seat 0
func NewRoom(id, name string, owner Seat, settings Settings) (*Room, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	owner.Position = 0
	owner.Chips = settings.StartingChips
	owner.IsActive = true
	owner.IsDealer, owner.IsSmallBlind, owner.IsBigBlind = false, false, false
	owner.CurrentBet, owner.TotalBet = 0, 0

	return &Room{
		ID:             id,
		Name:           name,
		OwnerID:        owner.UserID,
		OwnerName:      owner.Name,
		MaxPlayers:     settings.MaxPlayers,
		SmallBlind:     settings.SmallBlind,
		BigBlind:       settings.BigBlind,
		StartingChips:  settings.StartingChips,
		Players:        []Seat{owner},
		CurrentRound:   Preflop,
		ButtonPosition: -1,
		ActedPlayers:   map[string]bool{},
		CommunityCards: []string{},
		LastAction:     "Room created",
		IsActive:       true,
	}, nil
}

// AddPlayer seats a new player at the end of the seating order with the
// room's starting stack. Someone joining mid-hand sits out until the next one.
func AddPlayer(room *Room, seat Seat) (*Room, error) {
	if len(room.Players) >= room.MaxPlayers {
		return nil, ErrRoomFull
	}
	for _, p := range room.Players {
		if strings.EqualFold(p.Name, seat.Name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, seat.Name)
		}
	}

	r := room.Clone()
	seat.Position = len(r.Players)
	seat.Chips = r.StartingChips
	seat.IsActive = !r.InHand
	seat.IsDealer, seat.IsSmallBlind, seat.IsBigBlind = false, false, false
	seat.CurrentBet, seat.TotalBet = 0, 0
	r.Players = append(r.Players, seat)
	r.LastAction = fmt.Sprintf("%s joined the room", seat.Name)
	r.DeriveIndices()
	return r, nil
}

// RemovePlayer takes a seat away and closes the gap in positions
func RemovePlayer(room *Room, playerID string) (*Room, error) {
	gone := room.Seat(playerID)
	if gone == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	if room.InHand && gone.IsActive {
		return nil, ErrStillInHand
	}

	r := room.Clone()
	players := make([]Seat, 0, len(r.Players)-1)
	for _, p := range r.Players {
		if p.ID != playerID {
			players = append(players, p)
		}
	}
	for i := range players {
		players[i].Position = i
	}
	r.Players = players
	// Keep the button pointing just before the seat that should deal next.
	if gone.Position <= r.ButtonPosition {
		r.ButtonPosition--
	}
	delete(r.ActedPlayers, playerID)
	r.LastAction = fmt.Sprintf("%s left the room", gone.Name)
	r.DeriveIndices()
	return r, nil
}

// StartHand deals a new hand: it resets the hand state, moves the button,
// posts the blinds and hands the action to the first player.
func StartHand(room *Room) (*Room, error) {
	if room.InHand {
		return nil, ErrHandInProgress
	}

	r := room.Clone()
	r.CurrentPot = 0
	r.CurrentRound = Preflop
	r.CommunityCards = []string{}
	r.ActedPlayers = map[string]bool{}
	r.ActingPlayerID = ""
	for i := range r.Players {
		p := &r.Players[i]
		p.CurrentBet = 0
		p.TotalBet = 0
		p.IsActive = p.Chips > 0
	}
	if !r.assignRoles() {
		return nil, ErrInsufficientPlayers
	}

	r.collectBlinds()
	r.HandNumber++
	r.InHand = true
	if first := r.firstToAct(Preflop); first != nil {
		r.ActingPlayerID = first.ID
	}

	sb, bb := r.SmallBlindSeat(), r.BigBlindSeat()
	started := fmt.Sprintf("Hand #%d started: %s posted %d, %s posted %d",
		r.HandNumber, sb.Name, sb.TotalBet, bb.Name, bb.TotalBet)
	r.LastAction = started

	// Short stacks can leave nobody with a decision to make.
	if r.bettingLocked() {
		for r.CurrentRound != Showdown {
			r.nextRound()
		}
		r.LastAction = started + "; " + r.LastAction
	}
	r.DeriveIndices()
	return r, nil
}

// ApplyAction validates and applies one player's action, then closes the
// betting round if it is complete. Validation happens before anything is
// changed; on error the input room is untouched and no room is returned.
// The HandResult is non-nil when the action ended the hand.
func ApplyAction(room *Room, a Action) (*Room, *HandResult, error) {
	if _, _, err := room.validate(a); err != nil {
		return nil, nil, err
	}

	r := room.Clone()
	s, amount, _ := r.validate(a)
	r.apply(s, a, amount)
	r.advanceTurn()

	var res *HandResult
	if r.RoundComplete() {
		res = r.finishRound()
	}
	r.DeriveIndices()
	return r, res, nil
}

// AdvanceRound force-closes the current betting round and moves to the next
// phase. ApplyAction calls the same transition when a round completes.
func AdvanceRound(room *Room) (*Room, error) {
	if !room.InHand {
		return nil, ErrNoHandInProgress
	}
	if room.CurrentRound == Showdown {
		return nil, ErrBettingClosed
	}
	r := room.Clone()
	r.nextRound()
	r.DeriveIndices()
	return r, nil
}

// SettleHand pays pot to the declared winner and ends the hand. The amount
// is trusted: it need not equal the current pot, so a split can be settled
// with several calls.
func SettleHand(room *Room, winnerID string, pot int) (*Room, HandResult, error) {
	if room.Seat(winnerID) == nil {
		return nil, HandResult{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, winnerID)
	}
	if pot <= 0 {
		return nil, HandResult{}, ErrInvalidPot
	}
	r := room.Clone()
	res := r.award(r.Seat(winnerID), pot, DeclaredByOwner)
	r.DeriveIndices()
	return r, res, nil
}
