package poker

import "fmt"

// HandResult records who was paid at the end of a hand
type HandResult struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
	Pot        int    `json:"pot"`
	Hand       string `json:"hand"`
}

const (
	DeclaredByOwner = "Declared by room owner"
	EverybodyFolded = "Everyone else folded"
)

// award pays pot to the seat and leaves the hand inert
func (r *Room) award(s *Seat, pot int, reason string) HandResult {
	s.Chips += pot
	r.CurrentPot = 0
	r.InHand = false
	r.ActingPlayerID = ""
	r.LastAction = fmt.Sprintf("%s won %d chips", s.Name, pot)
	return HandResult{WinnerID: s.ID, WinnerName: s.Name, Pot: pot, Hand: reason}
}

func (r *Room) awardUncontested(s *Seat) HandResult {
	last := r.LastAction
	r.CurrentRound = Showdown
	res := r.award(s, r.CurrentPot, EverybodyFolded)
	r.LastAction = last + "; " + r.LastAction
	return res
}
