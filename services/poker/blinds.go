package poker

// commit moves amount chips from the seat into its bets and the pot
func (r *Room) commit(s *Seat, amount int) {
	s.Chips -= amount
	s.CurrentBet += amount
	s.TotalBet += amount
	r.CurrentPot += amount
}

// postBlind takes min(blind, chips) from the seat. Short stacks post all-in.
func (r *Room) postBlind(s *Seat, blind int) int {
	if s == nil {
		return 0
	}
	amount := blind
	if s.Chips < amount {
		amount = s.Chips
	}
	r.commit(s, amount)
	return amount
}

// collectBlinds charges the forced bets. It must run exactly once per hand:
// calling it again collects a second time.
func (r *Room) collectBlinds() int {
	collected := r.postBlind(r.SmallBlindSeat(), r.SmallBlind)
	collected += r.postBlind(r.BigBlindSeat(), r.BigBlind)
	return collected
}
