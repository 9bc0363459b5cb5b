package poker

// nextSeat walks the seating order starting after position from and returns
// the first seat for which ok holds. The walk wraps and may come back to the
// seat at from itself. Returns nil when no seat qualifies.
func (r *Room) nextSeat(from int, ok func(*Seat) bool) *Seat {
	n := len(r.Players)
	if n == 0 {
		return nil
	}
	for step := 1; step <= n; step++ {
		pos := from + step
		// from may be -1 (no previous dealer) or past the end after removals
		pos = ((pos % n) + n) % n
		if s := r.seatAt(pos); s != nil && ok(s) {
			return s
		}
	}
	return nil
}

func isActive(s *Seat) bool { return s.IsActive }

// assignRoles rotates the dealer button and derives the blind seats among
// the active players. It clears every role flag first. With fewer than two
// active players it does nothing and returns false.
func (r *Room) assignRoles() bool {
	active := r.ActivePlayers()
	n := len(active)
	if n < 2 {
		return false
	}

	for i := range r.Players {
		r.Players[i].IsDealer = false
		r.Players[i].IsSmallBlind = false
		r.Players[i].IsBigBlind = false
	}

	dealer := r.nextSeat(r.ButtonPosition, isActive)
	dealerIdx := 0
	for i, p := range active {
		if p.ID == dealer.ID {
			dealerIdx = i
		}
	}

	// Heads-up: the big blind lands back on the dealer seat.
	active[dealerIdx].IsDealer = true
	active[(dealerIdx+1)%n].IsSmallBlind = true
	active[(dealerIdx+2)%n].IsBigBlind = true

	r.ButtonPosition = dealer.Position
	r.CurrentDealer = dealerIdx
	return true
}

// Dealer returns the seat holding the button, or nil before the first hand
func (r *Room) Dealer() *Seat {
	return r.roleSeat(func(s *Seat) bool { return s.IsDealer })
}

// SmallBlindSeat returns the seat that posted the small blind, or nil
func (r *Room) SmallBlindSeat() *Seat {
	return r.roleSeat(func(s *Seat) bool { return s.IsSmallBlind })
}

// BigBlindSeat returns the seat that posted the big blind, or nil
func (r *Room) BigBlindSeat() *Seat {
	return r.roleSeat(func(s *Seat) bool { return s.IsBigBlind })
}
