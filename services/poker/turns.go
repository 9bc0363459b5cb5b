package poker

// firstToAct returns the seat that opens betting in round, or nil if nobody
// can bet.
//
// Preflop the seat after the big blind opens, except heads-up where the
// small blind does. Every later round opens from the small blind. Folded and
// all-in seats are skipped by walking on in seating order.
func (r *Room) firstToAct(round Round) *Seat {
	if round == Showdown {
		return nil
	}
	var from *Seat
	if round == Preflop {
		if len(r.ActivePlayers()) == 2 {
			from = r.SmallBlindSeat()
		} else if bb := r.BigBlindSeat(); bb != nil {
			from = r.nextSeat(bb.Position, isActive)
		}
	} else {
		from = r.SmallBlindSeat()
	}
	if from == nil {
		return nil
	}
	if from.CanBet() {
		return from
	}
	return r.nextSeat(from.Position, (*Seat).CanBet)
}

// nextToAct returns the seat after the acting one that can still bet, or nil
func (r *Room) nextToAct() *Seat {
	current := r.Seat(r.ActingPlayerID)
	if current == nil {
		return nil
	}
	next := r.nextSeat(current.Position, (*Seat).CanBet)
	if next == nil || next.ID == current.ID {
		return nil
	}
	return next
}

// advanceTurn hands the action to the next seat able to bet
func (r *Room) advanceTurn() {
	if next := r.nextToAct(); next != nil {
		r.ActingPlayerID = next.ID
	}
}

// IsTurn reports whether the seat is the one the room is waiting on
func (r *Room) IsTurn(playerID string) bool {
	return r.ActingPlayerID != "" && r.ActingPlayerID == playerID
}
