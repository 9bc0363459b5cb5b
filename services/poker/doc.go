// Package poker implements the hand and betting state machine of a room.
//
// Every operation takes a *Room snapshot and returns a new one; the input is
// never modified, so a rejected request leaves the caller's snapshot exactly
// as it was. The package holds no state between calls and knows nothing
// about storage or transport.
//
//	room, _ = poker.StartHand(room)
//	room, res, err := poker.ApplyAction(room, poker.Action{PlayerID: id, Type: poker.Call})
//	if res != nil {
//	    // everyone else folded and the pot was paid out
//	}
//	room, result, err := poker.SettleHand(room, winnerID, room.CurrentPot)
//
// A hand goes preflop → flop → turn → river → showdown. A betting round
// closes once every player still holding chips has acted and matched the
// highest bet, or when a single contender is left. Cards are never dealt or
// evaluated: the board holds placeholders and the showdown winner is
// declared by the room owner.
package poker
