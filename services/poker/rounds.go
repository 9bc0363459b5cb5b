package poker

import "fmt"

// Placeholder faces for the board. Cards are never really dealt: the winner
// of a showdown is declared by the room owner.
var boardCards = []string{"🂡", "🂢", "🂣", "🂤", "🂥"}

// cardsRevealed is the board size once a round has been reached
func cardsRevealed(round Round) int {
	switch round {
	case Flop:
		return 3
	case Turn:
		return 4
	case River, Showdown:
		return 5
	}
	return 0
}

// nextRound moves the hand one phase forward, reveals the board for it,
// clears the round's bets and seeds the first player to act
func (r *Room) nextRound() {
	next := r.CurrentRound.Next()
	if n := cardsRevealed(next); n > len(r.CommunityCards) {
		r.CommunityCards = append(r.CommunityCards, boardCards[len(r.CommunityCards):n]...)
	}
	for i := range r.Players {
		r.Players[i].CurrentBet = 0
	}
	r.ActedPlayers = map[string]bool{}
	r.CurrentRound = next
	r.ActingPlayerID = ""
	if first := r.firstToAct(next); first != nil {
		r.ActingPlayerID = first.ID
	}
	r.LastAction = fmt.Sprintf("Moving to the %s", next)
}

// finishRound closes a complete betting round. A lone survivor takes the pot;
// otherwise the hand advances, running straight to showdown while fewer than
// two players can still bet. The result is non-nil when the hand ended.
func (r *Room) finishRound() *HandResult {
	if active := r.ActivePlayers(); len(active) == 1 {
		res := r.awardUncontested(active[0])
		return &res
	}
	last := r.LastAction
	r.nextRound()
	for r.CurrentRound != Showdown && r.bettingLocked() {
		r.nextRound()
	}
	r.LastAction = last + "; " + r.LastAction
	return nil
}
