package poker_test

import (
	"fmt"
	"testing"

	"Chipster/services/poker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}

// newTable seats n players p0..p(n-1) in a room with blinds 5/10 and 1000 chips
func newTable(t *testing.T, n int) *poker.Room {
	t.Helper()
	room, err := poker.NewRoom("room1", "Friday game", poker.Seat{ID: "p0", UserID: "u0", Name: names[0]}, poker.Settings{
		MaxPlayers:    6,
		SmallBlind:    5,
		BigBlind:      10,
		StartingChips: 1000,
	})
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		room, err = poker.AddPlayer(room, poker.Seat{ID: fmt.Sprintf("p%d", i), UserID: fmt.Sprintf("u%d", i), Name: names[i]})
		require.NoError(t, err)
	}
	return room
}

func started(t *testing.T, room *poker.Room) *poker.Room {
	t.Helper()
	room, err := poker.StartHand(room)
	require.NoError(t, err)
	return room
}

// act applies an action that must be accepted
func act(t *testing.T, room *poker.Room, id string, typ poker.ActionType, amount int) *poker.Room {
	t.Helper()
	next, _, err := poker.ApplyAction(room, poker.Action{PlayerID: id, Type: typ, Amount: amount})
	require.NoError(t, err, "%s %s %d", id, typ, amount)
	return next
}

func TestNewRoom(t *testing.T) {
	room := newTable(t, 1)

	require.Len(t, room.Players, 1)
	assert.Equal(t, "u0", room.OwnerID)
	assert.Equal(t, "Alice", room.OwnerName)
	assert.Equal(t, 0, room.Players[0].Position)
	assert.Equal(t, 1000, room.Players[0].Chips)
	assert.Equal(t, poker.Preflop, room.CurrentRound)
	assert.Equal(t, 0, room.CurrentPot)
	assert.True(t, room.IsActive)
	assert.False(t, room.InHand)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings poker.Settings
		wantErr  bool
	}{
		{"defaults", poker.DefaultSettings, false},
		{"zero small blind", poker.Settings{MaxPlayers: 6, SmallBlind: 0, BigBlind: 10, StartingChips: 1000}, true},
		{"big below small", poker.Settings{MaxPlayers: 6, SmallBlind: 10, BigBlind: 5, StartingChips: 1000}, true},
		{"one seat", poker.Settings{MaxPlayers: 1, SmallBlind: 5, BigBlind: 10, StartingChips: 1000}, true},
		{"too many seats", poker.Settings{MaxPlayers: 11, SmallBlind: 5, BigBlind: 10, StartingChips: 1000}, true},
		{"stack below big blind", poker.Settings{MaxPlayers: 6, SmallBlind: 5, BigBlind: 10, StartingChips: 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, poker.ErrInvalidSettings)
				assert.Equal(t, poker.IllegalAction, poker.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartHandAssignsExactlyOneOfEachRole(t *testing.T) {
	for n := 2; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			room := newTable(t, n)
			// Several hands so the button has moved around the table.
			for hand := 0; hand < n+1; hand++ {
				room = started(t, room)

				var dealers, sbs, bbs []string
				for _, p := range room.Players {
					if p.IsDealer {
						dealers = append(dealers, p.ID)
					}
					if p.IsSmallBlind {
						sbs = append(sbs, p.ID)
					}
					if p.IsBigBlind {
						bbs = append(bbs, p.ID)
					}
				}
				require.Len(t, dealers, 1)
				require.Len(t, sbs, 1)
				require.Len(t, bbs, 1)
				assert.NotEqual(t, dealers[0], sbs[0])
				assert.NotEqual(t, sbs[0], bbs[0])
				if n >= 3 {
					assert.NotEqual(t, dealers[0], bbs[0])
				} else {
					assert.Equal(t, dealers[0], bbs[0], "heads-up the dealer posts the big blind")
				}

				var err error
				room, _, err = poker.SettleHand(room, room.Players[0].ID, room.CurrentPot)
				require.NoError(t, err)
			}
		})
	}
}

func TestStartHandThreePlayers(t *testing.T) {
	room := started(t, newTable(t, 3))

	assert.Equal(t, 15, room.CurrentPot)
	assert.True(t, room.Players[0].IsDealer)
	assert.True(t, room.Players[1].IsSmallBlind)
	assert.True(t, room.Players[2].IsBigBlind)
	assert.Equal(t, 1000, room.Players[0].Chips)
	assert.Equal(t, 995, room.Players[1].Chips)
	assert.Equal(t, 990, room.Players[2].Chips)
	assert.Equal(t, 5, room.Players[1].CurrentBet)
	assert.Equal(t, 10, room.Players[2].TotalBet)
	assert.Equal(t, "p0", room.ActingPlayerID, "seat after the big blind opens")
	assert.Equal(t, 0, room.CurrentPlayer)
	assert.Equal(t, 1, room.HandNumber)
	assert.True(t, room.InHand)
	assert.Empty(t, room.CommunityCards)
	assert.Contains(t, room.LastAction, "Hand #1 started")
}

func TestStartHandDoesNotModifyInput(t *testing.T) {
	room := newTable(t, 3)
	before := room.Clone()

	_ = started(t, room)

	assert.Equal(t, before, room)
}

func TestStartHandShortStackPostsAllIn(t *testing.T) {
	room := newTable(t, 3)
	room.Players[2].Chips = 7

	room = started(t, room)

	assert.Equal(t, 0, room.Players[2].Chips)
	assert.Equal(t, 7, room.Players[2].CurrentBet)
	assert.Equal(t, 12, room.CurrentPot)
	for _, p := range room.Players {
		assert.GreaterOrEqual(t, p.Chips, 0)
	}
}

func TestStartHandInsufficientPlayers(t *testing.T) {
	t.Run("alone", func(t *testing.T) {
		_, err := poker.StartHand(newTable(t, 1))
		assert.ErrorIs(t, err, poker.ErrInsufficientPlayers)
		assert.Equal(t, poker.Precondition, poker.KindOf(err))
	})

	t.Run("others busted", func(t *testing.T) {
		room := newTable(t, 3)
		room.Players[1].Chips = 0
		room.Players[2].Chips = 0
		_, err := poker.StartHand(room)
		assert.ErrorIs(t, err, poker.ErrInsufficientPlayers)
	})

	t.Run("hand already running", func(t *testing.T) {
		room := started(t, newTable(t, 2))
		_, err := poker.StartHand(room)
		assert.ErrorIs(t, err, poker.ErrHandInProgress)
	})
}

func TestBustedSeatSitsOut(t *testing.T) {
	room := newTable(t, 3)
	room.Players[2].Chips = 0

	room = started(t, room)

	assert.False(t, room.Players[2].IsActive)
	assert.False(t, room.Players[2].IsSmallBlind || room.Players[2].IsBigBlind || room.Players[2].IsDealer)
	assert.Len(t, room.ActivePlayers(), 2)
}

func TestDealerButtonRotates(t *testing.T) {
	room := newTable(t, 3)
	for _, want := range []string{"p0", "p1", "p2", "p0"} {
		room = started(t, room)
		assert.Equal(t, want, room.Dealer().ID)

		var err error
		room, _, err = poker.SettleHand(room, want, room.CurrentPot)
		require.NoError(t, err)
	}
}

func TestPreflopGoesToFlopAfterBigBlindOption(t *testing.T) {
	room := started(t, newTable(t, 3))

	room = act(t, room, "p0", poker.Call, 0)
	assert.Equal(t, 25, room.CurrentPot)
	assert.Equal(t, 990, room.Players[0].Chips)
	assert.Equal(t, poker.Preflop, room.CurrentRound, "blinds have not acted yet")
	assert.Equal(t, "p1", room.ActingPlayerID)

	room = act(t, room, "p1", poker.Call, 0)
	assert.Equal(t, 30, room.CurrentPot)
	assert.Equal(t, poker.Preflop, room.CurrentRound, "big blind still has the option")
	assert.Equal(t, "p2", room.ActingPlayerID)

	room = act(t, room, "p2", poker.Check, 0)
	assert.Equal(t, poker.Flop, room.CurrentRound)
	assert.Len(t, room.CommunityCards, 3)
	assert.Equal(t, 30, room.CurrentPot)
	for _, p := range room.Players {
		assert.Equal(t, 0, p.CurrentBet)
		assert.Equal(t, 10, p.TotalBet)
	}
	assert.Equal(t, "p1", room.ActingPlayerID, "small blind opens after the flop")
}

func TestBigBlindCanRaiseWhenLimpedTo(t *testing.T) {
	room := started(t, newTable(t, 3))
	room = act(t, room, "p0", poker.Call, 0)
	room = act(t, room, "p1", poker.Call, 0)

	room = act(t, room, "p2", poker.Raise, 20)

	assert.Equal(t, poker.Preflop, room.CurrentRound)
	assert.Equal(t, 30, room.Players[2].CurrentBet)
	assert.Equal(t, "Carol raised to 30", room.LastAction)
	assert.Equal(t, "p0", room.ActingPlayerID)
	assert.Equal(t, 20, room.CallAmount(room.Seat("p0")))
}

func TestHeadsUpSmallBlindActsFirst(t *testing.T) {
	room := started(t, newTable(t, 2))

	sb := room.SmallBlindSeat()
	bb := room.BigBlindSeat()
	require.NotNil(t, sb)
	require.NotNil(t, bb)
	assert.Equal(t, sb.ID, room.ActingPlayerID)
	assert.NotEqual(t, bb.ID, room.ActingPlayerID)

	room = act(t, room, sb.ID, poker.Call, 0)
	assert.Equal(t, bb.ID, room.ActingPlayerID)
	room = act(t, room, bb.ID, poker.Check, 0)
	assert.Equal(t, poker.Flop, room.CurrentRound)
	assert.Equal(t, sb.ID, room.ActingPlayerID)
}

func TestShortStackMustGoAllInInsteadOfCalling(t *testing.T) {
	room := newTable(t, 3)
	room.Players[0].Chips = 5
	room = started(t, room)
	require.Equal(t, 10, room.CallAmount(room.Seat("p0")))

	before := room.Clone()
	_, _, err := poker.ApplyAction(room, poker.Action{PlayerID: "p0", Type: poker.Call})
	assert.ErrorIs(t, err, poker.ErrInsufficientChips)
	assert.Equal(t, before, room)

	room = act(t, room, "p0", poker.AllIn, 0)
	assert.Equal(t, 0, room.Players[0].Chips)
	assert.Equal(t, 5, room.Players[0].CurrentBet)
	assert.Equal(t, 20, room.CurrentPot)
	assert.Equal(t, "Alice went all-in with 5", room.LastAction)
	assert.Equal(t, "p1", room.ActingPlayerID)
}

func TestRejectedActionsLeaveRoomUntouched(t *testing.T) {
	base := started(t, newTable(t, 3))
	folded := act(t, base, "p0", poker.Fold, 0)
	broke := base.Clone()
	broke.Players[0].Chips = 0

	tests := []struct {
		name   string
		room   *poker.Room
		action poker.Action
		want   error
		kind   poker.Kind
	}{
		{"unknown player", base, poker.Action{PlayerID: "nobody", Type: poker.Call}, poker.ErrPlayerNotFound, poker.NotFound},
		{"not your turn", base, poker.Action{PlayerID: "p2", Type: poker.Check}, poker.ErrNotYourTurn, poker.IllegalAction},
		{"folded player", folded, poker.Action{PlayerID: "p0", Type: poker.Call}, poker.ErrPlayerInactive, poker.IllegalAction},
		{"check facing a bet", base, poker.Action{PlayerID: "p0", Type: poker.Check}, poker.ErrCannotCheck, poker.IllegalAction},
		{"zero raise", base, poker.Action{PlayerID: "p0", Type: poker.Raise, Amount: 0}, poker.ErrInvalidRaise, poker.IllegalAction},
		{"negative raise", base, poker.Action{PlayerID: "p0", Type: poker.Raise, Amount: -10}, poker.ErrInvalidRaise, poker.IllegalAction},
		{"raise that only calls", base, poker.Action{PlayerID: "p0", Type: poker.Raise, Amount: 10}, poker.ErrInvalidRaise, poker.IllegalAction},
		{"raise above stack", base, poker.Action{PlayerID: "p0", Type: poker.Raise, Amount: 1001}, poker.ErrInvalidRaise, poker.IllegalAction},
		{"all-in with nothing", broke, poker.Action{PlayerID: "p0", Type: poker.AllIn}, poker.ErrNoChips, poker.IllegalAction},
		{"unknown action", base, poker.Action{PlayerID: "p0", Type: "bluff"}, poker.ErrUnknownAction, poker.IllegalAction},
		{"no hand", newTable(t, 3), poker.Action{PlayerID: "p0", Type: poker.Check}, poker.ErrNoHandInProgress, poker.Precondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.room.Clone()

			next, res, err := poker.ApplyAction(tt.room, tt.action)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, poker.KindOf(err))
			assert.Nil(t, next)
			assert.Nil(t, res)
			assert.Equal(t, before, tt.room)
		})
	}
}

func TestTurnOrderFollowsSeatingOrder(t *testing.T) {
	room := started(t, newTable(t, 4))

	var order []string
	for _, step := range []poker.ActionType{poker.Call, poker.Call, poker.Call, poker.Check} {
		order = append(order, room.ActingPlayerID)
		room = act(t, room, room.ActingPlayerID, step, 0)
	}
	assert.Equal(t, []string{"p3", "p0", "p1", "p2"}, order)
	require.Equal(t, poker.Flop, room.CurrentRound)

	order = nil
	for i := 0; i < 4; i++ {
		order = append(order, room.ActingPlayerID)
		room = act(t, room, room.ActingPlayerID, poker.Check, 0)
	}
	assert.Equal(t, []string{"p1", "p2", "p3", "p0"}, order)
	assert.Equal(t, poker.Turn, room.CurrentRound)
}

func TestFoldedSeatIsSkipped(t *testing.T) {
	room := started(t, newTable(t, 4))
	room = act(t, room, "p3", poker.Fold, 0)
	room = act(t, room, "p0", poker.Call, 0)
	room = act(t, room, "p1", poker.Call, 0)
	room = act(t, room, "p2", poker.Check, 0)
	require.Equal(t, poker.Flop, room.CurrentRound)

	var order []string
	for i := 0; i < 3; i++ {
		order = append(order, room.ActingPlayerID)
		room = act(t, room, room.ActingPlayerID, poker.Check, 0)
	}
	assert.Equal(t, []string{"p1", "p2", "p0"}, order)
	assert.Equal(t, poker.Turn, room.CurrentRound)
}

func TestFoldedSmallBlindPassesFirstActionOn(t *testing.T) {
	room := started(t, newTable(t, 3))
	room = act(t, room, "p0", poker.Call, 0)
	room = act(t, room, "p1", poker.Fold, 0)
	room = act(t, room, "p2", poker.Check, 0)

	require.Equal(t, poker.Flop, room.CurrentRound)
	assert.Equal(t, "p2", room.ActingPlayerID)
	assert.Equal(t, 1, room.CurrentPlayer, "index into the active players [p0 p2]")
}

func TestRoundCompleteIsIdempotent(t *testing.T) {
	room := started(t, newTable(t, 3))
	first := room.RoundComplete()
	assert.Equal(t, first, room.RoundComplete())
	assert.False(t, first)

	room = act(t, room, "p0", poker.Call, 0)
	assert.Equal(t, room.RoundComplete(), room.RoundComplete())
}

func TestHandAdvancesThroughEveryRound(t *testing.T) {
	room := started(t, newTable(t, 2))
	rounds := []poker.Round{room.CurrentRound}
	cards := []int{len(room.CommunityCards)}

	for room.CurrentRound != poker.Showdown {
		id := room.ActingPlayerID
		typ := poker.Check
		if room.CallAmount(room.Seat(id)) > 0 {
			typ = poker.Call
		}
		prev := room.CurrentRound
		room = act(t, room, id, typ, 0)
		if room.CurrentRound != prev {
			rounds = append(rounds, room.CurrentRound)
			cards = append(cards, len(room.CommunityCards))
		}
	}

	assert.Equal(t, []poker.Round{poker.Preflop, poker.Flop, poker.Turn, poker.River, poker.Showdown}, rounds)
	assert.Equal(t, []int{0, 3, 4, 5, 5}, cards)
	assert.True(t, room.InHand, "showdown waits for the owner")
	assert.Empty(t, room.ActingPlayerID)

	_, _, err := poker.ApplyAction(room, poker.Action{PlayerID: "p0", Type: poker.Check})
	assert.ErrorIs(t, err, poker.ErrBettingClosed)
	_, err = poker.AdvanceRound(room)
	assert.ErrorIs(t, err, poker.ErrBettingClosed)
}

func TestAdvanceRound(t *testing.T) {
	room := started(t, newTable(t, 3))

	next, err := poker.AdvanceRound(room)
	require.NoError(t, err)

	assert.Equal(t, poker.Preflop, room.CurrentRound)
	assert.Equal(t, poker.Flop, next.CurrentRound)
	assert.Len(t, next.CommunityCards, 3)
	assert.Equal(t, 15, next.CurrentPot)
	assert.Equal(t, 5, next.Players[1].TotalBet)
	for _, p := range next.Players {
		assert.Zero(t, p.CurrentBet)
	}
	assert.Equal(t, "p1", next.ActingPlayerID)

	_, err = poker.AdvanceRound(newTable(t, 3))
	assert.ErrorIs(t, err, poker.ErrNoHandInProgress)
}

func TestFoldToOneAwardsPot(t *testing.T) {
	room := started(t, newTable(t, 3))
	room = act(t, room, "p0", poker.Fold, 0)

	next, res, err := poker.ApplyAction(room, poker.Action{PlayerID: "p1", Type: poker.Fold})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "p2", res.WinnerID)
	assert.Equal(t, 15, res.Pot)
	assert.Equal(t, poker.EverybodyFolded, res.Hand)
	assert.Equal(t, 1005, next.Seat("p2").Chips)
	assert.Equal(t, 0, next.CurrentPot)
	assert.False(t, next.InHand)
	assert.Equal(t, poker.Showdown, next.CurrentRound)
	assert.Contains(t, next.LastAction, "Carol won 15 chips")
}

func TestAllInRunsOutTheBoard(t *testing.T) {
	room := started(t, newTable(t, 2))
	sb, bb := room.SmallBlindSeat().ID, room.BigBlindSeat().ID

	room = act(t, room, sb, poker.AllIn, 0)
	assert.Equal(t, poker.Preflop, room.CurrentRound)
	room = act(t, room, bb, poker.Call, 0)

	assert.Equal(t, poker.Showdown, room.CurrentRound)
	assert.Len(t, room.CommunityCards, 5)
	assert.Equal(t, 2000, room.CurrentPot)
	assert.True(t, room.InHand)
}

func TestCallerFacingAllInStillDecides(t *testing.T) {
	room := newTable(t, 2)
	room.Players[0].Chips = 7 // dealer posts the big blind heads-up
	room = started(t, room)

	require.Equal(t, 7, room.BigBlindSeat().CurrentBet)
	sb := room.SmallBlindSeat()
	assert.Equal(t, sb.ID, room.ActingPlayerID)
	assert.Equal(t, 2, room.CallAmount(sb))

	room = act(t, room, sb.ID, poker.Call, 0)
	assert.Equal(t, poker.Showdown, room.CurrentRound)
	assert.Equal(t, 14, room.CurrentPot)
}

func TestSettleHand(t *testing.T) {
	room := started(t, newTable(t, 3))
	room = act(t, room, "p0", poker.Call, 0)

	next, res, err := poker.SettleHand(room, "p0", room.CurrentPot)
	require.NoError(t, err)

	assert.Equal(t, 990+25, next.Seat("p0").Chips)
	assert.Equal(t, 0, next.CurrentPot)
	assert.False(t, next.InHand)
	assert.Equal(t, "Alice won 25 chips", next.LastAction)
	assert.Equal(t, poker.HandResult{WinnerID: "p0", WinnerName: "Alice", Pot: 25, Hand: poker.DeclaredByOwner}, res)
	assert.Equal(t, 25, room.CurrentPot, "input snapshot is untouched")

	_, _, err = poker.SettleHand(room, "ghost", 10)
	assert.ErrorIs(t, err, poker.ErrPlayerNotFound)
	assert.Equal(t, poker.NotFound, poker.KindOf(err))

	_, _, err = poker.SettleHand(room, "p0", 0)
	assert.ErrorIs(t, err, poker.ErrInvalidPot)
}

func TestAddPlayer(t *testing.T) {
	room := newTable(t, 2)
	room.MaxPlayers = 3

	room, err := poker.AddPlayer(room, poker.Seat{ID: "p2", Name: "Carol"})
	require.NoError(t, err)
	assert.Equal(t, 2, room.Seat("p2").Position)
	assert.Equal(t, 1000, room.Seat("p2").Chips)
	assert.Equal(t, "Carol joined the room", room.LastAction)

	_, err = poker.AddPlayer(room, poker.Seat{ID: "p3", Name: "Dave"})
	assert.ErrorIs(t, err, poker.ErrRoomFull)

	room.MaxPlayers = 6
	_, err = poker.AddPlayer(room, poker.Seat{ID: "p3", Name: "carol"})
	assert.ErrorIs(t, err, poker.ErrDuplicateName)

	room = started(t, room)
	room, err = poker.AddPlayer(room, poker.Seat{ID: "p3", Name: "Dave"})
	require.NoError(t, err)
	assert.False(t, room.Seat("p3").IsActive, "joining mid-hand sits out")
}

func TestRemovePlayer(t *testing.T) {
	room := newTable(t, 4)
	room = started(t, room)
	require.Equal(t, "p0", room.Dealer().ID)

	_, err := poker.RemovePlayer(room, "p3")
	assert.ErrorIs(t, err, poker.ErrStillInHand)
	_, err = poker.RemovePlayer(room, "ghost")
	assert.ErrorIs(t, err, poker.ErrPlayerNotFound)

	room, _, err = poker.SettleHand(room, "p3", room.CurrentPot)
	require.NoError(t, err)
	room, err = poker.RemovePlayer(room, "p0")
	require.NoError(t, err)

	require.Len(t, room.Players, 3)
	for i, p := range room.Players {
		assert.Equal(t, i, p.Position)
	}
	assert.Equal(t, "Alice left the room", room.LastAction)

	room = started(t, room)
	assert.Equal(t, "p1", room.Dealer().ID, "button moves on to the seat that followed the leaver")
}
