package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want ActionType
	}{
		{"fold", Fold},
		{"CHECK", Check},
		{" call ", Call},
		{"raise", Raise},
		{"all-in", AllIn},
		{"allin", AllIn},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAction("bet")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestRoundNext(t *testing.T) {
	r := Preflop
	seen := []Round{r}
	for r != Showdown {
		r = r.Next()
		seen = append(seen, r)
	}
	assert.Equal(t, []Round{Preflop, Flop, Turn, River, Showdown}, seen)
	assert.Equal(t, Showdown, Showdown.Next())
	assert.True(t, River.Valid())
	assert.False(t, Round("postflop").Valid())
}

func TestNextSeatWraps(t *testing.T) {
	r := &Room{Players: []Seat{
		{ID: "a", Position: 0, IsActive: true, Chips: 10},
		{ID: "b", Position: 1, IsActive: false, Chips: 10},
		{ID: "c", Position: 2, IsActive: true, Chips: 0},
	}}

	assert.Equal(t, "a", r.nextSeat(-1, isActive).ID)
	assert.Equal(t, "c", r.nextSeat(0, isActive).ID)
	assert.Equal(t, "a", r.nextSeat(2, isActive).ID)
	assert.Equal(t, "a", r.nextSeat(0, (*Seat).CanBet).ID, "only seat able to bet is found again")
	assert.Nil(t, r.nextSeat(0, func(*Seat) bool { return false }))
	assert.Nil(t, (&Room{}).nextSeat(0, isActive))
}

func TestBettingLocked(t *testing.T) {
	tests := []struct {
		name    string
		players []Seat
		want    bool
	}{
		{
			name: "two bettors",
			players: []Seat{
				{ID: "a", Position: 0, IsActive: true, Chips: 10},
				{ID: "b", Position: 1, IsActive: true, Chips: 10},
			},
		},
		{
			name: "everyone all-in",
			players: []Seat{
				{ID: "a", Position: 0, IsActive: true, CurrentBet: 50},
				{ID: "b", Position: 1, IsActive: true, CurrentBet: 50},
			},
			want: true,
		},
		{
			name: "lone bettor covering the all-in",
			players: []Seat{
				{ID: "a", Position: 0, IsActive: true, CurrentBet: 50},
				{ID: "b", Position: 1, IsActive: true, Chips: 10, CurrentBet: 50},
			},
			want: true,
		},
		{
			name: "lone bettor facing the all-in",
			players: []Seat{
				{ID: "a", Position: 0, IsActive: true, CurrentBet: 50},
				{ID: "b", Position: 1, IsActive: true, Chips: 100, CurrentBet: 10},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Room{Players: tt.players}
			assert.Equal(t, tt.want, r.bettingLocked())
		})
	}
}

func TestCollectBlindsChargesOnce(t *testing.T) {
	r := &Room{SmallBlind: 5, BigBlind: 10, Players: []Seat{
		{ID: "a", Position: 0, IsActive: true, Chips: 100, IsDealer: true},
		{ID: "b", Position: 1, IsActive: true, Chips: 100, IsSmallBlind: true},
		{ID: "c", Position: 2, IsActive: true, Chips: 3, IsBigBlind: true},
	}}

	assert.Equal(t, 8, r.collectBlinds())
	assert.Equal(t, 8, r.CurrentPot)
	assert.Equal(t, 95, r.Players[1].Chips)
	assert.Equal(t, 0, r.Players[2].Chips)
	assert.Equal(t, 100, r.Players[0].Chips)
}

func TestDescribe(t *testing.T) {
	s := &Seat{Name: "Alice", CurrentBet: 40}
	assert.Equal(t, "Alice folded", describe(s, Fold, 0))
	assert.Equal(t, "Alice checked", describe(s, Check, 0))
	assert.Equal(t, "Alice called 20", describe(s, Call, 20))
	assert.Equal(t, "Alice raised to 40", describe(s, Raise, 30))
	assert.Equal(t, "Alice went all-in with 40", describe(s, AllIn, 40))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(ErrRoomNotFound))
	assert.Equal(t, Precondition, KindOf(ErrNoHandInProgress))
	assert.Equal(t, Kind(0), KindOf(assert.AnError))
	assert.Equal(t, "illegal action", IllegalAction.String())
}
