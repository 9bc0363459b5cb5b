package poker

// Round is the betting phase of the hand in progress
type Round string

const (
	Preflop  Round = "preflop"
	Flop     Round = "flop"
	Turn     Round = "turn"
	River    Round = "river"
	Showdown Round = "showdown"
)

// Next returns the phase that follows r. Showdown is terminal.
func (r Round) Next() Round {
	switch r {
	case Preflop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	default:
		return Showdown
	}
}

func (r Round) Valid() bool {
	switch r {
	case Preflop, Flop, Turn, River, Showdown:
		return true
	}
	return false
}

// Seat is a player sitting at a room's table
type Seat struct {
	ID           string `json:"id"`
	UserID       string `json:"userId,omitempty"`
	Name         string `json:"name"`
	Chips        int    `json:"chips"`
	Position     int    `json:"position"`
	IsDealer     bool   `json:"isDealer"`
	IsSmallBlind bool   `json:"isSmallBlind"`
	IsBigBlind   bool   `json:"isBigBlind"`
	IsActive     bool   `json:"isActive"`
	CurrentBet   int    `json:"currentBet"` // committed in the current betting round
	TotalBet     int    `json:"totalBet"`   // committed in the whole hand
}

// CanBet reports whether the seat is still contesting the hand and has chips left
func (s *Seat) CanBet() bool {
	return s.IsActive && s.Chips > 0
}

// Settings are the fixed per-room table parameters
type Settings struct {
	MaxPlayers    int `json:"maxPlayers"`
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
	StartingChips int `json:"startingChips"`
}

// Room is the authoritative snapshot of a single table.
//
// ButtonPosition and ActingPlayerID are the stored source of truth for the
// dealer button and the turn. The role flags on each seat and the
// CurrentDealer/CurrentPlayer indices (positions inside the active-player
// list) are derived from them after every operation.
type Room struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	OwnerID        string          `json:"ownerId"`
	OwnerName      string          `json:"ownerName"`
	HasPassword    bool            `json:"hasPassword"`
	MaxPlayers     int             `json:"maxPlayers"`
	BigBlind       int             `json:"bigBlind"`
	SmallBlind     int             `json:"smallBlind"`
	StartingChips  int             `json:"startingChips"`
	Players        []Seat          `json:"players"`
	CurrentPot     int             `json:"currentPot"`
	CurrentRound   Round           `json:"currentRound"`
	CurrentDealer  int             `json:"currentDealer"`
	CurrentPlayer  int             `json:"currentPlayer"`
	ButtonPosition int             `json:"buttonPosition"`
	ActingPlayerID string          `json:"actingPlayerId,omitempty"`
	ActedPlayers   map[string]bool `json:"actedPlayers"`
	CommunityCards []string        `json:"communityCards"`
	LastAction     string          `json:"lastAction"`
	InHand         bool            `json:"inHand"`
	HandNumber     int             `json:"handNumber"`
	IsActive       bool            `json:"isActive"`
}

// Clone returns a deep copy of the room, sharing no slices or maps with r
func (r *Room) Clone() *Room {
	c := *r
	c.Players = make([]Seat, len(r.Players))
	copy(c.Players, r.Players)
	c.CommunityCards = append([]string{}, r.CommunityCards...)
	c.ActedPlayers = make(map[string]bool, len(r.ActedPlayers))
	for id, acted := range r.ActedPlayers {
		c.ActedPlayers[id] = acted
	}
	return &c
}

// Settings returns the table parameters of the room
func (r *Room) Settings() Settings {
	return Settings{
		MaxPlayers:    r.MaxPlayers,
		SmallBlind:    r.SmallBlind,
		BigBlind:      r.BigBlind,
		StartingChips: r.StartingChips,
	}
}

// Seat returns a pointer to the seat with the given id, or nil
func (r *Room) Seat(id string) *Seat {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// ActivePlayers returns the seats still contesting the hand, in seating order
func (r *Room) ActivePlayers() []*Seat {
	active := make([]*Seat, 0, len(r.Players))
	for i := range r.Players {
		if r.Players[i].IsActive {
			active = append(active, &r.Players[i])
		}
	}
	return active
}

// MaxCurrentBet is the highest bet of the current round over every seat,
// folded or not
func (r *Room) MaxCurrentBet() int {
	high := 0
	for _, p := range r.Players {
		if p.CurrentBet > high {
			high = p.CurrentBet
		}
	}
	return high
}

// CallAmount is what the seat must add to match the table's highest bet
func (r *Room) CallAmount(s *Seat) int {
	if diff := r.MaxCurrentBet() - s.CurrentBet; diff > 0 {
		return diff
	}
	return 0
}

func (r *Room) seatAt(position int) *Seat {
	for i := range r.Players {
		if r.Players[i].Position == position {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) roleSeat(match func(*Seat) bool) *Seat {
	for i := range r.Players {
		if match(&r.Players[i]) {
			return &r.Players[i]
		}
	}
	return nil
}

// DeriveIndices recomputes the derived positional indices from the stored
// identities
func (r *Room) DeriveIndices() {
	r.CurrentPlayer = -1
	r.CurrentDealer = -1
	for i, p := range r.ActivePlayers() {
		if p.ID == r.ActingPlayerID {
			r.CurrentPlayer = i
		}
		if p.IsDealer {
			r.CurrentDealer = i
		}
	}
	if r.CurrentPlayer < 0 {
		r.CurrentPlayer = 0
	}
	if r.CurrentDealer < 0 {
		r.CurrentDealer = 0
	}
}
