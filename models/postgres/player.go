package postgres

import (
	"Chipster/services/poker"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Player' is one seat of a room
 */
type Player struct {
	ID           string    `gorm:"primaryKey;size:36;not null"`
	RoomID       string    `gorm:"size:50;not null;index"`
	UserID       string    `gorm:"size:36;index"`
	Name         string    `gorm:"size:50;not null"`
	Chips        int       `gorm:"not null"`
	Position     int       `gorm:"not null"`
	IsDealer     bool      `gorm:"not null"`
	IsSmallBlind bool      `gorm:"not null"`
	IsBigBlind   bool      `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CurrentBet   int       `gorm:"not null"`
	TotalBet     int       `gorm:"not null"`
	JoinedAt     time.Time `gorm:"autoCreateTime"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func NewPlayerRow(roomID string, s poker.Seat) Player {
	return Player{
		ID:           s.ID,
		RoomID:       roomID,
		UserID:       s.UserID,
		Name:         s.Name,
		Chips:        s.Chips,
		Position:     s.Position,
		IsDealer:     s.IsDealer,
		IsSmallBlind: s.IsSmallBlind,
		IsBigBlind:   s.IsBigBlind,
		IsActive:     s.IsActive,
		CurrentBet:   s.CurrentBet,
		TotalBet:     s.TotalBet,
	}
}

func (p Player) Seat() poker.Seat {
	return poker.Seat{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Chips:        p.Chips,
		Position:     p.Position,
		IsDealer:     p.IsDealer,
		IsSmallBlind: p.IsSmallBlind,
		IsBigBlind:   p.IsBigBlind,
		IsActive:     p.IsActive,
		CurrentBet:   p.CurrentBet,
		TotalBet:     p.TotalBet,
	}
}
