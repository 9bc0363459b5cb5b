package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'GameAction' is one accepted betting action, kept as the room's action log
 */
type GameAction struct {
	ID         string    `gorm:"primaryKey;size:36;not null" json:"id"`
	RoomID     string    `gorm:"size:50;not null;index:idx_game_actions_room" json:"roomId"`
	HandNumber int       `gorm:"not null" json:"handNumber"`
	Round      string    `gorm:"size:20;not null" json:"round"`
	PlayerID   string    `gorm:"size:36;not null" json:"playerId"`
	PlayerName string    `gorm:"size:50" json:"playerName"`
	Action     string    `gorm:"size:20;not null" json:"action"`
	Amount     int       `gorm:"not null" json:"amount"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *GameAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

/*
 * 'HandResult' records who was paid at the end of a hand
 */
type HandResult struct {
	ID         string    `gorm:"primaryKey;size:36;not null" json:"id"`
	RoomID     string    `gorm:"size:50;not null;index:idx_hand_results_room" json:"roomId"`
	HandNumber int       `gorm:"not null" json:"handNumber"`
	WinnerID   string    `gorm:"size:36;not null" json:"winnerId"`
	WinnerName string    `gorm:"size:50" json:"winnerName"`
	Pot        int       `gorm:"not null" json:"pot"`
	Hand       string    `gorm:"size:100" json:"hand"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (h *HandResult) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
