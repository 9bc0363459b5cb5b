package postgres

import (
	game_constants "Chipster/constants/game"
	"Chipster/services/poker"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Room' is the persisted form of a table snapshot. Seats live in their own
 * table, see Player.
 */
type Room struct {
	ID             string         `gorm:"primaryKey;size:50;not null"`
	Name           string         `gorm:"size:100;not null"`
	OwnerID        string         `gorm:"size:36;index:idx_rooms_owner"`
	OwnerName      string         `gorm:"size:50"`
	PasswordHash   string         `gorm:"size:255"`
	MaxPlayers     int            `gorm:"not null"`
	SmallBlind     int            `gorm:"not null"`
	BigBlind       int            `gorm:"not null"`
	StartingChips  int            `gorm:"not null"`
	CurrentPot     int            `gorm:"not null"`
	CurrentRound   string         `gorm:"size:20;not null"`
	ButtonPosition int            `gorm:"not null"`
	ActingPlayerID string         `gorm:"size:36"`
	ActedPlayers   datatypes.JSON `gorm:"type:jsonb"`
	CommunityCards datatypes.JSON `gorm:"type:jsonb"`
	LastAction     string         `gorm:"size:255"`
	InHand         bool           `gorm:"not null"`
	HandNumber     int            `gorm:"not null"`
	IsActive       bool           `gorm:"not null;index:idx_rooms_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`

	Players []Player `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Room codes are short so they can be read out loud
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateRoomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// BeforeCreate picks a room code nobody else is using
func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID != "" {
		return nil
	}
	for {
		newID := GenerateRoomCode(game_constants.ROOM_CODE_LENGTH)
		var count int64
		if err := tx.Model(&Room{}).Where("id = ?", newID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			r.ID = newID
			for i := range r.Players {
				r.Players[i].RoomID = newID
			}
			return nil
		}
	}
}

// NewRoomRow converts a snapshot into its row, seats included
func NewRoomRow(s *poker.Room, passwordHash string) (*Room, error) {
	acted, err := json.Marshal(s.ActedPlayers)
	if err != nil {
		return nil, fmt.Errorf("error marshaling acted players: %v", err)
	}
	cards, err := json.Marshal(s.CommunityCards)
	if err != nil {
		return nil, fmt.Errorf("error marshaling community cards: %v", err)
	}

	row := &Room{
		ID:             s.ID,
		Name:           s.Name,
		OwnerID:        s.OwnerID,
		OwnerName:      s.OwnerName,
		PasswordHash:   passwordHash,
		MaxPlayers:     s.MaxPlayers,
		SmallBlind:     s.SmallBlind,
		BigBlind:       s.BigBlind,
		StartingChips:  s.StartingChips,
		CurrentPot:     s.CurrentPot,
		CurrentRound:   string(s.CurrentRound),
		ButtonPosition: s.ButtonPosition,
		ActingPlayerID: s.ActingPlayerID,
		ActedPlayers:   datatypes.JSON(acted),
		CommunityCards: datatypes.JSON(cards),
		LastAction:     s.LastAction,
		InHand:         s.InHand,
		HandNumber:     s.HandNumber,
		IsActive:       s.IsActive,
	}
	row.Players = make([]Player, len(s.Players))
	for i, seat := range s.Players {
		row.Players[i] = NewPlayerRow(s.ID, seat)
	}
	return row, nil
}

// StateColumns are the columns rewritten on every save of a snapshot.
// Password and timestamps are left alone.
func (r *Room) StateColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":             r.Name,
		"max_players":      r.MaxPlayers,
		"small_blind":      r.SmallBlind,
		"big_blind":        r.BigBlind,
		"starting_chips":   r.StartingChips,
		"current_pot":      r.CurrentPot,
		"current_round":    r.CurrentRound,
		"button_position":  r.ButtonPosition,
		"acting_player_id": r.ActingPlayerID,
		"acted_players":    r.ActedPlayers,
		"community_cards":  r.CommunityCards,
		"last_action":      r.LastAction,
		"in_hand":          r.InHand,
		"hand_number":      r.HandNumber,
		"is_active":        r.IsActive,
	}
}

// Snapshot rebuilds the engine view of the room. Seats are ordered by position.
func (r *Room) Snapshot() (*poker.Room, error) {
	s := &poker.Room{
		ID:             r.ID,
		Name:           r.Name,
		OwnerID:        r.OwnerID,
		OwnerName:      r.OwnerName,
		HasPassword:    r.PasswordHash != "",
		MaxPlayers:     r.MaxPlayers,
		SmallBlind:     r.SmallBlind,
		BigBlind:       r.BigBlind,
		StartingChips:  r.StartingChips,
		CurrentPot:     r.CurrentPot,
		CurrentRound:   poker.Round(r.CurrentRound),
		ButtonPosition: r.ButtonPosition,
		ActingPlayerID: r.ActingPlayerID,
		ActedPlayers:   map[string]bool{},
		CommunityCards: []string{},
		LastAction:     r.LastAction,
		InHand:         r.InHand,
		HandNumber:     r.HandNumber,
		IsActive:       r.IsActive,
	}
	if !s.CurrentRound.Valid() {
		return nil, fmt.Errorf("room %s has an unknown round %q", r.ID, r.CurrentRound)
	}
	if len(r.ActedPlayers) > 0 {
		if err := json.Unmarshal(r.ActedPlayers, &s.ActedPlayers); err != nil {
			return nil, fmt.Errorf("error unmarshaling acted players: %v", err)
		}
	}
	if len(r.CommunityCards) > 0 {
		if err := json.Unmarshal(r.CommunityCards, &s.CommunityCards); err != nil {
			return nil, fmt.Errorf("error unmarshaling community cards: %v", err)
		}
	}

	players := make([]Player, len(r.Players))
	copy(players, r.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].Position < players[j].Position })
	s.Players = make([]poker.Seat, 0, len(players))
	for _, p := range players {
		s.Players = append(s.Players, p.Seat())
	}
	if s.ActedPlayers == nil {
		s.ActedPlayers = map[string]bool{}
	}
	if s.CommunityCards == nil {
		s.CommunityCards = []string{}
	}
	// Derived indices are not stored.
	s.DeriveIndices()
	return s, nil
}
