package rooms

import (
	game_constants "Chipster/constants/game"
	models "Chipster/models/postgres"
	"Chipster/services/poker"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Caller is the authenticated user behind a request
type Caller struct {
	UserID string
	Name   string
}

type CreateRoomInput struct {
	Name     string
	Password string
	Settings poker.Settings
}

// UpdateRoomInput holds the fields to change; nil leaves a field as it is.
// An empty Password removes the password.
type UpdateRoomInput struct {
	Name          *string
	Password      *string
	MaxPlayers    *int
	SmallBlind    *int
	BigBlind      *int
	StartingChips *int
}

// Service runs every room operation: it serializes requests per room, calls
// the engine, persists the result and tells the notifier.
type Service struct {
	store    Store
	notifier Notifier
	locks    *lockTable
}

func NewService(store Store, notifier Notifier) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		store:    store,
		notifier: notifier,
		locks:    newLockTable(),
	}
}

// SetNotifier replaces the notifier. Call it before serving requests.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func withDefaults(settings poker.Settings) poker.Settings {
	if settings.MaxPlayers == 0 {
		settings.MaxPlayers = game_constants.DEFAULT_MAX_PLAYERS
	}
	if settings.SmallBlind == 0 {
		settings.SmallBlind = game_constants.DEFAULT_SMALL_BLIND
	}
	if settings.BigBlind == 0 {
		settings.BigBlind = game_constants.DEFAULT_BIG_BLIND
	}
	if settings.StartingChips == 0 {
		settings.StartingChips = game_constants.DEFAULT_STARTING_CHIPS
	}
	return settings
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), game_constants.PASSWORD_COST)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// load returns an open room; closed rooms look like missing ones
func (s *Service) load(ctx context.Context, id string) (*poker.Room, error) {
	room, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, poker.ErrRoomNotFound
	}
	return room, nil
}

// locked runs fn while holding the room's lock and publishes the room fn
// returns once the lock is released. fn is responsible for saving.
func (s *Service) locked(ctx context.Context, id string, fn func(room *poker.Room) (*poker.Room, error)) (*poker.Room, error) {
	unlock := s.locks.lock(id)
	room, err := s.load(ctx, id)
	var next *poker.Room
	if err == nil {
		next, err = fn(room)
	}
	unlock()
	if err != nil {
		return nil, err
	}

	s.notifier.RoomUpdated(next)
	return next, nil
}

func (s *Service) save(ctx context.Context, room *poker.Room) error {
	if err := s.store.SaveRoom(ctx, room); err != nil {
		log.Printf("[ROOM-ERROR] Saving room %s: %v", room.ID, err)
		return fmt.Errorf("error saving room: %w", err)
	}
	return nil
}

func ownedBy(room *poker.Room, caller Caller) error {
	if room.OwnerID != caller.UserID {
		return ErrForbidden
	}
	return nil
}

func seatOf(room *poker.Room, userID string) *poker.Seat {
	for i := range room.Players {
		if room.Players[i].UserID == userID {
			return &room.Players[i]
		}
	}
	return nil
}

// CreateRoom opens a room with the caller seated as its owner
func (s *Service) CreateRoom(ctx context.Context, caller Caller, in CreateRoomInput) (*poker.Room, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	owner := poker.Seat{ID: uuid.NewString(), UserID: caller.UserID, Name: caller.Name}
	room, err := poker.NewRoom("", name, owner, withDefaults(in.Settings))
	if err != nil {
		return nil, err
	}

	hash := ""
	if in.Password != "" {
		if hash, err = hashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	created, err := s.store.CreateRoom(ctx, room, hash)
	if err != nil {
		log.Printf("[ROOM-ERROR] Creating room for %s: %v", caller.Name, err)
		return nil, err
	}
	log.Printf("[ROOM] %s created room %s (%s)", caller.Name, created.ID, created.Name)
	s.notifier.RoomUpdated(created)
	return created, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]*poker.Room, error) {
	return s.store.ListRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id string) (*poker.Room, error) {
	return s.load(ctx, id)
}

// UpdateRoom changes the room settings. Not allowed while a hand is running.
func (s *Service) UpdateRoom(ctx context.Context, caller Caller, id string, in UpdateRoomInput) (*poker.Room, error) {
	return s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		if err := ownedBy(room, caller); err != nil {
			return nil, err
		}
		if room.InHand {
			return nil, poker.ErrHandInProgress
		}

		next := room.Clone()
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return nil, ErrNameRequired
			}
			next.Name = name
		}
		settings := next.Settings()
		if in.MaxPlayers != nil {
			settings.MaxPlayers = *in.MaxPlayers
		}
		if in.SmallBlind != nil {
			settings.SmallBlind = *in.SmallBlind
		}
		if in.BigBlind != nil {
			settings.BigBlind = *in.BigBlind
		}
		if in.StartingChips != nil {
			settings.StartingChips = *in.StartingChips
		}
		if err := settings.Validate(); err != nil {
			return nil, err
		}
		if settings.MaxPlayers < len(next.Players) {
			return nil, fmt.Errorf("%w: %d players are already seated", poker.ErrInvalidSettings, len(next.Players))
		}
		next.MaxPlayers = settings.MaxPlayers
		next.SmallBlind = settings.SmallBlind
		next.BigBlind = settings.BigBlind
		next.StartingChips = settings.StartingChips
		next.LastAction = "Room settings updated"

		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		if in.Password != nil {
			hash := ""
			if *in.Password != "" {
				var err error
				if hash, err = hashPassword(*in.Password); err != nil {
					return nil, err
				}
			}
			if err := s.store.SetPassword(ctx, id, hash); err != nil {
				return nil, err
			}
			next.HasPassword = hash != ""
		}
		log.Printf("[ROOM] Room %s updated by %s", id, caller.Name)
		return next, nil
	})
}

// DeleteRoom closes the room. The row is kept with its history.
func (s *Service) DeleteRoom(ctx context.Context, caller Caller, id string) error {
	_, err := s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		if err := ownedBy(room, caller); err != nil {
			return nil, err
		}
		next := room.Clone()
		next.IsActive = false
		next.InHand = false
		next.ActingPlayerID = ""
		next.LastAction = "Room closed"
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		log.Printf("[ROOM] Room %s closed by %s", id, caller.Name)
		return next, nil
	})
	return err
}

// JoinRoom seats the caller, checking the room password when there is one
func (s *Service) JoinRoom(ctx context.Context, caller Caller, id, password string) (*poker.Room, error) {
	return s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		if seatOf(room, caller.UserID) != nil {
			return nil, ErrAlreadySeated
		}
		if room.HasPassword {
			hash, err := s.store.PasswordHash(ctx, id)
			if err != nil {
				return nil, err
			}
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
				return nil, ErrWrongPassword
			}
		}

		next, err := poker.AddPlayer(room, poker.Seat{ID: uuid.NewString(), UserID: caller.UserID, Name: caller.Name})
		if err != nil {
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		log.Printf("[ROOM] %s joined room %s", caller.Name, id)
		return next, nil
	})
}

// LeaveRoom gives up the caller's seat
func (s *Service) LeaveRoom(ctx context.Context, caller Caller, id string) (*poker.Room, error) {
	return s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		seat := seatOf(room, caller.UserID)
		if seat == nil {
			return nil, poker.ErrPlayerNotFound
		}
		next, err := poker.RemovePlayer(room, seat.ID)
		if err != nil {
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		log.Printf("[ROOM] %s left room %s", caller.Name, id)
		return next, nil
	})
}

// StartHand deals the next hand. Owner only.
func (s *Service) StartHand(ctx context.Context, caller Caller, id string) (*poker.Room, error) {
	return s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		if err := ownedBy(room, caller); err != nil {
			return nil, err
		}
		next, err := poker.StartHand(room)
		if err != nil {
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		log.Printf("[HAND] Room %s hand #%d started, pot %d", id, next.HandNumber, next.CurrentPot)
		return next, nil
	})
}

// ApplyAction plays an action for a seat the caller owns. The result is
// non-nil when the action ended the hand.
func (s *Service) ApplyAction(ctx context.Context, caller Caller, id string, a poker.Action) (*poker.Room, *poker.HandResult, error) {
	var res *poker.HandResult
	next, err := s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		seat := room.Seat(a.PlayerID)
		if seat == nil {
			return nil, fmt.Errorf("%w: %s", poker.ErrPlayerNotFound, a.PlayerID)
		}
		if seat.UserID != caller.UserID {
			return nil, ErrNotYourSeat
		}

		next, result, err := poker.ApplyAction(room, a)
		if err != nil {
			log.Printf("[ACTION] Rejected %s %s in room %s: %v", seat.Name, a.Type, id, err)
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}

		record := &models.GameAction{
			RoomID:     id,
			HandNumber: room.HandNumber,
			Round:      string(room.CurrentRound),
			PlayerID:   seat.ID,
			PlayerName: seat.Name,
			Action:     string(a.Type),
			Amount:     next.Seat(seat.ID).TotalBet - seat.TotalBet,
		}
		if err := s.store.AppendAction(ctx, record); err != nil {
			log.Printf("[ACTION-ERROR] Logging action in room %s: %v", id, err)
		}
		log.Printf("[ACTION] Room %s: %s", id, next.LastAction)

		if result != nil {
			s.recordResult(ctx, id, room.HandNumber, *result)
			res = result
		}
		return next, nil
	})
	if err != nil {
		return nil, nil, err
	}
	if res != nil {
		s.notifier.HandFinished(id, *res)
	}
	return next, res, nil
}

// DeclareWinner pays pot to the winner and ends the hand. Owner only.
func (s *Service) DeclareWinner(ctx context.Context, caller Caller, id, winnerID string, pot int) (*poker.Room, poker.HandResult, error) {
	var res poker.HandResult
	next, err := s.locked(ctx, id, func(room *poker.Room) (*poker.Room, error) {
		if err := ownedBy(room, caller); err != nil {
			return nil, err
		}
		next, result, err := poker.SettleHand(room, winnerID, pot)
		if err != nil {
			return nil, err
		}
		if err := s.save(ctx, next); err != nil {
			return nil, err
		}
		s.recordResult(ctx, id, room.HandNumber, result)
		res = result
		return next, nil
	})
	if err != nil {
		return nil, poker.HandResult{}, err
	}
	s.notifier.HandFinished(id, res)
	return next, res, nil
}

func (s *Service) recordResult(ctx context.Context, roomID string, hand int, res poker.HandResult) {
	record := &models.HandResult{
		RoomID:     roomID,
		HandNumber: hand,
		WinnerID:   res.WinnerID,
		WinnerName: res.WinnerName,
		Pot:        res.Pot,
		Hand:       res.Hand,
	}
	if err := s.store.AppendResult(ctx, record); err != nil {
		log.Printf("[HAND-ERROR] Logging result in room %s: %v", roomID, err)
	}
	log.Printf("[HAND] Room %s hand #%d: %s won %d (%s)", roomID, hand, res.WinnerName, res.Pot, res.Hand)
}

func (s *Service) ListActions(ctx context.Context, id string) ([]models.GameAction, error) {
	return s.store.ListActions(ctx, id)
}

func (s *Service) ListHandResults(ctx context.Context, id string) ([]models.HandResult, error) {
	return s.store.ListResults(ctx, id)
}

// IsClientError reports whether err was caused by the request rather than
// by the server
func IsClientError(err error) bool {
	return poker.KindOf(err) != 0 ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotYourSeat) ||
		errors.Is(err, ErrWrongPassword) ||
		errors.Is(err, ErrAlreadySeated) ||
		errors.Is(err, ErrNameRequired)
}
