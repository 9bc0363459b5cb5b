package rooms

import (
	models "Chipster/models/postgres"
	"Chipster/services/poker"
	"context"
)

// Store persists room snapshots together with their action and result logs.
// GetRoom and the other lookups return poker.ErrRoomNotFound for unknown ids.
type Store interface {
	// CreateRoom stores a new room. When room.ID is empty the store picks a
	// free room code. The stored snapshot is returned.
	CreateRoom(ctx context.Context, room *poker.Room, passwordHash string) (*poker.Room, error)
	GetRoom(ctx context.Context, id string) (*poker.Room, error)
	SaveRoom(ctx context.Context, room *poker.Room) error
	// ListRooms returns the open rooms, newest first
	ListRooms(ctx context.Context) ([]*poker.Room, error)

	SetPassword(ctx context.Context, id, passwordHash string) error
	PasswordHash(ctx context.Context, id string) (string, error)

	AppendAction(ctx context.Context, action *models.GameAction) error
	AppendResult(ctx context.Context, result *models.HandResult) error
	ListActions(ctx context.Context, roomID string) ([]models.GameAction, error)
	ListResults(ctx context.Context, roomID string) ([]models.HandResult, error)
}

// Notifier is told about every accepted change so it can push it to clients
type Notifier interface {
	RoomUpdated(room *poker.Room)
	HandFinished(roomID string, result poker.HandResult)
}

type NopNotifier struct{}

func (NopNotifier) RoomUpdated(*poker.Room) {}
func (NopNotifier) HandFinished(string, poker.HandResult) {}
