package sync

import (
	"Chipster/services/poker"
	"Chipster/services/redis"
	"Chipster/services/rooms"
	"context"
	"log"
)

// SyncManager keeps the Redis snapshot cache in step with the database. Reads
// go to Redis first and fall back to the store; writes go to the store and
// then refresh Redis. A failing Redis only costs the cache.
type SyncManager struct {
	rooms.Store
	redisClient *redis.RedisClient
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, store rooms.Store) *SyncManager {
	return &SyncManager{
		Store:       store,
		redisClient: redisClient,
	}
}

func (sm *SyncManager) cache(ctx context.Context, room *poker.Room) {
	if err := sm.redisClient.SaveRoomSnapshot(ctx, room); err != nil {
		log.Printf("[SYNC-ERROR] Caching room %s: %v", room.ID, err)
		sm.evict(ctx, room.ID)
	}
}

func (sm *SyncManager) evict(ctx context.Context, roomID string) {
	if err := sm.redisClient.DeleteRoomSnapshot(ctx, roomID); err != nil {
		log.Printf("[SYNC-ERROR] Evicting room %s: %v", roomID, err)
	}
}

func (sm *SyncManager) CreateRoom(ctx context.Context, room *poker.Room, passwordHash string) (*poker.Room, error) {
	created, err := sm.Store.CreateRoom(ctx, room, passwordHash)
	if err != nil {
		return nil, err
	}
	sm.cache(ctx, created)
	return created, nil
}

// GetRoom serves the cached snapshot when there is one
func (sm *SyncManager) GetRoom(ctx context.Context, id string) (*poker.Room, error) {
	cached, err := sm.redisClient.GetRoomSnapshot(ctx, id)
	if err != nil {
		log.Printf("[SYNC-ERROR] Reading room %s from Redis: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	room, err := sm.Store.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	sm.cache(ctx, room)
	return room, nil
}

// SaveRoom refreshes the snapshot. Closed rooms leave the cache.
func (sm *SyncManager) SaveRoom(ctx context.Context, room *poker.Room) error {
	if err := sm.Store.SaveRoom(ctx, room); err != nil {
		sm.evict(ctx, room.ID)
		return err
	}
	if !room.IsActive {
		if err := sm.redisClient.CleanupRooms(ctx, []string{room.ID}); err != nil {
			log.Printf("[SYNC-ERROR] Dropping closed room %s: %v", room.ID, err)
		}
		return nil
	}
	sm.cache(ctx, room)
	return nil
}

// SetPassword drops the cached snapshot, whose HasPassword is now stale
func (sm *SyncManager) SetPassword(ctx context.Context, id, passwordHash string) error {
	if err := sm.Store.SetPassword(ctx, id, passwordHash); err != nil {
		return err
	}
	sm.evict(ctx, id)
	return nil
}
