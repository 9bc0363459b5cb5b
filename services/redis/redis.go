package redis

import (
	game_constants "Chipster/constants/game"
	"Chipster/services/poker"
	redis_utils "Chipster/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Addr is either a plain
// host:port or a redis:// URL.
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if strings.Contains(Addr, "://") {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// SaveRoomSnapshot caches the state of a room
// Key format: "room:{id}:state"
// TTL: 24 hours
func (rc *RedisClient) SaveRoomSnapshot(ctx context.Context, room *poker.Room) error {
	key := redis_utils.FormatRoomStateKey(room.ID)
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room data: %v", err)
	}
	return rc.client.Set(ctx, key, data, game_constants.SNAPSHOT_TTL).Err()
}

// GetRoomSnapshot retrieves a cached room
// Key format: "room:{id}:state"
// Returns: nil, nil when nothing is cached
func (rc *RedisClient) GetRoomSnapshot(ctx context.Context, roomID string) (*poker.Room, error) {
	key := redis_utils.FormatRoomStateKey(roomID)
	data, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting room data: %v", err)
	}

	var room poker.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("error unmarshaling room data: %v", err)
	}
	if room.ActedPlayers == nil {
		room.ActedPlayers = map[string]bool{}
	}
	if room.CommunityCards == nil {
		room.CommunityCards = []string{}
	}
	return &room, nil
}

// DeleteRoomSnapshot drops a cached room
func (rc *RedisClient) DeleteRoomSnapshot(ctx context.Context, roomID string) error {
	pipe := rc.client.Pipeline()
	pipe.Del(ctx, redis_utils.FormatRoomStateKey(roomID))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("error deleting room data: %v", err)
	}
	return nil
}
