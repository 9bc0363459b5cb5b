package redis

import (
	redis_utils "Chipster/services/redis/utils"
	"context"
	"fmt"
)

// CleanupRooms removes the cached snapshots of the given rooms
func (rc *RedisClient) CleanupRooms(ctx context.Context, roomIDs []string) error {
	for _, id := range roomIDs {
		key := redis_utils.FormatRoomStateKey(id)
		if err := rc.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
