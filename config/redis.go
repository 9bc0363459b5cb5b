package config

import (
	"Chipster/services/redis"
	"log"
)

// Connect_redis opens the snapshot cache. An empty URL means no cache.
func Connect_redis(redisURL string) (*redis.RedisClient, error) {
	if redisURL == "" {
		log.Println("REDIS_URL not set, room snapshots will not be cached")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(redisURL, 0)
	if err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("Redis connection established")
	return redisClient, nil
}
