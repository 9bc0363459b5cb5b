package config_test

import (
	"Chipster/config"
	"Chipster/services/redis"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_redis(t *testing.T) {
	t.Run("No URL", func(t *testing.T) {
		rc, err := config.Connect_redis("")
		assert.NoError(t, err)
		assert.Nil(t, rc)
	})

	t.Run("Reachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rc, err := config.Connect_redis(mr.Addr())
		require.NoError(t, err)
		require.NotNil(t, rc)
		assert.NoError(t, redis.CloseRedis(rc))
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := config.Connect_redis("redis://127.0.0.1:1/0")
		assert.Error(t, err)
	})
}
