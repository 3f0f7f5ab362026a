package redis

import (
	"context"
	"testing"

	"collectioneer/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	server := miniredis.RunT(t)

	client := NewClient(config.RedisConfig{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, Ping(context.Background(), client))

	server.Close()
	require.Error(t, Ping(context.Background(), client))
}
