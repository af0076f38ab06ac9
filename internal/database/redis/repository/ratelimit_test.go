package repository

import (
	"context"
	"testing"

	"backoffice/config"
	"backoffice/internal/telemetry"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnreachableRepository(t *testing.T) *RateLimiterRepository {
	t.Helper()
	trace, err := telemetry.NewTrace(&config.Configuration{})
	require.NoError(t, err)
	// 指向不存在的 redis；只驗證呼叫路徑，不驗證配額邏輯
	return &RateLimiterRepository{
		trace:  trace,
		client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
	}
}

func TestConsumeSurfacesClientError(t *testing.T) {
	repository := newUnreachableRepository(t)

	_, _, err := repository.Consume(context.Background(), "1.2.3.4:/public/x", 60, 10)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimitExceeded)
}

func TestDeleteSurfacesClientError(t *testing.T) {
	repository := newUnreachableRepository(t)

	err := repository.Delete(context.Background(), "1.2.3.4:/public/x")
	assert.Error(t, err)
}
