package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aroundme-service/internal/domain"
	redisRepo "github.com/aroundme-service/internal/repository/redis"
)

const (
	testScoreStream  = "test:stream:listing:score"
	testScoredStream = "test:stream:listing:scored"
)

func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testScoreStream, testScoredStream)

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testScoreStream)

	require.NoError(t, repo.CreateConsumerGroup(ctx, testScoreStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testScoreStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// повторное создание - не ошибка
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testScoreStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testScoredStream)

	event := domain.ListingScoredEvent{
		EventID:   uuid.New(),
		ListingID: uuid.New(),
		Score:     10.5,
		ScoredPlaces: []domain.ScoredPlace{
			{PlaceType: domain.POITramStop, Score: 6, Count: 3},
		},
	}
	require.NoError(t, repo.PublishToStream(ctx, testScoredStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testScoredStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.ListingScoredEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, event.ListingID, received.ListingID)
	assert.Equal(t, 10.5, received.Score)
	require.Len(t, received.ScoredPlaces, 1)
	assert.Equal(t, domain.POITramStop, received.ScoredPlaces[0].PlaceType)
}

func TestStreamRepository_ConsumeBatchAndAck(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testScoreStream)

	group := "test-consume-group"
	require.NoError(t, repo.CreateConsumerGroup(ctx, testScoreStream, group))

	t.Run("empty stream", func(t *testing.T) {
		messages, err := repo.ConsumeBatch(ctx, testScoreStream, group, "consumer-1", 10)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	listingID := uuid.New()
	require.NoError(t, repo.PublishToStream(ctx, testScoreStream, domain.ListingScoreEvent{ListingID: listingID}))
	require.NoError(t, repo.PublishToStream(ctx, testScoreStream, domain.ListingScoreEvent{ListingID: uuid.New()}))

	messages, err := repo.ConsumeBatch(ctx, testScoreStream, group, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	var event domain.ListingScoreEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &event))
	assert.Equal(t, listingID, event.ListingID)

	pending, err := client.XPending(ctx, testScoreStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessages(ctx, testScoreStream, group, []string{messages[0].ID, messages[1].ID}))

	pending, err = client.XPending(ctx, testScoreStream, group).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	assert.NoError(t, repo.AckMessages(ctx, testScoreStream, group, nil))
}
