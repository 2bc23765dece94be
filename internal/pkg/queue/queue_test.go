package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return client, cleanup
}

func TestQueue_PushPop(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	q := NewQueue(client, "test_events")

	evt := &Event{
		Type:   EventCashChanged,
		UserID: 42,
		Payload: map[string]interface{}{
			"amount":  float64(500),
			"ai_cash": float64(1500),
		},
	}

	err := q.Push(ctx, evt)
	require.NoError(t, err)

	length, err := q.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), length)

	result, err := q.Pop(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, EventCashChanged, result.Type)
	assert.Equal(t, int64(42), result.UserID)
	assert.Equal(t, float64(500), result.Payload["amount"])
	assert.NotZero(t, result.CreatedAt) // Push 가 채워준다
}

func TestQueue_FIFOOrder(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	q := NewQueue(client, "test_fifo")

	for i := 1; i <= 3; i++ {
		err := q.Push(ctx, &Event{Type: EventMissionCompleted, UserID: int64(i)})
		require.NoError(t, err)
	}

	for i := 1; i <= 3; i++ {
		result, err := q.Pop(ctx, time.Second)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(i), result.UserID)
	}
}

func TestQueue_PopEmptyTimesOut(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	q := NewQueue(client, "test_empty")

	result, err := q.Pop(context.Background(), 10*time.Millisecond)

	// miniredis 의 BRPop 타임아웃 동작이 불완전해서 nil 또는 에러 둘 다 허용
	if err == nil {
		assert.Nil(t, result)
	}
}

func TestQueue_Length(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	q := NewQueue(client, "test_length")

	length, err := q.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), length)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(ctx, &Event{Type: EventChatResponse, UserID: int64(i)}))
	}

	length, err = q.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), length)

	_, err = q.Pop(ctx, time.Second)
	require.NoError(t, err)

	length, err = q.Length(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}
