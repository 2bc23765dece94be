package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// 알림 이벤트 유형
const (
	EventCashChanged      = "cash_changed"
	EventMissionCompleted = "mission_completed"
	EventChatResponse     = "chat_response"
)

// Event 알림 워커가 소비하는 이벤트. Payload 는 이벤트 유형별 자유 형식.
type Event struct {
	Type      string                 `json:"type"`
	UserID    int64                  `json:"user_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt int64                  `json:"created_at"`
}

type Queue struct {
	client    *redis.Client
	queueName string
}

func NewQueue(client *redis.Client, queueName string) *Queue {
	return &Queue{
		client:    client,
		queueName: queueName,
	}
}

// Push 이벤트를 큐에 넣는다
func (q *Queue) Push(ctx context.Context, evt *Event) error {
	if evt.CreatedAt == 0 {
		evt.CreatedAt = time.Now().Unix()
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.client.LPush(ctx, q.queueName, data).Err()
}

// Pop 큐에서 이벤트를 꺼낸다 (블로킹, 타임아웃 시 nil)
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*Event, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop from queue: %w", err)
	}

	if len(result) < 2 {
		return nil, nil
	}

	var evt Event
	if err := json.Unmarshal([]byte(result[1]), &evt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &evt, nil
}

// Length 큐 길이
func (q *Queue) Length(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.queueName).Result()
}
