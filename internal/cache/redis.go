// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list (queue) name for game action logs.
const DefaultQueueName = "concentration_actions"

// ActionRecord holds the minimal info a downstream consumer needs to replay or audit a game.
type ActionRecord struct {
	GameID        uuid.UUID              `json:"game_id"`
	Generation    uint64                 `json:"generation"`
	ActionIndex   int                    `json:"action_index"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// ActionLog pushes ActionRecords onto a Redis list. A nil *ActionLog discards everything,
// which is how the action log is disabled.
type ActionLog struct {
	rdb   *redis.Client
	queue string
}

// Options configures Connect.
type Options struct {
	Addr  string
	DB    int
	Queue string
}

// Connect creates a client for opts.Addr and pings it.
func Connect(ctx context.Context, opts Options) (*ActionLog, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	return NewActionLog(rdb, opts.Queue), nil
}

// NewActionLog wraps an existing client.
func NewActionLog(rdb *redis.Client, queue string) *ActionLog {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &ActionLog{rdb: rdb, queue: queue}
}

// Queue returns the list name records are pushed to.
func (l *ActionLog) Queue() string {
	if l == nil {
		return ""
	}
	return l.queue
}

// Publish serializes the record to JSON, then pushes it to the Redis queue.
func (l *ActionLog) Publish(ctx context.Context, record ActionRecord) error {
	if l == nil || l.rdb == nil {
		return nil
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal ActionRecord: %w", err)
	}
	if err := l.rdb.RPush(ctx, l.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", l.queue, err)
	}
	return nil
}

// Next blocks up to timeout for the oldest record in the queue. It returns nil, nil when
// the queue stayed empty.
func (l *ActionLog) Next(ctx context.Context, timeout time.Duration) (*ActionRecord, error) {
	if l == nil || l.rdb == nil {
		return nil, nil
	}
	res, err := l.rdb.BLPop(ctx, timeout, l.queue).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("BLPop %s: %w", l.queue, err)
	}
	// res[0] is the queue name and res[1] the payload.
	if len(res) < 2 {
		return nil, nil
	}
	var record ActionRecord
	if err := json.Unmarshal([]byte(res[1]), &record); err != nil {
		return nil, fmt.Errorf("invalid action record: %w", err)
	}
	return &record, nil
}

func (l *ActionLog) Close() error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Close()
}
