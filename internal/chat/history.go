package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/stylemind/stylemind-backend/internal/ai"
)

// maxHistoryMessages caps stored conversation turns per user
const maxHistoryMessages = 20

// History stores per-user conversation turns, oldest first, capped at
// maxHistoryMessages.
type History interface {
	Append(ctx context.Context, userID string, messages ...ai.Message) error
	Get(ctx context.Context, userID string) ([]ai.Message, error)
	Clear(ctx context.Context, userID string) error
}

// RedisHistory keeps conversations in a redis list per user
type RedisHistory struct {
	client *redis.Client
}

// NewRedisHistory creates a redis-backed history store
func NewRedisHistory(client *redis.Client) *RedisHistory {
	return &RedisHistory{client: client}
}

func historyKey(userID string) string {
	return "chat:history:" + userID
}

// Append pushes messages and trims the list to the cap
func (h *RedisHistory) Append(ctx context.Context, userID string, messages ...ai.Message) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		payload, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal chat message: %w", err)
		}
		values = append(values, payload)
	}

	key := historyKey(userID)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxHistoryMessages, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append chat history: %w", err)
	}
	return nil
}

// Get returns the stored conversation, oldest first
func (h *RedisHistory) Get(ctx context.Context, userID string) ([]ai.Message, error) {
	raw, err := h.client.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	messages := make([]ai.Message, 0, len(raw))
	for _, entry := range raw {
		var m ai.Message
		if err := json.Unmarshal([]byte(entry), &m); err != nil {
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Clear drops the user's conversation
func (h *RedisHistory) Clear(ctx context.Context, userID string) error {
	if err := h.client.Del(ctx, historyKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

// MemoryHistory is an in-process History for tests and single-node runs
type MemoryHistory struct {
	mu            sync.RWMutex
	conversations map[string][]ai.Message
}

// NewMemoryHistory creates an empty in-memory history store
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{conversations: make(map[string][]ai.Message)}
}

// Append stores messages and trims to the cap
func (h *MemoryHistory) Append(_ context.Context, userID string, messages ...ai.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	history := append(h.conversations[userID], messages...)
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	h.conversations[userID] = history
	return nil
}

// Get returns a copy of the stored conversation
func (h *MemoryHistory) Get(_ context.Context, userID string) ([]ai.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]ai.Message{}, h.conversations[userID]...), nil
}

// Clear drops the user's conversation
func (h *MemoryHistory) Clear(_ context.Context, userID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conversations, userID)
	return nil
}
