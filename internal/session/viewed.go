package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewedSet is the per-session "already viewed content ids" capability.
// It is owned by the session collaborator and passed into the lifecycle
// manager's RecordView; the moderation core never stores it.
type ViewedSet interface {
	HasViewed(ctx context.Context, contentID int64) (bool, error)
	MarkViewed(ctx context.Context, contentID int64) error
}

type redisViewedSet struct {
	client    *redis.Client
	sessionID string
	boardType string
	ttl       time.Duration
}

// NewRedisViewedSet creates a Redis-backed viewed set scoped to one session
// and one content type. The whole set expires with the session TTL.
func NewRedisViewedSet(client *redis.Client, sessionID, boardType string, ttl time.Duration) ViewedSet {
	return &redisViewedSet{client: client, sessionID: sessionID, boardType: boardType, ttl: ttl}
}

func (s *redisViewedSet) key() string {
	return fmt.Sprintf("viewed:%s:%s", s.sessionID, s.boardType)
}

func (s *redisViewedSet) HasViewed(ctx context.Context, contentID int64) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	return s.client.SIsMember(ctx, s.key(), contentID).Result()
}

func (s *redisViewedSet) MarkViewed(ctx context.Context, contentID int64) error {
	if s.client == nil {
		return nil
	}
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, s.key(), contentID)
	pipe.Expire(ctx, s.key(), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// MemoryViewedSet is an in-process ViewedSet for tests and for running
// without Redis. Safe for concurrent use.
type MemoryViewedSet struct {
	mu  sync.RWMutex
	ids map[int64]bool
}

// NewMemoryViewedSet creates an empty in-memory viewed set
func NewMemoryViewedSet() *MemoryViewedSet {
	return &MemoryViewedSet{ids: make(map[int64]bool)}
}

func (s *MemoryViewedSet) HasViewed(_ context.Context, contentID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[contentID], nil
}

func (s *MemoryViewedSet) MarkViewed(_ context.Context, contentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[contentID] = true
	return nil
}
