package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"barbershop-backend/booking"

	"github.com/redis/go-redis/v9"
)

// HandoffTTL bounds how long a style picked in the catalog waits for the
// visitor to open the booking flow.
const HandoffTTL = 24 * time.Hour

// HandoffStore carries the style a visitor picked in the cuts catalog over to
// the booking wizard. Get returns nil when nothing is stored.
type HandoffStore interface {
	Put(ctx context.Context, visitorID string, sel booking.Initial) error
	Get(ctx context.Context, visitorID string) (*booking.Initial, error)
	Clear(ctx context.Context, visitorID string) error
}

type RedisHandoffStore struct {
	rdb     *redis.Client
	siteKey string
}

func NewRedisHandoffStore(rdb *redis.Client, siteKey string) *RedisHandoffStore {
	return &RedisHandoffStore{rdb: rdb, siteKey: siteKey}
}

func (s *RedisHandoffStore) key(visitorID string) string {
	return fmt.Sprintf("%s:selected_cut:%s", s.siteKey, visitorID)
}

func (s *RedisHandoffStore) Put(ctx context.Context, visitorID string, sel booking.Initial) error {
	raw, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode selected cut: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(visitorID), raw, HandoffTTL).Err(); err != nil {
		return fmt.Errorf("store selected cut: %w", err)
	}
	return nil
}

func (s *RedisHandoffStore) Get(ctx context.Context, visitorID string) (*booking.Initial, error) {
	raw, err := s.rdb.Get(ctx, s.key(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read selected cut: %w", err)
	}
	var sel booking.Initial
	if err := json.Unmarshal(raw, &sel); err != nil || sel.ID == "" {
		// Unreadable records are treated as absent.
		return nil, nil
	}
	return &sel, nil
}

func (s *RedisHandoffStore) Clear(ctx context.Context, visitorID string) error {
	return s.rdb.Del(ctx, s.key(visitorID)).Err()
}

// MemoryHandoffStore is used when redis is not configured. Entries are lost
// on restart.
type MemoryHandoffStore struct {
	mu      sync.Mutex
	entries map[string]memoryHandoff
	now     func() time.Time
}

type memoryHandoff struct {
	sel     booking.Initial
	expires time.Time
}

func NewMemoryHandoffStore() *MemoryHandoffStore {
	return &MemoryHandoffStore{entries: make(map[string]memoryHandoff), now: time.Now}
}

func (s *MemoryHandoffStore) Put(_ context.Context, visitorID string, sel booking.Initial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[visitorID] = memoryHandoff{sel: sel, expires: s.now().Add(HandoffTTL)}
	return nil
}

func (s *MemoryHandoffStore) Get(_ context.Context, visitorID string) (*booking.Initial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[visitorID]
	if !ok {
		return nil, nil
	}
	if s.now().After(e.expires) {
		delete(s.entries, visitorID)
		return nil, nil
	}
	sel := e.sel
	return &sel, nil
}

func (s *MemoryHandoffStore) Clear(_ context.Context, visitorID string) error {
	s.mu.Lock()
	delete(s.entries, visitorID)
	s.mu.Unlock()
	return nil
}
