package services

import (
	"sync"
	"time"

	"barbershop-backend/booking"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSessionTTL is how long an untouched booking session survives.
const DefaultSessionTTL = 30 * time.Minute

// Session wraps one wizard. Requests for the same session are serialized
// through Do.
type Session struct {
	ID        string
	VisitorID string
	ShopPhone string

	mu       sync.Mutex
	wizard   *booking.Wizard
	lastSeen time.Time
}

// Do runs fn with exclusive access to the wizard.
func (s *Session) Do(now time.Time, fn func(w *booking.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
	return fn(s.wizard)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore keeps booking sessions in memory. Nothing here is persisted;
// a restart drops every open booking.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewSessionStore(ttl time.Duration, logger *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionStore) Create(visitorID, shopPhone string, w *booking.Wizard) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		ShopPhone: shopPhone,
		wizard:    w,
		lastSeen:  s.now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

// Do looks up the session and runs fn on its wizard. It reports false when
// the session does not exist.
func (s *SessionStore) Do(id string, fn func(w *booking.Wizard) error) (bool, error) {
	sess, ok := s.Get(id)
	if !ok {
		return false, nil
	}
	return true, sess.Do(s.now(), fn)
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper schedules Sweep on the given cron spec, e.g. "@every 5m".
func (s *SessionStore) StartSweeper(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			s.logger.Info("expired booking sessions removed", zap.Int("count", n))
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("booking session sweeper started", zap.String("schedule", spec), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *SessionStore) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
