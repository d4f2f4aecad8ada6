package service

import (
	"context"
	"sync"
	"time"

	"sabor-autentico/site-svc/internal/clock"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type SessionDeps struct {
	Clock     clock.Clock
	Publisher EventPublisher
	QR        QRGenerator
}

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

// SessionStore keeps live sessions in memory and discards the idle ones.
type SessionStore struct {
	deps SessionDeps
	idle time.Duration

	mu       sync.Mutex
	sessions map[string]*storedSession
}

func NewSessionStore(deps SessionDeps, idle time.Duration) *SessionStore {
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	return &SessionStore{
		deps:     deps,
		idle:     idle,
		sessions: map[string]*storedSession{},
	}
}

// GetOrCreate returns the live session for id, or a fresh one under a new id.
// The boolean reports whether a session was created.
func (s *SessionStore) GetOrCreate(id string) (*Session, bool) {
	now := s.deps.Clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.sessions[id]; ok {
		stored.lastSeen = now
		return stored.session, false
	}

	session := NewSession(uuid.NewString(), s.deps)
	s.sessions[session.ID] = &storedSession{session: session, lastSeen: now}
	log.Debug().Str("session_id", session.ID).Msg("session created")
	return session, true
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	stored.lastSeen = s.deps.Clock.Now()
	return stored.session, true
}

func (s *SessionStore) Discard(id string) bool {
	s.mu.Lock()
	stored, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		stored.session.Close()
	}
	return ok
}

// Sweep discards every session idle for longer than the configured timeout.
func (s *SessionStore) Sweep() int {
	cutoff := s.deps.Clock.Now().Add(-s.idle)

	s.mu.Lock()
	var expired []*Session
	for id, stored := range s.sessions {
		if stored.lastSeen.Before(cutoff) {
			expired = append(expired, stored.session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		log.Info().Int("expired", len(expired)).Msg("idle sessions discarded")
	}
	return len(expired)
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps on every tick until ctx is done, then discards all sessions.
func (s *SessionStore) Run(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SessionStore) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = map[string]*storedSession{}
	s.mu.Unlock()

	for _, stored := range sessions {
		stored.session.Close()
	}
}
