package view

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
)

type InitialValue int64

type SessionNotFoundError struct {
	ID SessionID
}

func (e SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// Session is one logical counter. Its engine lives in a slot owned by the
// session, so every request that renders the session sees the same engine.
type Session struct {
	ID      SessionID
	engine  *Slot[*counter.Engine]
	renders atomic.Int64
	render  atomic.Pointer[counter.Subscription]
}

func (s *Session) Engine() *counter.Engine {
	return s.engine.Get()
}

// Reset re-mounts the session: the next render builds a fresh engine at the
// initial value and the render count starts over.
func (s *Session) Reset() {
	s.render.Swap(nil).Unsubscribe()
	s.engine.Reset()
	s.renders.Store(0)
}

// Renders counts the re-renders triggered by counter changes.
func (s *Session) Renders() int64 {
	return s.renders.Load()
}

type SessionsOption func(sessions *Sessions)

func WithLogger(logger *zerolog.Logger) SessionsOption {
	return func(sessions *Sessions) {
		sessions.log = logger
	}
}

func WithClock(now func() time.Time) SessionsOption {
	return func(sessions *Sessions) {
		sessions.now = now
	}
}

type Sessions struct {
	lk       sync.RWMutex
	sessions map[SessionID]*Session
	initial  InitialValue
	ids      *SessionIDGenerator
	now      func() time.Time
	log      *zerolog.Logger
}

func NewSessions(initial InitialValue, options ...SessionsOption) *Sessions {
	sessions := &Sessions{
		sessions: make(map[SessionID]*Session),
		initial:  initial,
		ids:      NewSessionIDGenerator(),
		now:      time.Now,
	}

	for _, option := range options {
		option(sessions)
	}

	if sessions.log == nil {
		sessions.log = &log.Logger
	}

	return sessions
}

func (s *Sessions) Create() *Session {
	session := &Session{ID: s.ids.NewSessionID(s.now())}
	session.engine = NewSlot(func() *counter.Engine {
		engine := counter.New(counter.WithInitialValue(int64(s.initial)))
		session.render.Store(engine.Subscribe(func() { session.renders.Add(1) }))
		return engine
	})

	s.lk.Lock()
	s.sessions[session.ID] = session
	s.lk.Unlock()

	s.log.Debug().Str("session", session.ID.String()).Msg("session created")

	return session
}

func (s *Sessions) Get(id SessionID) (*Session, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, SessionNotFoundError{ID: id}
	}

	return session, nil
}

// Release forgets the session. Releasing an unknown session does nothing.
func (s *Sessions) Release(id SessionID) {
	s.lk.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.lk.Unlock()

	if ok {
		s.log.Debug().Str("session", id.String()).Msg("session released")
	}
}

func (s *Sessions) Len() int {
	s.lk.RLock()
	defer s.lk.RUnlock()

	return len(s.sessions)
}
