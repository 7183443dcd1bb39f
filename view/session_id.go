package view

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type SessionID string

func (id SessionID) String() string {
	return string(id)
}

func ParseSessionID(value string) (SessionID, error) {
	parsed, err := ulid.ParseStrict(value)
	if err != nil {
		return "", err
	}

	return SessionID(parsed.String()), nil
}

type SessionIDGenerator struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewSessionIDGenerator() *SessionIDGenerator {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)

	return &SessionIDGenerator{
		entropy: entropy,
	}
}

func (g *SessionIDGenerator) NewSessionID(t time.Time) SessionID {
	g.lk.Lock()
	defer g.lk.Unlock()

	return SessionID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}
