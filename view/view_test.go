package view

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
)

func slotBuildsOnce(t *testing.T) {
	built := 0
	slot := NewSlot(func() *counter.Engine {
		built++
		return counter.New()
	})

	assert.Equal(t, 0, built)

	first := slot.Get()
	first.Increment()

	// simulated re-renders
	for i := 0; i < 3; i++ {
		assert.Same(t, first, slot.Get())
	}

	assert.Equal(t, 1, built)
	assert.Equal(t, int64(1), slot.Get().Value())
}

func slotResetRebuilds(t *testing.T) {
	slot := NewSlot(func() *counter.Engine { return counter.New() })

	first := slot.Get()
	first.Increment()
	slot.Reset()

	second := slot.Get()
	assert.NotSame(t, first, second)
	assert.Equal(t, int64(0), second.Value())
}

func sessionIDsAreOrdered(t *testing.T) {
	generator := NewSessionIDGenerator()
	now := time.Now()

	first := generator.NewSessionID(now)
	second := generator.NewSessionID(now)

	assert.Less(t, first.String(), second.String())

	parsed, err := ParseSessionID(first.String())
	assert.NoError(t, err)
	assert.Equal(t, first, parsed)

	_, err = ParseSessionID("not-a-session")
	assert.Error(t, err)
}

func sessionsKeepEngines(t *testing.T) {
	sessions := NewSessions(InitialValue(5))

	session := sessions.Create()
	session.Engine().Decrement()

	loaded, err := sessions.Get(session.ID)
	require.NoError(t, err)

	assert.Same(t, session.Engine(), loaded.Engine())
	assert.Equal(t, int64(4), loaded.Engine().Value())
	assert.Equal(t, int64(1), loaded.Renders())
}

func sessionsAreIndependent(t *testing.T) {
	sessions := NewSessions(0)

	first := sessions.Create()
	second := sessions.Create()
	first.Engine().Increment()

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(1), first.Engine().Value())
	assert.Equal(t, int64(0), second.Engine().Value())
	assert.Equal(t, 2, sessions.Len())
}

func releaseIsIdempotent(t *testing.T) {
	sessions := NewSessions(0)
	session := sessions.Create()

	sessions.Release(session.ID)
	assert.NotPanics(t, func() { sessions.Release(session.ID) })

	_, err := sessions.Get(session.ID)

	var notFound SessionNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, session.ID, notFound.ID)
	assert.Equal(t, 0, sessions.Len())
}

func sessionResetRemounts(t *testing.T) {
	sessions := NewSessions(InitialValue(3))
	session := sessions.Create()

	old := session.Engine()
	old.Increment()
	old.Increment()
	require.Equal(t, int64(2), session.Renders())

	session.Reset()

	assert.Equal(t, int64(0), session.Renders())
	assert.Equal(t, 0, old.Listeners())

	fresh := session.Engine()
	assert.NotSame(t, old, fresh)
	assert.Equal(t, int64(3), fresh.Value())

	// the released engine no longer renders the session
	old.Increment()
	assert.Equal(t, int64(0), session.Renders())

	fresh.Decrement()
	assert.Equal(t, int64(1), session.Renders())

	loaded, err := sessions.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, fresh, loaded.Engine())
}

func TestView(t *testing.T) {
	t.Run("slot builds once", slotBuildsOnce)
	t.Run("slot reset rebuilds", slotResetRebuilds)
	t.Run("session ids are ordered", sessionIDsAreOrdered)
	t.Run("sessions keep their engines", sessionsKeepEngines)
	t.Run("sessions are independent", sessionsAreIndependent)
	t.Run("release is idempotent", releaseIsIdempotent)
	t.Run("session reset remounts", sessionResetRemounts)
}
