package counter

import "sync/atomic"

// Subscription is the handle returned by Engine.Subscribe.
type Subscription struct {
	id        uint64
	engine    *Engine
	listener  Listener
	cancelled atomic.Bool
}

func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}

	s.engine.Unsubscribe(s)
}

func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled.Load()
}

func (s *Subscription) notify() {
	if s.cancelled.Load() {
		return
	}

	s.listener()
}
