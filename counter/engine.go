package counter

import (
	"sync"
)

type Listener func()

type Option func(engine *Engine)

func WithInitialValue(value int64) Option {
	return func(engine *Engine) {
		engine.value = value
	}
}

// Engine owns a single int64 value and notifies its listeners on every change.
//
// Arithmetic wraps at the int64 bounds. Listeners run synchronously on the
// mutating goroutine, in registration order, with the engine unlocked: a
// listener may read the value, subscribe, unsubscribe or mutate the engine
// again. A mutation from inside a listener runs a nested notification pass
// that completes before the outer pass moves on to its next listener.
type Engine struct {
	lk        sync.Mutex
	value     int64
	listeners []*Subscription
	sequence  uint64
}

func New(options ...Option) *Engine {
	engine := &Engine{}
	for _, option := range options {
		option(engine)
	}

	return engine
}

func (e *Engine) Value() int64 {
	e.lk.Lock()
	defer e.lk.Unlock()

	return e.value
}

func (e *Engine) Increment() {
	e.apply(1)
}

func (e *Engine) Decrement() {
	e.apply(-1)
}

func (e *Engine) apply(delta int64) {
	e.lk.Lock()
	e.value += delta
	snapshot := e.listeners
	e.lk.Unlock()

	for _, subscription := range snapshot {
		subscription.notify()
	}
}

func (e *Engine) Subscribe(listener Listener) *Subscription {
	e.lk.Lock()
	defer e.lk.Unlock()

	e.sequence++
	subscription := &Subscription{id: e.sequence, engine: e, listener: listener}
	if listener == nil {
		subscription.cancelled.Store(true)
		return subscription
	}

	e.listeners = append(e.listeners, subscription)

	return subscription
}

// Unsubscribe removes the subscription from the engine. Removing a subscription
// twice, a nil subscription or one issued by another engine does nothing.
func (e *Engine) Unsubscribe(subscription *Subscription) {
	if subscription == nil || subscription.engine != e {
		return
	}

	if subscription.cancelled.Swap(true) {
		return
	}

	e.lk.Lock()
	defer e.lk.Unlock()

	// copy so that snapshots held by in-flight notifications stay intact
	remaining := make([]*Subscription, 0, len(e.listeners))
	for _, s := range e.listeners {
		if s.id != subscription.id {
			remaining = append(remaining, s)
		}
	}
	e.listeners = remaining
}

func (e *Engine) Listeners() int {
	e.lk.Lock()
	defer e.lk.Unlock()

	return len(e.listeners)
}
