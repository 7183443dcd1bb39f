package clean

import "sync"

type Present = func(counter Entity)

// Interactor keeps the current entity and hands every new one to the
// presentation layer. The use cases are created once with the interactor, not
// on every render.
type Interactor struct {
	lk        sync.Mutex
	current   Entity
	present   Present
	increment IncrementUseCase
	decrement DecrementUseCase
}

func NewInteractor(initial Entity, present Present) *Interactor {
	return &Interactor{current: initial, present: present}
}

func (i *Interactor) Current() Entity {
	i.lk.Lock()
	defer i.lk.Unlock()

	return i.current
}

func (i *Interactor) Increment() {
	i.apply(i.increment.Execute)
}

func (i *Interactor) Decrement() {
	i.apply(i.decrement.Execute)
}

func (i *Interactor) apply(execute func(Entity) Entity) {
	i.lk.Lock()
	next := execute(i.current)
	i.current = next
	i.lk.Unlock()

	if i.present != nil {
		i.present(next)
	}
}
