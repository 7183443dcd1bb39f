// Package mvvm exposes a counter through a view model the view subscribes to.
package mvvm

import "github.com/weegigs/wee-counter-go/counter"

type ViewModel struct {
	model *counter.Engine
}

func NewViewModel(model *counter.Engine) *ViewModel {
	return &ViewModel{model: model}
}

func (vm *ViewModel) Value() int64 {
	return vm.model.Value()
}

func (vm *ViewModel) Increment() {
	vm.model.Increment()
}

func (vm *ViewModel) Decrement() {
	vm.model.Decrement()
}

func (vm *ViewModel) AddListener(listener func()) *counter.Subscription {
	return vm.model.Subscribe(listener)
}

// Bind subscribes render to every change and renders the current value once so
// a freshly mounted view starts in sync.
func Bind(vm *ViewModel, render func(value int64)) *counter.Subscription {
	update := func() { render(vm.Value()) }
	subscription := vm.AddListener(update)
	update()

	return subscription
}
