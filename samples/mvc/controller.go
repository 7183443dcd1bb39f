// Package mvc drives a counter through a controller that pushes every new
// value to its view.
package mvc

import "github.com/weegigs/wee-counter-go/counter"

type ViewUpdater = func(value int64)

type Controller struct {
	model      *counter.Engine
	updateView ViewUpdater
}

func NewController(model *counter.Engine, updateView ViewUpdater) *Controller {
	return &Controller{model: model, updateView: updateView}
}

func (c *Controller) Increment() {
	c.model.Increment()
	c.Refresh()
}

func (c *Controller) Decrement() {
	c.model.Decrement()
	c.Refresh()
}

// Refresh pushes the model's current value to the view without changing it.
func (c *Controller) Refresh() {
	if c.updateView == nil {
		return
	}

	c.updateView(c.model.Value())
}
