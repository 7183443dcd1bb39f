// Package hexagonal keeps the counter use cases behind two ports: a Repository
// that stores the counter and a Presenter that shows it.
package hexagonal

type Counter struct {
	Value int64 `json:"value"`
}

func (c *Counter) Increment() {
	c.Value++
}

func (c *Counter) Decrement() {
	c.Value--
}
