package hexagonal

// Port receives the new counter value, typically a view's state setter.
type Port = func(value int64)

func IncrementCounter(value int64) int64 {
	return value + 1
}

func DecrementCounter(value int64) int64 {
	return value - 1
}

func NewIncrement(port Port) func(value int64) {
	return func(value int64) {
		port(IncrementCounter(value))
	}
}

func NewDecrement(port Port) func(value int64) {
	return func(value int64) {
		port(DecrementCounter(value))
	}
}
