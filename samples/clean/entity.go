package clean

type Entity struct {
	Value int64 `json:"value"`
}

type IncrementUseCase struct{}

func (IncrementUseCase) Execute(counter Entity) Entity {
	return Entity{Value: counter.Value + 1}
}

type DecrementUseCase struct{}

func (DecrementUseCase) Execute(counter Entity) Entity {
	return Entity{Value: counter.Value - 1}
}
