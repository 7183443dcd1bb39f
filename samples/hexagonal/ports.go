package hexagonal

import "context"

type Repository interface {
	Get(ctx context.Context) (Counter, error)
	Save(ctx context.Context, counter Counter) error
}

type Presenter interface {
	Display(ctx context.Context, counter Counter) error
}
