package hexagonal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewInMemoryRepository(initial Counter) *InMemoryRepository {
	return &InMemoryRepository{counter: initial}
}

type InMemoryRepository struct {
	lk      sync.Mutex
	counter Counter
}

func (r *InMemoryRepository) Get(ctx context.Context) (Counter, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	return r.counter, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, counter Counter) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	r.counter = counter
	return nil
}

type PresenterFunc func(ctx context.Context, counter Counter) error

func (f PresenterFunc) Display(ctx context.Context, counter Counter) error {
	return f(ctx, counter)
}

// LogPresenter writes every displayed counter to a structured log.
type LogPresenter struct {
	log *zerolog.Logger
}

func NewLogPresenter(logger *zerolog.Logger) *LogPresenter {
	if logger == nil {
		logger = &log.Logger
	}

	return &LogPresenter{log: logger}
}

func (p *LogPresenter) Display(ctx context.Context, counter Counter) error {
	p.log.Info().Int64("value", counter.Value).Msg("counter displayed")
	return nil
}
