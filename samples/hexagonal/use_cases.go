package hexagonal

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/weegigs/wee-counter-go/counter"
)

const tracerName = "counter-hexagonal"

func NewIncrementUseCase(repository Repository, presenter Presenter) *IncrementUseCase {
	return &IncrementUseCase{repository: repository, presenter: presenter}
}

type IncrementUseCase struct {
	repository Repository
	presenter  Presenter
}

func (u *IncrementUseCase) Execute(ctx context.Context) error {
	return execute(ctx, counter.NameOf(u), u.repository, u.presenter, (*Counter).Increment)
}

func NewDecrementUseCase(repository Repository, presenter Presenter) *DecrementUseCase {
	return &DecrementUseCase{repository: repository, presenter: presenter}
}

type DecrementUseCase struct {
	repository Repository
	presenter  Presenter
}

func (u *DecrementUseCase) Execute(ctx context.Context) error {
	return execute(ctx, counter.NameOf(u), u.repository, u.presenter, (*Counter).Decrement)
}

func execute(ctx context.Context, name string, repository Repository, presenter Presenter, mutate func(*Counter)) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("execute %s", name))
	defer span.End()

	current, err := repository.Get(ctx)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to load counter")
	}

	mutate(&current)

	if err := repository.Save(ctx, current); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to save counter")
	}

	if err := presenter.Display(ctx, current); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to display counter")
	}

	return nil
}
