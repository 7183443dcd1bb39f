package hexagonal

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var errUnavailable = errors.New("repository unavailable")

type recordingRepository struct {
	InMemoryRepository
	calls   *[]string
	failGet bool
}

func (r *recordingRepository) Get(ctx context.Context) (Counter, error) {
	*r.calls = append(*r.calls, "get")
	if r.failGet {
		return Counter{}, errUnavailable
	}

	return r.InMemoryRepository.Get(ctx)
}

func (r *recordingRepository) Save(ctx context.Context, counter Counter) error {
	*r.calls = append(*r.calls, "save")
	return r.InMemoryRepository.Save(ctx, counter)
}

func incrementsThroughPorts(t *testing.T) {
	ctx := context.TODO()
	repository := NewInMemoryRepository(Counter{})

	var displayed []int64
	presenter := PresenterFunc(func(ctx context.Context, counter Counter) error {
		displayed = append(displayed, counter.Value)
		return nil
	})

	increment := NewIncrementUseCase(repository, presenter)
	decrement := NewDecrementUseCase(repository, presenter)

	assert.NoError(t, increment.Execute(ctx))
	assert.NoError(t, increment.Execute(ctx))
	assert.NoError(t, decrement.Execute(ctx))

	stored, err := repository.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stored.Value)
	assert.Equal(t, []int64{1, 2, 1}, displayed)
}

func followsGetSaveDisplay(t *testing.T) {
	var calls []string
	repository := &recordingRepository{calls: &calls}
	presenter := PresenterFunc(func(ctx context.Context, counter Counter) error {
		calls = append(calls, "display")
		return nil
	})

	err := NewDecrementUseCase(repository, presenter).Execute(context.TODO())

	assert.NoError(t, err)
	assert.Equal(t, []string{"get", "save", "display"}, calls)
}

func stopsOnRepositoryFailure(t *testing.T) {
	var calls []string
	repository := &recordingRepository{calls: &calls, failGet: true}
	presenter := PresenterFunc(func(ctx context.Context, counter Counter) error {
		calls = append(calls, "display")
		return nil
	})

	err := NewIncrementUseCase(repository, presenter).Execute(context.TODO())

	assert.ErrorIs(t, err, errUnavailable)
	assert.Equal(t, errUnavailable, errors.Cause(err))
	assert.Equal(t, []string{"get"}, calls)
}

func reportsPresenterFailure(t *testing.T) {
	repository := NewInMemoryRepository(Counter{Value: 5})
	failure := errors.New("view detached")
	presenter := PresenterFunc(func(ctx context.Context, counter Counter) error {
		return failure
	})

	err := NewIncrementUseCase(repository, presenter).Execute(context.TODO())
	assert.ErrorIs(t, err, failure)

	stored, _ := repository.Get(context.TODO())
	assert.Equal(t, int64(6), stored.Value)
}

func logsDisplayedCounters(t *testing.T) {
	var buffer bytes.Buffer
	logger := zerolog.New(&buffer)

	err := NewLogPresenter(&logger).Display(context.TODO(), Counter{Value: 42})

	assert.NoError(t, err)
	assert.Contains(t, buffer.String(), `"value":42`)
	assert.Contains(t, buffer.String(), `"message":"counter displayed"`)
}

func functionalPortsReceiveNextValue(t *testing.T) {
	var value int64
	port := func(next int64) { value = next }

	increment := NewIncrement(port)
	decrement := NewDecrement(port)

	increment(value)
	increment(value)
	decrement(value)

	assert.Equal(t, int64(1), value)
}

func TestHexagonalCounter(t *testing.T) {
	t.Run("increments through ports", incrementsThroughPorts)
	t.Run("follows get, save, display", followsGetSaveDisplay)
	t.Run("stops on repository failure", stopsOnRepositoryFailure)
	t.Run("reports presenter failure", reportsPresenterFailure)
	t.Run("logs displayed counters", logsDisplayedCounters)
	t.Run("functional ports receive the next value", functionalPortsReceiveNextValue)
}
