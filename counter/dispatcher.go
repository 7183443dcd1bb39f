package counter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "counter-engine"

type CommandHandlers map[CommandName]CommandHandler

// EngineHandlers routes the increment and decrement commands to engine mutations.
func EngineHandlers() CommandHandlers {
	return CommandHandlers{
		IncrementCmd: increment(),
		DecrementCmd: decrement(),
	}
}

type Dispatcher struct {
	Handlers CommandHandlers
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{Handlers: EngineHandlers()}
}

func (d *Dispatcher) Dispatch(ctx context.Context, engine *Engine, command Command) error {
	commandName := CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", commandName))
	defer span.End()

	handler := d.Handlers[commandName]
	if handler == nil {
		err := CommandNotFound(commandName)
		span.RecordError(err)
		return err
	}

	var err error
	switch cmd := command.(type) {
	case RemoteCommand:
		err = handler.HandleRemoteCommand(ctx, cmd, engine)
	case *RemoteCommand:
		err = handler.HandleRemoteCommand(ctx, *cmd, engine)
	default:
		err = handler.HandleCommand(ctx, cmd, engine)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int64("counter.value", engine.Value()))

	return nil
}
