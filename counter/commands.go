package counter

import (
	"context"

	"github.com/goccy/go-json"
)

type CommandName string

func (name CommandName) String() string {
	return string(name)
}

type Command any

type Increment struct{}

type Decrement struct{}

var (
	IncrementCmd = CommandNameOf(Increment{})
	DecrementCmd = CommandNameOf(Decrement{})
)

// RemoteCommand is the wire form of a command sent by a remote view.
type RemoteCommand struct {
	CommandName CommandName     `json:"command"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

func CommandNameOf(command Command) CommandName {
	switch cmd := command.(type) {
	case nil:
		return ""
	case RemoteCommand:
		return cmd.CommandName
	case *RemoteCommand:
		return cmd.CommandName
	default:
		return CommandName(NameOf(command))
	}
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, cmd Command, engine *Engine) error
	HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, engine *Engine) error
}

type CommandHandlerFunction[C any] func(ctx context.Context, cmd C, engine *Engine) error

func (f CommandHandlerFunction[C]) HandleCommand(ctx context.Context, cmd Command, engine *Engine) error {
	command, ok := cmd.(C)
	if !ok {
		return UnexpectedCommand(cmd)
	}

	return f(ctx, command, engine)
}

func (f CommandHandlerFunction[C]) HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, engine *Engine) error {
	var command C

	if len(cmd.Payload) > 0 {
		if err := json.Unmarshal(cmd.Payload, &command); err != nil {
			return InvalidPayload(cmd.CommandName, err)
		}
	}

	return f(ctx, command, engine)
}

func increment() CommandHandler {
	var handler CommandHandlerFunction[Increment] = func(ctx context.Context, cmd Increment, engine *Engine) error {
		engine.Increment()
		return nil
	}

	return handler
}

func decrement() CommandHandler {
	var handler CommandHandlerFunction[Decrement] = func(ctx context.Context, cmd Decrement, engine *Engine) error {
		engine.Decrement()
		return nil
	}

	return handler
}
