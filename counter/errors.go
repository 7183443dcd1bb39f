package counter

import (
	"fmt"

	"github.com/pkg/errors"
)

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

type UnexpectedCommandError struct {
	Command CommandName
}

func (e UnexpectedCommandError) Error() string {
	return fmt.Sprintf("unexpected command %s", e.Command)
}

func UnexpectedCommand(command Command) UnexpectedCommandError {
	return UnexpectedCommandError{Command: CommandNameOf(command)}
}

// InvalidPayloadError reports a remote command whose payload does not decode
// into the command it names.
type InvalidPayloadError struct {
	Command CommandName
	Cause   error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload for %s: %v", e.Command, e.Cause)
}

func (e *InvalidPayloadError) Unwrap() error {
	return e.Cause
}

func InvalidPayload(command CommandName, cause error) error {
	return errors.Wrap(&InvalidPayloadError{Command: command, Cause: cause}, "failed to decode command")
}
