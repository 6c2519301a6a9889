package assistant

import (
	"errors"
	"fmt"

	"github.com/username/assistant-bot/internal/addressbook"
)

// ErrUnknownCommand is returned for a command that has no handler
var ErrUnknownCommand = errors.New("unknown command")

// ArityError reports a command invoked with the wrong number of arguments.
// TooMany is set when arguments were left over rather than missing.
type ArityError struct {
	Command string
	Usage   string
	TooMany bool
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("wrong number of arguments for %s (usage: %s)", e.Command, e.Usage)
}

// ErrorMessage maps a handler error to the text shown to the user
func ErrorMessage(err error) string {
	var (
		arityErr      *ArityError
		validationErr *addressbook.ValidationError
		notFoundErr   *addressbook.NotFoundError
	)

	switch {
	case errors.Is(err, ErrUnknownCommand):
		return "Invalid command."
	case errors.As(err, &arityErr) && arityErr.TooMany:
		return fmt.Sprintf("Too many arguments for the command\nusage: %s", arityErr.Usage)
	case errors.As(err, &arityErr):
		return fmt.Sprintf("Enter the argument for the command\nusage: %s", arityErr.Usage)
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &notFoundErr):
		if notFoundErr.Kind == addressbook.KindPhone {
			return fmt.Sprintf("Phone number %s not found.", notFoundErr.Key)
		}
		return "Contact doesn't exist."
	default:
		return fmt.Sprintf("An unexpected error: %v", err)
	}
}
