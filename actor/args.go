package actor

import (
	"errors"
	"fmt"
)

// ErrInvalidArgs is wrapped by every construction error caused by bad
// element configuration.
var ErrInvalidArgs = errors.New("invalid arguments")

// Args is the configuration node of one section element.
type Args interface {
	// Present reports whether the element carries any configuration.
	Present() bool
	Decode(v any) error
}

func present(args Args) bool {
	return args != nil && args.Present()
}

// decodeArgs fills v from args, leaving v's defaults when args is absent.
func decodeArgs(kind Kind, args Args, v any) error {
	if !present(args) {
		return nil
	}
	if err := args.Decode(v); err != nil {
		return fmt.Errorf("actor: %s args: %w: %w", kind, ErrInvalidArgs, err)
	}
	return nil
}

func invalid(kind Kind, format string, a ...any) error {
	return fmt.Errorf("actor: %s: %w: %s", kind, ErrInvalidArgs, fmt.Sprintf(format, a...))
}
