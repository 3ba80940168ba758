package mc

import "fmt"

// ErrInvalidArgument is wrapped by every shape/count validation failure,
// surfaced before any batch runs rather than failing mid-simulation.
var ErrInvalidArgument = fmt.Errorf("mc: invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
