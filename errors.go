package sa

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when bounds, temperatures or the cooling
// rate violate their constraints. It is the only error kind New can return;
// use errors.Is to detect it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
