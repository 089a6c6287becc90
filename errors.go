package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a malformed draw request, such as
	// an animated draw without a duration.
	ErrInvalidArgument = errors.New("progress: invalid argument")

	// ErrEmptyBounds is returned when drawing before the surface has a size.
	ErrEmptyBounds = errors.New("progress: surface has empty bounds")
)

// ConfigError reports a configuration value that cannot be drawn.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("progress: config %s: %s", e.Field, e.Reason)
}
