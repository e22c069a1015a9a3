package wheel

import "errors"

// ErrInvalidConfiguration is returned when a wheel cannot be built from its
// inputs. Match with errors.Is; the wrapped message names the offending field.
var ErrInvalidConfiguration = errors.New("wheel: invalid configuration")

// ErrEmptyValues is returned when a wheel is given no values to pick from.
var ErrEmptyValues = invalidConfig("values must not be empty")

// configError wraps ErrInvalidConfiguration with a detail message.
type configError struct {
	msg string
}

func invalidConfig(msg string) error {
	return &configError{msg: msg}
}

func (e *configError) Error() string {
	return ErrInvalidConfiguration.Error() + ": " + e.msg
}

func (e *configError) Unwrap() error {
	return ErrInvalidConfiguration
}
