package vidar

import (
	"errors"
	"fmt"
)

// Error classes returned by Load and ParseKind. Use errors.Is to tell them
// apart; the typed errors below carry the details.
var (
	// ErrInvalidKind indicates a token that is not one of the kind tokens.
	ErrInvalidKind = errors.New("invalid kind")
	// ErrInvalidProperty indicates a line that is not a single key=value pair.
	ErrInvalidProperty = errors.New("invalid property")
	// ErrIO indicates a property file could not be opened or read.
	ErrIO = errors.New("i/o failure")
	// ErrConfigPath indicates the configuration directory could not be
	// determined.
	ErrConfigPath = errors.New("unable to determine the configuration path")
)

// InvalidKindError is returned by ParseKind for an unknown token.
type InvalidKindError struct {
	Token string
}

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid kind %q supplied", e.Token)
}

// Is reports whether target is ErrInvalidKind.
func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// PropertyError is returned when a line of a property file fails to split
// into exactly one key and one value.
type PropertyError struct {
	Path string
	Line int
	Text string
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid property on line %d: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("invalid property in %s on line %d: %q", e.Path, e.Line, e.Text)
}

// Is reports whether target is ErrInvalidProperty.
func (e *PropertyError) Is(target error) bool {
	return target == ErrInvalidProperty
}

// IOError wraps a failure to open or read a property file.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ConfigPathError wraps a Locator failure.
type ConfigPathError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigPathError) Error() string {
	if e.Err == nil || errors.Is(e.Err, ErrConfigPath) {
		return ErrConfigPath.Error()
	}
	return fmt.Sprintf("%s: %v", ErrConfigPath, e.Err)
}

// Is reports whether target is ErrConfigPath.
func (e *ConfigPathError) Is(target error) bool {
	return target == ErrConfigPath
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ConfigPathError) Unwrap() error {
	return e.Err
}
