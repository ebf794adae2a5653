package launcher

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUsage is returned by Process when usage help was rendered instead of a
// configuration, either because --help was given or because the required
// --instances flag was absent. It is a terminal outcome rather than a
// failure; hosts should exit cleanly without reporting an error.
var ErrUsage = errors.New("usage requested")

// SyntaxError indicates that the argument vector does not conform to the
// flag grammar: an unknown flag, a value-taking flag with no value, a
// malformed property pair, or a stray positional argument.
type SyntaxError struct {
	msg string
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{msg: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string { return e.msg }

// FormatError indicates a flag value that should be an integer or a
// suffixed size string but could not be parsed as one.
type FormatError struct {
	Flag  string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("malformed value %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid value %q for flag %s: %v", e.Value, e.Flag, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError indicates a well-formed request that violates a
// configuration invariant, such as a non-positive instance count.
type ValidationError struct {
	msg string
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }
