package assembly

import (
	"errors"
	"fmt"
)

// UnknownTargetError is returned when a specification names a target
// with no registered build function.
type UnknownTargetError struct {
	Path   string
	Target string
}

func (err UnknownTargetError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("unknown target %q at the root component", err.Target)
	}
	return fmt.Sprintf("unknown target %q at %q", err.Target, err.Path)
}

func asUnknownTarget(err error, out *UnknownTargetError) bool {
	return errors.As(err, out)
}

// ParameterError wraps a build function failure: a missing, unexpected,
// or mistyped parameter, or a constructor-side validation error.
type ParameterError struct {
	Path   string
	Target string
	Err    error
}

func (err ParameterError) Unwrap() error {
	return err.Err
}

func (err ParameterError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("failed to construct %q (the root component): %s", err.Target, err.Err)
	}
	return fmt.Sprintf("failed to construct %q at %q: %s", err.Target, err.Path, err.Err)
}
