package generate

import (
	"errors"
	"fmt"
)

// ErrDestinationExists is returned when the destination path already
// exists and the force flag is not set. No staging work has been
// performed when this error is returned.
var ErrDestinationExists = errors.New("destination already exists")

// SetupError reports a failed version-control step during repository
// setup. The staging directory is preserved for diagnosis.
type SetupError struct {
	Step string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("repository setup failed at %s: %v", e.Step, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// GenerationError reports a failed generator or plugin. The staging
// directory is preserved for diagnosis.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating package files: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
