// Package validator invokes the external Java JSON validator and interprets
// its console output.
package validator

import (
	"fmt"
	"time"
)

// TimeoutError indicates the validator process exceeded its wall-clock limit.
// The child is killed through the command context before this is returned.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("validator timed out after %s", e.Limit)
}

// ProcessError represents a failure to launch or run the validator process,
// including I/O failures around its input file.
type ProcessError struct {
	Message string
	Output  string
	Cause   error
}

func (e *ProcessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validator process error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validator process error: %s", e.Message)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}
