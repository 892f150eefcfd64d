package xlwrite

import (
	"errors"
	"fmt"
)

// ErrWriteInProgress is returned by Write while an earlier write has not been
// observed through Poll or Wait.
var ErrWriteInProgress = errors.New("write already in progress")

// ErrNotWriting is returned by Wait when no write was ever started.
var ErrNotWriting = errors.New("no write in progress")

// ErrNoSheets indicates a workbook without sheets. The engine cannot delete
// its placeholder sheet when it is the only one left.
var ErrNoSheets = errors.New("workbook has no sheets")

// Stage names the part of a write that failed.
type Stage string

const (
	StageMaterialize Stage = "materialize"
	StageEngine      Stage = "engine"
)

// WriteError reports a failed write.
type WriteError struct {
	Stage Stage
	Path  string // workbook output path
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %q failed at %s: %v", e.Path, e.Stage, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// EngineError reports an engine process that could not start or exited non-zero.
type EngineError struct {
	ExitCode int    // -1 when the process did not run to completion
	Stderr   string // tail of the process's standard error
	Err      error
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("engine exited with code %d", e.ExitCode)
	if e.ExitCode < 0 {
		msg = "engine did not complete"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
