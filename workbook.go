// Package xlwrite builds Excel workbooks in memory and writes them by
// generating a PowerShell script that drives Excel through COM.
//
//	wb := xlwrite.NewWorkbook()
//	wb.AddSheet(xlwrite.NewSheet("Report").
//		AddCell(xlwrite.NewCell().SetPos(1, 1).SetContent("Name")))
//	if err := wb.Write(ctx); err != nil {
//		return err
//	}
//	res, err := wb.Wait(ctx)
//
// Write returns immediately. Progress is read with Status and completion is
// observed with Poll, which never blocks, or Wait.
package xlwrite

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// State is the write state of a Workbook.
type State int

const (
	Idle State = iota
	Writing
)

func (s State) String() string {
	if s == Writing {
		return "Writing"
	}
	return "Idle"
}

// Outcome tells whether a write produced the workbook.
type Outcome int

const (
	Succeeded Outcome = iota
	Failed
)

func (o Outcome) String() string {
	if o == Failed {
		return "Failed"
	}
	return "Succeeded"
}

// Result is delivered once per Write.
type Result struct {
	Outcome    Outcome
	OutputPath string
	ScriptPath string // empty when the script could not be written
	Err        error  // *WriteError when Outcome is Failed
}

func (r Result) OK() bool { return r.Outcome == Succeeded }

// Workbook is everything written to one output file, and the state machine
// tracking that write.
//
// Build it, call Write, then call Poll until IsWriting reports false (or call
// Wait). Only one write is tracked at a time.
type Workbook struct {
	opts   *Options
	logger *slog.Logger
	status *Status

	path   string
	sheets []*Sheet

	mu    sync.Mutex
	state State
	done  <-chan Result
	last  *Result
}

// NewWorkbook returns an empty workbook whose output path defaults to a
// timestamped file on the desktop.
func NewWorkbook(opts ...Option) *Workbook {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	status := o.status
	if status == nil {
		status = NewStatus()
	}

	dir := o.desktopDir
	if dir == "" {
		d, err := DesktopDir()
		if err != nil {
			logger.Warn("Desktop directory unavailable, using working directory", "error", err)
			d = "."
		}
		dir = d
	}

	return &Workbook{
		opts:   o,
		logger: logger,
		status: status,
		path:   DefaultOutputPath(dir, o.now()),
	}
}

// SetPath sets the output file path.
func (w *Workbook) SetPath(path string) *Workbook {
	w.path = path
	return w
}

// AddSheet appends a copy of s. Sheets are created in the order added.
func (w *Workbook) AddSheet(s *Sheet) *Workbook {
	if s == nil {
		return w
	}
	w.sheets = append(w.sheets, s.clone())
	return w
}

func (w *Workbook) Path() string { return w.path }

// Sheets returns copies of the workbook's sheets.
func (w *Workbook) Sheets() []*Sheet {
	out := make([]*Sheet, len(w.sheets))
	for i, s := range w.sheets {
		out[i] = s.clone()
	}
	return out
}

// Commands returns the script statements for the path as set. Write emits
// the same statements with the path made absolute.
func (w *Workbook) Commands() []string {
	return w.opts.emitter().Emit(w.path, w.sheets)
}

// Status returns the latest progress message.
func (w *Workbook) Status() string { return w.status.String() }

// IsWriting reports whether a write is in flight or finished but not yet polled.
func (w *Workbook) IsWriting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == Writing
}

// LastResult returns the result most recently observed by Poll or Wait.
func (w *Workbook) LastResult() (Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return Result{}, false
	}
	return *w.last, true
}

// Write generates the script and runs the engine in the background. A
// relative output path is resolved against the working directory first. It
// returns ErrWriteInProgress if the previous write has not been observed yet;
// every other failure arrives as a Failed Result through Poll or Wait.
//
// ctx bounds the engine process.
func (w *Workbook) Write(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Writing {
		return ErrWriteInProgress
	}

	done := make(chan Result, 1)
	w.state = Writing
	w.done = done

	w.status.Set(StatusGenerating)
	outputPath, err := filepath.Abs(w.path)
	if err != nil {
		return w.failMaterialize(done, w.path, err)
	}
	scriptPath, err := WriteScript(outputPath, w.opts.emitter().Emit(outputPath, w.sheets), w.opts.encoding)
	if err != nil {
		return w.failMaterialize(done, outputPath, err)
	}
	w.logger.Debug("Script written", "script", scriptPath, "sheets", len(w.sheets))

	go w.run(ctx, w.opts.engine, outputPath, scriptPath, done)
	return nil
}

// failMaterialize reports a write that failed before the engine started.
func (w *Workbook) failMaterialize(done chan<- Result, outputPath string, err error) error {
	w.logger.Error("Script generation failed", "path", outputPath, "error", err)
	done <- Result{
		Outcome:    Failed,
		OutputPath: outputPath,
		Err:        &WriteError{Stage: StageMaterialize, Path: outputPath, Err: err},
	}
	close(done)
	return nil
}

// run executes the script and reports exactly one Result on done.
func (w *Workbook) run(ctx context.Context, engine Engine, outputPath, scriptPath string, done chan<- Result) {
	defer close(done)

	w.logger.Info("Running spreadsheet engine", "script", scriptPath, "path", outputPath)
	w.status.Set(StatusRunning)
	runErr := engine.Run(ctx, scriptPath)

	if err := os.Remove(scriptPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		w.logger.Warn("Failed to remove script", "script", scriptPath, "error", err)
	}
	w.status.Set(StatusCleaningUp)

	res := Result{Outcome: Succeeded, OutputPath: outputPath, ScriptPath: scriptPath}
	if runErr != nil {
		res.Outcome = Failed
		res.Err = &WriteError{Stage: StageEngine, Path: outputPath, Err: runErr}
		w.logger.Error("Spreadsheet engine failed", "path", outputPath, "error", runErr)
	} else {
		w.logger.Info("Workbook written", "path", outputPath)
	}
	done <- res
}

// Poll checks for completion without blocking. When the write has finished
// it returns the Result, moves the workbook back to Idle and drops the
// receiver. With nothing in flight it does nothing.
func (w *Workbook) Poll() (Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done == nil {
		return Result{}, false
	}
	select {
	case res, ok := <-w.done:
		if !ok {
			return Result{}, false
		}
		w.finish(res)
		return res, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the in-flight write finishes or ctx is done. With
// nothing in flight it returns the last observed result, or ErrNotWriting
// if Write was never called.
func (w *Workbook) Wait(ctx context.Context) (Result, error) {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()

	if done == nil {
		if res, ok := w.LastResult(); ok {
			return res, nil
		}
		return Result{}, ErrNotWriting
	}

	select {
	case res, ok := <-done:
		w.mu.Lock()
		defer w.mu.Unlock()
		if ok && w.done == done {
			w.finish(res)
			return res, nil
		}
		if w.last != nil {
			return *w.last, nil
		}
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// finish must be called with w.mu held.
func (w *Workbook) finish(res Result) {
	w.state = Idle
	w.done = nil
	w.last = &res
}
