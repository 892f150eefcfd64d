package xlwrite

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Engine runs a generated script against the spreadsheet application and
// returns once the application has exited.
type Engine interface {
	Run(ctx context.Context, scriptPath string) error
}

// EngineFunc adapts an ordinary function to Engine.
type EngineFunc func(ctx context.Context, scriptPath string) error

func (f EngineFunc) Run(ctx context.Context, scriptPath string) error {
	return f(ctx, scriptPath)
}

// DefaultEngineDir is the working directory of the engine process.
const DefaultEngineDir = `C:\Users`

// stderrTailSize bounds how much engine stderr is kept for EngineError.
const stderrTailSize = 2048

// waitDelay bounds how long a cancelled engine may keep its stderr pipe open.
const waitDelay = 2 * time.Second

// PowerShell runs scripts through cmd.exe and powershell with an
// unrestricted execution policy, without a visible console window.
type PowerShell struct {
	Shell string // default "cmd"
	Dir   string // default DefaultEngineDir
}

var execCommand = exec.CommandContext

// Command builds the process invocation for scriptPath.
func (p PowerShell) Command(ctx context.Context, scriptPath string) *exec.Cmd {
	return p.shellCommand(ctx,
		"powershell", "-NoProfile", "-ExecutionPolicy", "Unrestricted", "-File", scriptPath)
}

func (p PowerShell) shellCommand(ctx context.Context, args ...string) *exec.Cmd {
	shell := p.Shell
	if shell == "" {
		shell = "cmd"
	}
	dir := p.Dir
	if dir == "" {
		dir = DefaultEngineDir
	}
	cmd := execCommand(ctx, shell, append([]string{"/C"}, args...)...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	configureProcess(cmd)
	return cmd
}

// Run starts the engine and waits for it. A start failure or a non-zero exit
// is reported as *EngineError. When ctx is done the whole process tree is
// killed and the error wraps ctx.Err().
func (p PowerShell) Run(ctx context.Context, scriptPath string) error {
	cmd := p.Command(ctx, scriptPath)
	stderr := &tailBuffer{max: stderrTailSize}
	cmd.Stderr = stderr
	err := runCommand(cmd, stderr)
	var engineErr *EngineError
	if errors.As(err, &engineErr) && ctx.Err() != nil {
		engineErr.ExitCode = -1
		engineErr.Err = ctx.Err()
	}
	return err
}

func runCommand(cmd *exec.Cmd, stderr *tailBuffer) error {
	if err := cmd.Run(); err != nil {
		engineErr := &EngineError{ExitCode: -1, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			engineErr.ExitCode = exitErr.ExitCode()
			engineErr.Err = nil
		}
		return engineErr
	}
	return nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
