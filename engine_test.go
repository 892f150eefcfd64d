package xlwrite

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerShell_Command(t *testing.T) {
	cmd := PowerShell{}.Command(context.Background(), `C:\out\report.ps1`)

	assert.Equal(t, []string{"cmd", "/C", "powershell", "-NoProfile", "-ExecutionPolicy", "Unrestricted", "-File", `C:\out\report.ps1`}, cmd.Args)
	assert.Equal(t, DefaultEngineDir, cmd.Dir)
}

func TestPowerShell_CommandOverrides(t *testing.T) {
	cmd := PowerShell{Shell: "sh", Dir: "/tmp"}.Command(context.Background(), "x.ps1")
	assert.Equal(t, "sh", cmd.Args[0])
	assert.Equal(t, "/tmp", cmd.Dir)
}

func TestRunCommand_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	stderr := &tailBuffer{max: stderrTailSize}
	cmd := exec.Command("sh", "-c", "echo boom >&2; exit 3")
	cmd.Stderr = stderr

	err := runCommand(cmd, stderr)
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, 3, engineErr.ExitCode)
	assert.Equal(t, "boom", engineErr.Stderr)
	assert.Equal(t, "engine exited with code 3: boom", engineErr.Error())
}

func TestRunCommand_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	stderr := &tailBuffer{max: stderrTailSize}
	cmd := exec.Command("sh", "-c", "exit 0")
	cmd.Stderr = stderr
	assert.NoError(t, runCommand(cmd, stderr))
}

func TestRunCommand_StartFailure(t *testing.T) {
	stderr := &tailBuffer{max: stderrTailSize}
	cmd := exec.Command("xlwrite-no-such-binary")
	cmd.Stderr = stderr

	err := runCommand(cmd, stderr)
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, -1, engineErr.ExitCode)
	assert.NotNil(t, engineErr.Err)
	assert.True(t, strings.HasPrefix(engineErr.Error(), "engine did not complete: "))
}

func TestTailBuffer(t *testing.T) {
	b := &tailBuffer{max: 5}
	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, _ = b.Write([]byte("defg"))
	assert.Equal(t, "cdefg", b.String())
	_, _ = b.Write([]byte("0123456789"))
	assert.Equal(t, "56789", b.String())
}

func TestEngineFunc(t *testing.T) {
	var got string
	e := EngineFunc(func(_ context.Context, p string) error {
		got = p
		return nil
	})
	require.NoError(t, e.Run(context.Background(), "a.ps1"))
	assert.Equal(t, "a.ps1", got)
}

func TestPowerShell_RunCancelledKillsProcessTree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	orig := execCommand
	execCommand = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "sleep 3; echo done >&2")
	}
	t.Cleanup(func() { execCommand = orig })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := PowerShell{Dir: t.TempDir()}.Run(ctx, "x.ps1")
	elapsed := time.Since(start)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, engineErr.ExitCode)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestPowerShell_CommandBoundsWait(t *testing.T) {
	cmd := PowerShell{}.Command(context.Background(), "x.ps1")
	assert.Equal(t, waitDelay, cmd.WaitDelay)
	assert.NotNil(t, cmd.Cancel)
}
