package xlwrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestScriptPath(t *testing.T) {
	assert.Equal(t, "out/report.ps1", ScriptPath("out/report.xlsx"))
	assert.Equal(t, "C:/x/a.b.ps1", ScriptPath("C:/x/a.b.xlsx"))
	assert.Equal(t, "noext.ps1", ScriptPath("noext"))
}

func TestScriptPath_NeverEqualsOutput(t *testing.T) {
	assert.Equal(t, "out/book.ps1.ps1", ScriptPath("out/book.ps1"))
	assert.Equal(t, "out/book.PS1.ps1", ScriptPath("out/book.PS1"))
	for _, p := range []string{"a.xlsx", "a.ps1", "a.PS1", "a"} {
		assert.NotEqual(t, p, ScriptPath(p))
	}
}

func TestRenderScript(t *testing.T) {
	assert.Equal(t, "a;\nb;\n", RenderScript([]string{"a;", "b;"}))
	assert.Equal(t, "", RenderScript(nil))
}

func TestWriteScript_ShiftJIS(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.xlsx")
	cmds := []string{`$sheet.Name = "売上";`, "$excel.Quit();"}

	scriptPath, err := WriteScript(out, cmds, nil)
	require.NoError(t, err)
	assert.Equal(t, ScriptPath(out), scriptPath)

	raw, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.NotEqual(t, RenderScript(cmds), string(raw), "script must not be UTF-8")

	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	assert.Equal(t, RenderScript(cmds), string(decoded))
}

func TestWriteScript_CustomEncoding(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.xlsx")
	scriptPath, err := WriteScript(out, []string{"😀"}, unicode.UTF8)
	require.NoError(t, err)

	raw, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "😀\n", string(raw))
}

func TestWriteScript_UnencodableContent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.xlsx")
	_, err := WriteScript(out, []string{`$sheet.Cells.Item(1,1) = "😀";`}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode script")

	_, statErr := os.Stat(ScriptPath(out))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteScript_MissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "report.xlsx")
	_, err := WriteScript(out, []string{"x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write script")
}
