package xlwrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// ScriptExt is the extension of the generated script artifact.
const ScriptExt = ".ps1"

// ScriptPath derives the script location from the workbook output path by
// replacing its extension, e.g. "out/report.xlsx" → "out/report.ps1".
// An output path that already ends in .ps1 gets a second extension so the
// script never overwrites the workbook.
func ScriptPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	if strings.EqualFold(ext, ScriptExt) {
		return outputPath + ScriptExt
	}
	return strings.TrimSuffix(outputPath, ext) + ScriptExt
}

// RenderScript joins commands into one newline-terminated document.
func RenderScript(commands []string) string {
	var b strings.Builder
	for _, c := range commands {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteScript encodes commands with enc (Shift_JIS when nil) and writes them
// next to outputPath. It returns the script path.
func WriteScript(outputPath string, commands []string, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = japanese.ShiftJIS
	}
	data, err := enc.NewEncoder().String(RenderScript(commands))
	if err != nil {
		return "", fmt.Errorf("encode script: %w", err)
	}
	scriptPath := ScriptPath(outputPath)
	if err := os.WriteFile(scriptPath, []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("write script %q: %w", scriptPath, err)
	}
	return scriptPath, nil
}
