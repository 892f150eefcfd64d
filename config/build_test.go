package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajack/xlwrite"
)

func testOptions(t *testing.T) []xlwrite.Option {
	return []xlwrite.Option{
		xlwrite.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		xlwrite.WithDesktopDir(t.TempDir()),
	}
}

func TestBuild(t *testing.T) {
	cfg, err := ParseWorkbookConfig(strings.NewReader(reportYAML))
	require.NoError(t, err)

	wb, err := Build(cfg, testOptions(t)...)
	require.NoError(t, err)

	want := `Workbook: C:/out/report.xlsx
Sheet "Staff" (8 cells, 1 widths, 1 lines)
  A1 "Staff list" font=3
  C1 "docs" link="C:/docs/report.pdf"
  A2 "Name"
  B2 "Age"
  A3 "Alice"
  B3 "30"
  A4 "Bob"
  B4 "41"
  Widths: 1=20
  Lines: A2:B4 style=1
  Filter: A2:B2
`
	assert.Equal(t, want, wb.Describe())
	assert.Contains(t, wb.Commands(), `$sheet.Cells.font.Name = "Arial";`)
	assert.Empty(t, wb.Validate())
}

func TestBuild_DefaultOutput(t *testing.T) {
	cfg := &WorkbookConfig{Sheets: []SheetConfig{{Name: "a"}}}
	wb, err := Build(cfg, testOptions(t)...)
	require.NoError(t, err)
	assert.Contains(t, wb.Path(), "/xlsx_")
	assert.True(t, strings.HasSuffix(wb.Path(), ".xlsx"))
}

func TestBuild_RepeatOptions(t *testing.T) {
	bg := 6
	cfg := &WorkbookConfig{
		Data: map[string]any{"rows": []any{"x", "y"}},
		Sheets: []SheetConfig{{
			Name: "s",
			Repeats: []RepeatConfig{{
				Items:      "rows",
				Var:        "r",
				Row:        5,
				Col:        2,
				Columns:    []string{"${index + 1}", "${prefix}${r}"},
				Background: &bg,
				Extra:      map[string]any{"prefix": "item-"},
			}},
		}},
	}
	wb, err := Build(cfg, testOptions(t)...)
	require.NoError(t, err)

	cells := wb.Sheets()[0].Cells()
	require.Len(t, cells, 4)
	assert.Equal(t, "B5", cells[0].Ref())
	assert.Equal(t, "1", cells[0].Content())
	assert.Equal(t, "C6", cells[3].Ref())
	assert.Equal(t, "item-y", cells[3].Content())
	idx, ok := cells[3].BackgroundColorIndex()
	assert.True(t, ok)
	assert.Equal(t, 6, idx)
	assert.Empty(t, wb.Sheets()[0].Lines())
}

func TestBuild_ExpressionError(t *testing.T) {
	cfg := &WorkbookConfig{Sheets: []SheetConfig{{
		Name:  "s",
		Cells: []CellConfig{{Row: 1, Col: 1, Value: "${1 +}"}},
	}}}
	_, err := Build(cfg, testOptions(t)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet 0 (s): cell 0")
}

func TestBuild_ItemsNotAList(t *testing.T) {
	cfg := &WorkbookConfig{
		Data: map[string]any{"n": 3},
		Sheets: []SheetConfig{{
			Name:    "s",
			Repeats: []RepeatConfig{{Items: "n", Row: 1, Columns: []string{"x"}}},
		}},
	}
	_, err := Build(cfg, testOptions(t)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeat 0")
}
