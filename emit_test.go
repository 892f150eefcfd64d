package xlwrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_SingleCell(t *testing.T) {
	sheet := NewSheet("test_sheet").AddCell(NewCell().SetPos(1, 1).SetContent("_test"))
	cmds := Emit("C:/out/test.xlsx", []*Sheet{sheet})

	want := []string{
		"$excel = New-Object -ComObject Excel.Application;",
		"$excel.Visible = $false;",
		"$book = $excel.Workbooks.Add();",
		"$excel.DisplayAlerts = $false;",
		"$sheet = $book.Worksheets.Add();",
		`$sheet.Name = "test_sheet";`,
		`$sheet.Cells.Item(1,1) = "_test";`,
		`$sheet.Cells.font.Name = "Meiryo UI";`,
		`$excel.Worksheets.item("Sheet1").delete();`,
		`$book.SaveAs("C:\out\test.xlsx");`,
		"$excel.Quit();",
		"$excel = $null;",
		"[GC]::Collect();",
	}
	assert.Equal(t, want, cmds)

	joined := strings.Join(cmds, "\n")
	assert.NotContains(t, joined, "Hyperlinks")
	assert.NotContains(t, joined, "ColorIndex")
	assert.NotContains(t, joined, "Validation")
}

func TestEmit_CellAttributeOrder(t *testing.T) {
	sheet := NewSheet("s").AddCell(NewCell().SetPos(2, 3).SetContent("doc").
		SetValidation("a,b").SetBackgroundColorIndex(6).SetFontColorIndex(3).
		SetHyperlink("C:/docs/manual.pdf"))
	cmds := Emit("out.xlsx", []*Sheet{sheet})

	assert.Equal(t, []string{
		`$sheet.Hyperlinks.Add($sheet.Cells.Item(2,3),"C:\docs\manual.pdf","","","doc") | Out-Null;`,
		"$sheet.Cells.Item(2,3).Font.ColorIndex = 3;",
		"$sheet.Cells.Item(2,3).Interior.ColorIndex = 6;",
		"$sheet.Cells.Item(2,3).Validation.Delete();",
		`$sheet.Cells.Item(2,3).Validation.Add(3, 1, 1, "a,b");`,
	}, cmds[6:11])
}

func TestEmit_SheetLayoutOrder(t *testing.T) {
	sheet := NewSheet("s").
		SetSort(1, 1, 3).
		AddLine(1, 3, 1, 3, 1).
		AddWidth(2, 12.5).
		AddCell(NewCell().SetContent("a")).
		AddCell(NewCell().SetPos(3, 2).SetContent("c")).
		AddLine(4, 4, 1, 3, -4119).
		AddCell(NewCell().SetPos(2, 1).SetContent("b")).
		AddCell(NewCell().SetContent("a2")).
		AddWidth(1, 8)
	cmds := Emit("out.xlsx", []*Sheet{sheet})

	assert.Equal(t, []string{
		`$sheet.Cells.Item(1,1) = "a";`,
		`$sheet.Cells.Item(3,2) = "c";`,
		`$sheet.Cells.Item(2,1) = "b";`,
		`$sheet.Cells.Item(1,1) = "a2";`,
		"$sheet.columns.item(2).columnWidth = 12.5;",
		"$sheet.columns.item(1).columnWidth = 8;",
		`$sheet.Range("A1:C3").Borders.LineStyle = 1;`,
		`$sheet.Range("A4:C4").Borders.LineStyle = -4119;`,
		`$sheet.Range("A1:C1").AutoFilter() | Out-Null;`,
		`$sheet.Cells.font.Name = "Meiryo UI";`,
	}, cmds[6:16])
}

func TestEmit_SheetsInOrder(t *testing.T) {
	cmds := Emit("out.xlsx", []*Sheet{NewSheet("first"), NewSheet("second")})

	var names []string
	for _, c := range cmds {
		if strings.HasPrefix(c, "$sheet.Name") {
			names = append(names, c)
		}
	}
	assert.Equal(t, []string{`$sheet.Name = "first";`, `$sheet.Name = "second";`}, names)
}

func TestEmit_NoSheets(t *testing.T) {
	cmds := Emit("out.xlsx", nil)
	require.Len(t, cmds, 9)
	assert.Equal(t, `$excel.Worksheets.item("Sheet1").delete();`, cmds[4])
}

func TestEmitter_Options(t *testing.T) {
	e := &Emitter{FontName: "Arial", PlaceholderSheet: "Feuil1"}
	cmds := e.Emit("out.xlsx", []*Sheet{NewSheet("s")})
	assert.Contains(t, cmds, `$sheet.Cells.font.Name = "Arial";`)
	assert.Contains(t, cmds, `$excel.Worksheets.item("Feuil1").delete();`)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, "\"say `\"hi`\"\""},
		{"$100", "\"`$100\""},
		{"a`b", "\"a``b\""},
		{"“x”", "\"`“x`”\""},
		{"日本語", `"日本語"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quote(tt.in), "quote(%q)", tt.in)
	}
}

func TestEmit_EscapesContent(t *testing.T) {
	sheet := NewSheet(`a"b`).AddCell(NewCell().SetContent("$(Remove-Item x)"))
	cmds := Emit("out.xlsx", []*Sheet{sheet})
	assert.Equal(t, "$sheet.Name = \"a`\"b\";", cmds[5])
	assert.Equal(t, "$sheet.Cells.Item(1,1) = \"`$(Remove-Item x)\";", cmds[6])
}
