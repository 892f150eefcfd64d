package xlwrite

import (
	"fmt"
	"strconv"
	"strings"
)

// Emitter translates sheets into PowerShell statements driving the Excel COM
// object model. The engine interprets them top to bottom with state (the
// current $sheet), so the order produced here is significant.
type Emitter struct {
	FontName         string
	PlaceholderSheet string
}

// Emit returns the script for writing sheets to path using default settings.
func Emit(path string, sheets []*Sheet) []string {
	return (&Emitter{}).Emit(path, sheets)
}

// Emit returns one statement per element, in execution order.
func (e *Emitter) Emit(path string, sheets []*Sheet) []string {
	fontName := e.FontName
	if fontName == "" {
		fontName = DefaultFontName
	}
	placeholder := e.PlaceholderSheet
	if placeholder == "" {
		placeholder = DefaultPlaceholderSheet
	}

	cmds := []string{
		"$excel = New-Object -ComObject Excel.Application;",
		"$excel.Visible = $false;",
		"$book = $excel.Workbooks.Add();",
		"$excel.DisplayAlerts = $false;",
	}

	for _, s := range sheets {
		cmds = append(cmds,
			"$sheet = $book.Worksheets.Add();",
			fmt.Sprintf("$sheet.Name = %s;", quote(s.name)),
		)
		for _, c := range s.cells {
			cmds = append(cmds, cellCommands(c)...)
		}
		for _, w := range s.widths {
			cmds = append(cmds, fmt.Sprintf("$sheet.columns.item(%d).columnWidth = %s;",
				w.Col, strconv.FormatFloat(w.Width, 'f', -1, 64)))
		}
		for _, l := range s.lines {
			cmds = append(cmds, fmt.Sprintf("$sheet.Range(%s).Borders.LineStyle = %d;", quote(l.Range), l.Style))
		}
		if s.sort != "" {
			cmds = append(cmds, fmt.Sprintf("$sheet.Range(%s).AutoFilter() | Out-Null;", quote(s.sort)))
		}
		cmds = append(cmds, fmt.Sprintf("$sheet.Cells.font.Name = %s;", quote(fontName)))
	}

	cmds = append(cmds,
		fmt.Sprintf("$excel.Worksheets.item(%s).delete();", quote(placeholder)),
		fmt.Sprintf("$book.SaveAs(%s);", quote(nativePath(path))),
		"$excel.Quit();",
		"$excel = $null;",
		"[GC]::Collect();",
	)
	return cmds
}

func cellCommands(c *Cell) []string {
	item := fmt.Sprintf("$sheet.Cells.Item(%d,%d)", c.row, c.col)

	var cmds []string
	if link, ok := c.Hyperlink(); ok {
		cmds = append(cmds, fmt.Sprintf(`$sheet.Hyperlinks.Add(%s,%s,"","",%s) | Out-Null;`,
			item, quote(nativePath(link)), quote(c.content)))
	} else {
		cmds = append(cmds, fmt.Sprintf("%s = %s;", item, quote(c.content)))
	}
	if idx, ok := c.FontColorIndex(); ok {
		cmds = append(cmds, fmt.Sprintf("%s.Font.ColorIndex = %d;", item, idx))
	}
	if idx, ok := c.BackgroundColorIndex(); ok {
		cmds = append(cmds, fmt.Sprintf("%s.Interior.ColorIndex = %d;", item, idx))
	}
	if formula, ok := c.Validation(); ok {
		// 3, 1, 1 = xlValidateList, xlValidAlertStop, xlBetween
		cmds = append(cmds,
			fmt.Sprintf("%s.Validation.Delete();", item),
			fmt.Sprintf("%s.Validation.Add(3, 1, 1, %s);", item, quote(formula)),
		)
	}
	return cmds
}

// psEscaper escapes the characters PowerShell interprets inside a
// double-quoted string. Typographic quotes terminate such strings too.
var psEscaper = strings.NewReplacer(
	"`", "``",
	`"`, "`\"",
	"$", "`$",
	"“", "`“",
	"”", "`”",
	"„", "`„",
)

// quote renders s as a PowerShell double-quoted string literal.
func quote(s string) string {
	return `"` + psEscaper.Replace(s) + `"`
}

// nativePath converts forward slashes to the engine's backslash separator.
func nativePath(p string) string {
	return strings.ReplaceAll(p, "/", `\`)
}
