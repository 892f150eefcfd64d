package xlwrite

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe returns a human-readable tree of the workbook: its output path,
// then each sheet with its cells, widths, borders and filter.
// Useful for checking a workbook before writing it.
func (w *Workbook) Describe() string {
	var b strings.Builder
	b.WriteString("Workbook: ")
	b.WriteString(w.path)
	b.WriteByte('\n')

	for _, s := range w.sheets {
		describeSheet(&b, s)
	}
	return b.String()
}

// describeSheet writes one sheet block, e.g.
//
//	Sheet "Report" (3 cells, 1 widths, 1 lines)
//	  A1 "Name" font=3
//	  Widths: 1=20
//	  Lines: A1:C3 style=1
//	  Filter: A1:C1
func describeSheet(b *strings.Builder, s *Sheet) {
	fmt.Fprintf(b, "Sheet %q (%d cells, %d widths, %d lines)\n", s.name, len(s.cells), len(s.widths), len(s.lines))

	for _, c := range s.cells {
		fmt.Fprintf(b, "  %s %q%s\n", c.Ref(), c.content, describeCellAttrs(c))
	}

	if len(s.widths) > 0 {
		parts := make([]string, 0, len(s.widths))
		for _, w := range s.widths {
			parts = append(parts, strconv.Itoa(w.Col)+"="+strconv.FormatFloat(w.Width, 'f', -1, 64))
		}
		fmt.Fprintf(b, "  Widths: %s\n", strings.Join(parts, " "))
	}
	if len(s.lines) > 0 {
		parts := make([]string, 0, len(s.lines))
		for _, l := range s.lines {
			parts = append(parts, fmt.Sprintf("%s style=%d", l.Range, l.Style))
		}
		fmt.Fprintf(b, "  Lines: %s\n", strings.Join(parts, ", "))
	}
	if s.sort != "" {
		fmt.Fprintf(b, "  Filter: %s\n", s.sort)
	}
}

// describeCellAttrs returns the optional cell attributes for display.
func describeCellAttrs(c *Cell) string {
	var parts []string
	if idx, ok := c.FontColorIndex(); ok {
		parts = append(parts, fmt.Sprintf("font=%d", idx))
	}
	if idx, ok := c.BackgroundColorIndex(); ok {
		parts = append(parts, fmt.Sprintf("bg=%d", idx))
	}
	if link, ok := c.Hyperlink(); ok {
		parts = append(parts, fmt.Sprintf("link=%q", link))
	}
	if v, ok := c.Validation(); ok {
		parts = append(parts, fmt.Sprintf("validation=%q", v))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
