package xlwrite

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // The engine will fail or write the wrong thing
	SeverityWarning                 // Written, but probably not what was meant
)

// ValidationIssue represents a single problem found in a workbook.
type ValidationIssue struct {
	Severity Severity
	Sheet    string // empty for workbook-level issues
	Ref      string // cell or range, may be empty
	Message  string
}

// String formats the issue as "[ERROR] Sheet1!A2: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	loc := v.Sheet
	if v.Ref != "" {
		loc += "!" + v.Ref
	}
	if loc == "" {
		return fmt.Sprintf("[%s] %s", sev, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", sev, loc, v.Message)
}

// HasErrors reports whether any issue has SeverityError.
func HasErrors(issues []ValidationIssue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Palette and line style codes the engine accepts.
const (
	colorIndexNone      = -4142
	colorIndexAutomatic = -4105
	maxColorIndex       = 56
)

var lineStyles = map[int]bool{
	1:     true, // continuous
	4:     true, // dash dot
	5:     true, // dash dot dot
	13:    true, // slant dash dot
	-4115: true, // dash
	-4118: true, // dot
	-4119: true, // double
	-4142: true, // none
}

// Validate checks the workbook for problems the engine would reject or that
// silently change the output. It performs no I/O.
func (w *Workbook) Validate() []ValidationIssue {
	var issues []ValidationIssue
	if len(w.sheets) == 0 {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Message: ErrNoSheets.Error()})
	}

	placeholder := w.opts.placeholderSheet
	seen := make(map[string]bool)
	for _, s := range w.sheets {
		issues = append(issues, validateSheetName(s.name, placeholder, seen)...)
		issues = append(issues, validateCells(s)...)
		issues = append(issues, validateLayout(s)...)
	}
	if n := len([]rune(w.opts.fontName)); n > excelize.MaxFontFamilyLength {
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("font name %q is %d characters, limit is %d", w.opts.fontName, n, excelize.MaxFontFamilyLength),
		})
	}
	return issues
}

func validateSheetName(name, placeholder string, seen map[string]bool) []ValidationIssue {
	var issues []ValidationIssue
	add := func(msg string, args ...any) {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Sheet: name, Message: fmt.Sprintf(msg, args...)})
	}
	switch {
	case strings.TrimSpace(name) == "":
		add("sheet name is empty")
	case SafeSheetName(name) != name:
		add("sheet name contains []*?/\\: or exceeds %d characters", excelize.MaxSheetNameLength)
	}
	key := strings.ToLower(name)
	if seen[key] {
		add("duplicate sheet name")
	}
	seen[key] = true
	if placeholder != "" && strings.EqualFold(name, placeholder) {
		add("sheet name collides with the placeholder sheet %q, which is deleted after all sheets are added", placeholder)
	}
	return issues
}

func validateCells(s *Sheet) []ValidationIssue {
	var issues []ValidationIssue
	positions := make(map[[2]int]bool)
	for _, c := range s.cells {
		ref := c.Ref()
		if c.row > excelize.TotalRows || c.col > excelize.MaxColumns {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError, Sheet: s.name, Ref: ref,
				Message: fmt.Sprintf("cell (%d,%d) is outside the sheet", c.row, c.col),
			})
		}
		pos := [2]int{c.row, c.col}
		if positions[pos] {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning, Sheet: s.name, Ref: ref,
				Message: fmt.Sprintf("cell (%d,%d) is set more than once, the last one wins", c.row, c.col),
			})
		}
		positions[pos] = true

		if idx, ok := c.FontColorIndex(); ok && !validColorIndex(idx) {
			issues = append(issues, colorIssue(s.name, ref, "font", idx))
		}
		if idx, ok := c.BackgroundColorIndex(); ok && !validColorIndex(idx) {
			issues = append(issues, colorIssue(s.name, ref, "background", idx))
		}
		if link, ok := c.Hyperlink(); ok && link == "" {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning, Sheet: s.name, Ref: ref,
				Message: "hyperlink target is empty",
			})
		}
		if formula, ok := c.Validation(); ok && strings.TrimSpace(formula) == "" {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError, Sheet: s.name, Ref: ref,
				Message: "validation rule is empty",
			})
		}
	}
	return issues
}

func validateLayout(s *Sheet) []ValidationIssue {
	var issues []ValidationIssue
	for _, w := range s.widths {
		if w.Col < 1 || w.Col > excelize.MaxColumns {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError, Sheet: s.name,
				Message: fmt.Sprintf("column width set for invalid column %d", w.Col),
			})
		}
		if w.Width < 0 || w.Width > excelize.MaxColumnWidth {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning, Sheet: s.name,
				Message: fmt.Sprintf("column %d width %g is outside 0-%d", w.Col, w.Width, excelize.MaxColumnWidth),
			})
		}
	}
	for _, l := range s.lines {
		if !lineStyles[l.Style] {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning, Sheet: s.name, Ref: l.Range,
				Message: fmt.Sprintf("unknown border line style %d", l.Style),
			})
		}
	}
	for _, a := range s.aliased {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError, Sheet: s.name, Ref: a.rng,
			Message: fmt.Sprintf("%s column %d cannot be labelled and was written as %q", a.kind, a.col, fallbackColumn),
		})
	}
	return issues
}

func colorIssue(sheet, ref, kind string, idx int) ValidationIssue {
	return ValidationIssue{
		Severity: SeverityWarning, Sheet: sheet, Ref: ref,
		Message: fmt.Sprintf("%s color index %d is outside the palette (1-%d)", kind, idx, maxColorIndex),
	}
}

func validColorIndex(idx int) bool {
	return (idx >= 1 && idx <= maxColorIndex) || idx == colorIndexNone || idx == colorIndexAutomatic
}
