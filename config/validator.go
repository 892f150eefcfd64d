package config

import "fmt"

// ValidateWorkbook checks the structure of a workbook description. Content
// problems (bad sheet names, column limits) are left to xlwrite's Validate.
func ValidateWorkbook(wb *WorkbookConfig) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook must have at least one sheet")
	}
	for i := range wb.Sheets {
		if err := ValidateSheet(&wb.Sheets[i]); err != nil {
			return fmt.Errorf("sheet %d error: %w", i, err)
		}
	}
	return nil
}

// ValidateSheet checks one sheet description.
func ValidateSheet(sheet *SheetConfig) error {
	if sheet.Name == "" {
		return fmt.Errorf("sheet name is required")
	}
	for i, c := range sheet.Cells {
		if c.Row < 1 || c.Col < 1 {
			return fmt.Errorf("sheet '%s' cell %d: row and col must be >= 1, got (%d,%d)", sheet.Name, i, c.Row, c.Col)
		}
	}
	for i, r := range sheet.Repeats {
		if r.Items == "" {
			return fmt.Errorf("sheet '%s' repeat %d: items is required", sheet.Name, i)
		}
		if r.Row < 1 {
			return fmt.Errorf("sheet '%s' repeat %d: row must be >= 1", sheet.Name, i)
		}
		if len(r.Header) > 0 && r.Row < 2 {
			return fmt.Errorf("sheet '%s' repeat %d: a header needs row >= 2", sheet.Name, i)
		}
		if len(r.Columns) == 0 {
			return fmt.Errorf("sheet '%s' repeat %d: at least one column is required", sheet.Name, i)
		}
	}
	for i, w := range sheet.Widths {
		if w.Col < 1 {
			return fmt.Errorf("sheet '%s' width %d: col must be >= 1", sheet.Name, i)
		}
	}
	for i, l := range sheet.Lines {
		if l.FromRow < 1 || l.ToRow < l.FromRow || l.FromCol < 1 || l.ToCol < l.FromCol {
			return fmt.Errorf("sheet '%s' line %d: invalid range (%d,%d)-(%d,%d)", sheet.Name, i, l.FromRow, l.FromCol, l.ToRow, l.ToCol)
		}
	}
	if f := sheet.Filter; f != nil {
		if f.Row < 1 || f.FromCol < 1 || f.ToCol < f.FromCol {
			return fmt.Errorf("sheet '%s' filter: invalid range row %d cols %d-%d", sheet.Name, f.Row, f.FromCol, f.ToCol)
		}
	}
	return nil
}
