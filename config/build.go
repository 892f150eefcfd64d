package config

import (
	"fmt"
	"maps"

	"github.com/javajack/xlwrite"
)

// Build turns a workbook description into a Workbook, expanding expressions
// against wb.Data. opts are applied before the description's own settings.
func Build(wb *WorkbookConfig, opts ...xlwrite.Option) (*xlwrite.Workbook, error) {
	if wb.Font != "" {
		opts = append(opts, xlwrite.WithFontName(wb.Font))
	}
	if wb.PlaceholderSheet != "" {
		opts = append(opts, xlwrite.WithPlaceholderSheet(wb.PlaceholderSheet))
	}
	book := xlwrite.NewWorkbook(opts...)

	ev := NewEvaluator()
	data := wb.Data
	if data == nil {
		data = map[string]any{}
	}

	if wb.Output != "" {
		out, err := ev.Expand(wb.Output, data)
		if err != nil {
			return nil, fmt.Errorf("output: %w", err)
		}
		book.SetPath(out)
	}

	for i := range wb.Sheets {
		sheet, err := buildSheet(ev, &wb.Sheets[i], data)
		if err != nil {
			return nil, fmt.Errorf("sheet %d (%s): %w", i, wb.Sheets[i].Name, err)
		}
		book.AddSheet(sheet)
	}
	return book, nil
}

func buildSheet(ev *Evaluator, sc *SheetConfig, data map[string]any) (*xlwrite.Sheet, error) {
	name, err := ev.Expand(sc.Name, data)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	sheet := xlwrite.NewSheet(name)

	for i, cc := range sc.Cells {
		cell, err := buildCell(ev, cc, data)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		sheet.AddCell(cell)
	}
	for i, rc := range sc.Repeats {
		if err := buildRepeat(ev, sheet, rc, data); err != nil {
			return nil, fmt.Errorf("repeat %d: %w", i, err)
		}
	}
	for _, w := range sc.Widths {
		sheet.AddWidth(w.Col, w.Width)
	}
	for _, l := range sc.Lines {
		sheet.AddLine(l.FromRow, l.ToRow, l.FromCol, l.ToCol, l.Style)
	}
	if f := sc.Filter; f != nil {
		sheet.SetSort(f.Row, f.FromCol, f.ToCol)
	}
	return sheet, nil
}

func buildCell(ev *Evaluator, cc CellConfig, data map[string]any) (*xlwrite.Cell, error) {
	value, err := ev.Expand(cc.Value, data)
	if err != nil {
		return nil, err
	}
	cell := xlwrite.NewCell().SetPos(cc.Row, cc.Col).SetContent(value)
	if cc.FontColor != nil {
		cell.SetFontColorIndex(*cc.FontColor)
	}
	if cc.Background != nil {
		cell.SetBackgroundColorIndex(*cc.Background)
	}
	if cc.Link != "" {
		link, err := ev.Expand(cc.Link, data)
		if err != nil {
			return nil, err
		}
		cell.SetHyperlink(link)
	}
	if cc.Validation != "" {
		rule, err := ev.Expand(cc.Validation, data)
		if err != nil {
			return nil, err
		}
		cell.SetValidation(rule)
	}
	return cell, nil
}

// buildRepeat writes the optional header on rc.Row-1 and one row per item.
func buildRepeat(ev *Evaluator, sheet *xlwrite.Sheet, rc RepeatConfig, data map[string]any) error {
	col := rc.Col
	if col < 1 {
		col = 1
	}
	varName := rc.Var
	if varName == "" {
		varName = "e"
	}

	for j, h := range rc.Header {
		sheet.AddCell(xlwrite.NewCell().SetPos(rc.Row-1, col+j).SetContent(h))
	}

	items, err := ev.Items(rc.Items, data)
	if err != nil {
		return err
	}

	vars := make(map[string]any, len(data)+len(rc.Extra)+2)
	maps.Copy(vars, data)
	maps.Copy(vars, rc.Extra)
	for i, item := range items {
		vars[varName] = item
		vars["index"] = i
		for j, tmpl := range rc.Columns {
			value, err := ev.Expand(tmpl, vars)
			if err != nil {
				return fmt.Errorf("item %d column %d: %w", i, j, err)
			}
			cell := xlwrite.NewCell().SetPos(rc.Row+i, col+j).SetContent(value)
			if rc.FontColor != nil {
				cell.SetFontColorIndex(*rc.FontColor)
			}
			if rc.Background != nil {
				cell.SetBackgroundColorIndex(*rc.Background)
			}
			sheet.AddCell(cell)
		}
	}

	if rc.Border != nil && len(items) > 0 {
		top := rc.Row
		if len(rc.Header) > 0 {
			top = rc.Row - 1
		}
		sheet.AddLine(top, rc.Row+len(items)-1, col, col+len(rc.Columns)-1, *rc.Border)
	}
	return nil
}
