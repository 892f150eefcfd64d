package xlwrite

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Cell is one content unit at a 1-based (row, column) position.
//
// Cells are built fluently:
//
//	c := xlwrite.NewCell().SetPos(2, 3).SetContent("total").SetBackgroundColorIndex(6)
//
// A Sheet keeps its own copy of every cell added to it, so further setter
// calls on c do not change what the Sheet will emit.
type Cell struct {
	row        int
	col        int
	content    string
	fontColor  *int
	bgColor    *int
	hyperlink  *string
	validation *string
}

// NewCell returns an empty cell at (1, 1).
func NewCell() *Cell {
	return &Cell{row: 1, col: 1}
}

// SetPos moves the cell. A row or column below 1 leaves the position unchanged.
func (c *Cell) SetPos(row, col int) *Cell {
	if row < 1 || col < 1 {
		return c
	}
	c.row = row
	c.col = col
	return c
}

// SetContent sets the text written to the cell (or the hyperlink display text).
func (c *Cell) SetContent(content string) *Cell {
	c.content = content
	return c
}

// SetFontColorIndex sets the font color as an index into the engine's palette.
func (c *Cell) SetFontColorIndex(index int) *Cell {
	c.fontColor = &index
	return c
}

// SetBackgroundColorIndex sets the fill color as an index into the engine's palette.
func (c *Cell) SetBackgroundColorIndex(index int) *Cell {
	c.bgColor = &index
	return c
}

// SetHyperlink turns the cell into a link to path. Forward slashes are
// rewritten to backslashes when the script is emitted.
func (c *Cell) SetHyperlink(path string) *Cell {
	c.hyperlink = &path
	return c
}

// SetValidation attaches a list validation rule, e.g. "yes,no" or "=$A$1:$A$5".
func (c *Cell) SetValidation(formula string) *Cell {
	c.validation = &formula
	return c
}

// Pos returns the 1-based row and column.
func (c *Cell) Pos() (row, col int) { return c.row, c.col }

func (c *Cell) Row() int        { return c.row }
func (c *Cell) Col() int        { return c.col }
func (c *Cell) Content() string { return c.content }

// Ref returns the A1-style name of the cell, e.g. "C2" or "AB10". Unlike
// ColumnLabel it names every column the engine supports.
func (c *Cell) Ref() string {
	name, err := excelize.CoordinatesToCellName(c.col, c.row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.row, c.col)
	}
	return name
}

func (c *Cell) FontColorIndex() (int, bool)       { return derefInt(c.fontColor) }
func (c *Cell) BackgroundColorIndex() (int, bool) { return derefInt(c.bgColor) }
func (c *Cell) Hyperlink() (string, bool)         { return derefString(c.hyperlink) }
func (c *Cell) Validation() (string, bool)        { return derefString(c.validation) }

// clone copies the cell including its optional values.
func (c *Cell) clone() *Cell {
	cp := *c
	if c.fontColor != nil {
		v := *c.fontColor
		cp.fontColor = &v
	}
	if c.bgColor != nil {
		v := *c.bgColor
		cp.bgColor = &v
	}
	if c.hyperlink != nil {
		v := *c.hyperlink
		cp.hyperlink = &v
	}
	if c.validation != nil {
		v := *c.validation
		cp.validation = &v
	}
	return &cp
}

func derefInt(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func derefString(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}
