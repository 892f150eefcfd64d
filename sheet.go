package xlwrite

// Width sets the width of one column. Later entries for the same column are
// emitted after earlier ones, so the last one wins.
type Width struct {
	Col   int     // 1-based column
	Width float64 // engine units (characters)
}

// Line applies a border style to a range.
type Line struct {
	Range string // e.g. "A1:C3"
	Style int    // engine line style code, 1 = continuous
}

// Sheet is one named page of a Workbook. Cells, widths and lines are emitted
// in insertion order; a later cell at the same position overwrites an earlier one.
type Sheet struct {
	name   string
	cells  []*Cell
	widths []Width
	lines  []Line
	sort   string

	// aliased records columns that ColumnLabel folded to "Z".
	aliased []columnAlias
}

type columnAlias struct {
	kind string // "line" or "sort"
	rng  string
	col  int
}

// NewSheet returns an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{name: name}
}

func (s *Sheet) SetName(name string) *Sheet {
	s.name = name
	return s
}

// SetCells replaces all cells with copies of cells.
func (s *Sheet) SetCells(cells []*Cell) *Sheet {
	s.cells = make([]*Cell, 0, len(cells))
	for _, c := range cells {
		s.AddCell(c)
	}
	return s
}

// AddCell appends a copy of c. Nil cells are ignored.
func (s *Sheet) AddCell(c *Cell) *Sheet {
	if c == nil {
		return s
	}
	s.cells = append(s.cells, c.clone())
	return s
}

// SetWidths replaces all column widths.
func (s *Sheet) SetWidths(widths []Width) *Sheet {
	s.widths = append([]Width(nil), widths...)
	return s
}

// AddWidth appends a column width for the 1-based column col.
func (s *Sheet) AddWidth(col int, width float64) *Sheet {
	s.widths = append(s.widths, Width{Col: col, Width: width})
	return s
}

// SetSort places an auto filter over row, from startCol to endCol.
// The range label is computed now, so out-of-range columns are already
// folded to "Z" here.
func (s *Sheet) SetSort(row, startCol, endCol int) *Sheet {
	s.sort = RangeLabel(row, startCol, row, endCol)
	s.aliased = dropAliases(s.aliased, "sort")
	s.noteAliases("sort", s.sort, startCol, endCol)
	return s
}

// AddLine borders the rectangle (startRow, startCol)-(endRow, endCol) with style.
// Note the argument order: both rows first, then both columns.
func (s *Sheet) AddLine(startRow, endRow, startCol, endCol, style int) *Sheet {
	rng := RangeLabel(startRow, startCol, endRow, endCol)
	s.lines = append(s.lines, Line{Range: rng, Style: style})
	s.noteAliases("line", rng, startCol, endCol)
	return s
}

func (s *Sheet) noteAliases(kind, rng string, cols ...int) {
	for _, col := range cols {
		if !columnInRange(col) {
			s.aliased = append(s.aliased, columnAlias{kind: kind, rng: rng, col: col})
		}
	}
}

func dropAliases(aliases []columnAlias, kind string) []columnAlias {
	out := aliases[:0]
	for _, a := range aliases {
		if a.kind != kind {
			out = append(out, a)
		}
	}
	return out
}

func (s *Sheet) Name() string { return s.name }

// Cells returns the sheet's cells in emission order.
func (s *Sheet) Cells() []*Cell {
	out := make([]*Cell, len(s.cells))
	for i, c := range s.cells {
		out[i] = c.clone()
	}
	return out
}

func (s *Sheet) Widths() []Width { return append([]Width(nil), s.widths...) }
func (s *Sheet) Lines() []Line   { return append([]Line(nil), s.lines...) }

// Sort returns the auto filter range, if one was set.
func (s *Sheet) Sort() (string, bool) { return s.sort, s.sort != "" }

func (s *Sheet) clone() *Sheet {
	cp := &Sheet{
		name:   s.name,
		cells:  make([]*Cell, len(s.cells)),
		widths: append([]Width(nil), s.widths...),
		lines:  append([]Line(nil), s.lines...),
		sort:   s.sort,

		aliased: append([]columnAlias(nil), s.aliased...),
	}
	for i, c := range s.cells {
		cp.cells[i] = c.clone()
	}
	return cp
}
