package config

// WorkbookConfig describes a workbook in a YAML file.
type WorkbookConfig struct {
	Output           string         `yaml:"output,omitempty"`           // output path, default: timestamped file on the desktop
	Font             string         `yaml:"font,omitempty"`             // font applied to every sheet
	PlaceholderSheet string         `yaml:"placeholderSheet,omitempty"` // engine's auto-created sheet name
	Data             map[string]any `yaml:"data,omitempty"`             // values for ${...} expressions
	Sheets           []SheetConfig  `yaml:"sheets"`
}

// SheetConfig describes one sheet.
type SheetConfig struct {
	Name    string         `yaml:"name"`
	Cells   []CellConfig   `yaml:"cells,omitempty"`
	Repeats []RepeatConfig `yaml:"repeats,omitempty"`
	Widths  []WidthConfig  `yaml:"widths,omitempty"`
	Lines   []LineConfig   `yaml:"lines,omitempty"`
	Filter  *FilterConfig  `yaml:"filter,omitempty"`
}

// CellConfig describes one cell. Value, Link and Validation may contain
// ${...} expressions.
type CellConfig struct {
	Row        int    `yaml:"row"`
	Col        int    `yaml:"col"`
	Value      string `yaml:"value"`
	FontColor  *int   `yaml:"fontColor,omitempty"`
	Background *int   `yaml:"background,omitempty"`
	Link       string `yaml:"link,omitempty"`
	Validation string `yaml:"validation,omitempty"`
}

// RepeatConfig writes one row per element of Items, starting at Row.
// Each template in Columns fills the next column from Col, with the element
// bound to Var (default "e") and its index to "index".
type RepeatConfig struct {
	Items      string         `yaml:"items"` // expression yielding a list
	Var        string         `yaml:"var,omitempty"`
	Row        int            `yaml:"row"`
	Col        int            `yaml:"col,omitempty"`
	Columns    []string       `yaml:"columns"`
	FontColor  *int           `yaml:"fontColor,omitempty"`
	Background *int           `yaml:"background,omitempty"`
	Border     *int           `yaml:"border,omitempty"` // line style drawn around the written rows
	Header     []string       `yaml:"header,omitempty"` // written on Row-1 when set
	Extra      map[string]any `yaml:"extra,omitempty"`  // additional variables for the templates
}

// WidthConfig sets a column width.
type WidthConfig struct {
	Col   int     `yaml:"col"`
	Width float64 `yaml:"width"`
}

// LineConfig borders a rectangular range.
type LineConfig struct {
	FromRow int `yaml:"fromRow"`
	ToRow   int `yaml:"toRow"`
	FromCol int `yaml:"fromCol"`
	ToCol   int `yaml:"toCol"`
	Style   int `yaml:"style"`
}

// FilterConfig places an auto filter on one row.
type FilterConfig struct {
	Row     int `yaml:"row"`
	FromCol int `yaml:"fromCol"`
	ToCol   int `yaml:"toCol"`
}
