package xlwrite

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// MaxColumn is the widest column ColumnLabel can name.
const MaxColumn = 26

// fallbackColumn is returned by ColumnLabel for columns it cannot name.
const fallbackColumn = "Z"

// ColumnLabel converts a 1-based column index to its single-letter label.
// 1→"A", 26→"Z". Anything outside [1, MaxColumn] yields "Z", so column 0
// and column 27 both alias column 26. Validate reports such columns.
func ColumnLabel(col int) string {
	if col < 1 || col > MaxColumn {
		return fallbackColumn
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fallbackColumn
	}
	return name
}

// CellLabel formats a single cell like "B3".
func CellLabel(row, col int) string {
	return ColumnLabel(col) + strconv.Itoa(row)
}

// RangeLabel formats a rectangular range like "A1:C5".
func RangeLabel(startRow, startCol, endRow, endCol int) string {
	return CellLabel(startRow, startCol) + ":" + CellLabel(endRow, endCol)
}

// columnInRange reports whether ColumnLabel names col without falling back.
func columnInRange(col int) bool {
	return col >= 1 && col <= MaxColumn
}

// forbiddenSheetRunes cannot appear in a sheet name.
var forbiddenSheetRunes = []rune{'/', '\\', ':', '*', '?', '[', ']'}

// SafeSheetName replaces forbidden characters ([]*?/\:) with underscore and
// truncates to the engine's sheet name limit.
func SafeSheetName(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		for _, f := range forbiddenSheetRunes {
			if r == f {
				runes[i] = '_'
				break
			}
		}
	}
	if len(runes) > excelize.MaxSheetNameLength {
		runes = runes[:excelize.MaxSheetNameLength]
	}
	return string(runes)
}
