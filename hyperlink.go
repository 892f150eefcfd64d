package xlwrite

// Link returns a cell at (row, col) that displays display and links to target.
// When display is empty the target itself is shown.
func Link(row, col int, target, display string) *Cell {
	if display == "" {
		display = target
	}
	return NewCell().SetPos(row, col).SetContent(display).SetHyperlink(target)
}
