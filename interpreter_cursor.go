package vtcore

// Public cursor-motion API driven by host key/navigation events (distinct
// from escape/CSI-sequence cursor motion in interpreter_exec.go/
// interpreter_csi.go). Grounded on the teacher's buffer_cursor.go
// MoveCursorUp/Down/Forward/Backward, extended with optional selection
// extension the teacher handled separately in buffer_selection.go
// StartSelection/UpdateSelection.

// CursorMoveOptions controls host-driven cursor motion (spec §4.6,
// "navigation events may extend the active selection").
type CursorMoveOptions struct {
	ExtendSelection bool
}

// MoveCursorTo relocates the cursor to an absolute (row, column), clamping
// to the grid, and optionally extends the active selection to the new
// position (spec §4.6).
func (it *Interpreter) MoveCursorTo(row, column int, opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.cursorRow, it.cursorColumn = row, column
	it.clampCursor()
	return it.afterCursorMove(opts)
}

// MoveCursorLeft/Right/Up/Down move the cursor by n cells, clamping to the
// grid (spec §4.6).
func (it *Interpreter) MoveCursorLeft(n int, opts CursorMoveOptions) []TerminalUpdate {
	return it.moveCursorDelta(0, -n, opts)
}

func (it *Interpreter) MoveCursorRight(n int, opts CursorMoveOptions) []TerminalUpdate {
	return it.moveCursorDelta(0, n, opts)
}

func (it *Interpreter) MoveCursorUp(n int, opts CursorMoveOptions) []TerminalUpdate {
	return it.moveCursorDelta(-n, 0, opts)
}

func (it *Interpreter) MoveCursorDown(n int, opts CursorMoveOptions) []TerminalUpdate {
	return it.moveCursorDelta(n, 0, opts)
}

func (it *Interpreter) moveCursorDelta(dRow, dCol int, opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.cursorRow += dRow
	it.cursorColumn += dCol
	it.clampCursor()
	return it.afterCursorMove(opts)
}

// MoveCursorLineStart/LineEnd move to the first/last column of the current
// row (spec §4.6, "Home/End").
func (it *Interpreter) MoveCursorLineStart(opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.cursorColumn = 0
	return it.afterCursorMove(opts)
}

func (it *Interpreter) MoveCursorLineEnd(opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.cursorColumn = it.columns - 1
	return it.afterCursorMove(opts)
}

// MoveCursorWordLeft/Right jump across the nearest word boundary in the
// current row, treating runs of non-space cells as words (spec §4.6).
func (it *Interpreter) MoveCursorWordLeft(opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	row := it.buffer[it.cursorRow]
	c := it.cursorColumn
	for c > 0 && isWordSpace(row[c-1]) {
		c--
	}
	for c > 0 && !isWordSpace(row[c-1]) {
		c--
	}
	it.cursorColumn = c
	return it.afterCursorMove(opts)
}

func (it *Interpreter) MoveCursorWordRight(opts CursorMoveOptions) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	row := it.buffer[it.cursorRow]
	c := it.cursorColumn
	n := len(row)
	for c < n && !isWordSpace(row[c]) {
		c++
	}
	for c < n && isWordSpace(row[c]) {
		c++
	}
	it.cursorColumn = c
	return it.afterCursorMove(opts)
}

func isWordSpace(c Cell) bool {
	return c.Char == 0 || c.Char == ' '
}

func (it *Interpreter) afterCursorMove(opts CursorMoveOptions) []TerminalUpdate {
	it.clampCursor()
	out := []TerminalUpdate{it.cursorUpdate()}
	if opts.ExtendSelection {
		out = append(out, it.extendSelectionToCursorLocked())
	}
	return out
}
