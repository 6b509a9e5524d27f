package vtcore

// Scroll-region mechanics, grounded on javanhut-RavenTerminal's
// grid.SetScrollRegion/GetScrollRegion (the teacher's buffer_scroll.go has no
// scroll-region concept at all; it always scrolls the whole screen) combined
// with the teacher's buffer_scroll.go scrollUpInternal shape for scrollback
// pushing.

// advanceLine moves the cursor down one row, scrolling the active region up
// by one line when the cursor is already on the bottom margin (spec §4.5,
// "IND"/printable wrap). It returns the resulting scroll update, or nil if
// no scroll occurred.
func (it *Interpreter) advanceLine() *TerminalUpdate {
	if it.cursorRow == it.scrollBottom {
		it.scrollUp(1)
		u := TerminalUpdate{Kind: UpdateScroll, ScrollAmount: 1, ScrollTop: it.scrollTop, ScrollBottom: it.scrollBottom}
		return &u
	}
	if it.cursorRow < it.rows-1 {
		it.cursorRow++
	}
	return nil
}

// reverseIndex moves the cursor up one row, scrolling the region down by one
// line when the cursor is on the top margin (spec §4.5, "RI").
func (it *Interpreter) reverseIndex() *TerminalUpdate {
	if it.cursorRow == it.scrollTop {
		it.scrollDown(1)
		u := TerminalUpdate{Kind: UpdateScroll, ScrollAmount: -1, ScrollTop: it.scrollTop, ScrollBottom: it.scrollBottom}
		return &u
	}
	if it.cursorRow > 0 {
		it.cursorRow--
	}
	return nil
}

// scrollUp shifts the active scroll region up by n lines, discarding the top
// n lines of the region. Lines leaving the region at the top of the whole
// screen (scrollTop == 0) are pushed to scrollback (spec supplement, see
// SPEC_FULL.md §4.5 "UpdateScrollback").
func (it *Interpreter) scrollUp(n int) {
	top, bottom := it.scrollTop, it.scrollBottom
	for i := 0; i < n; i++ {
		if it.scrollTop == 0 {
			it.pushScrollback(it.buffer[top])
		}
		copy(it.buffer[top:bottom], it.buffer[top+1:bottom+1])
		it.buffer[bottom] = it.newRow()
		copy(it.lineAttrs[top:bottom], it.lineAttrs[top+1:bottom+1])
		it.lineAttrs[bottom] = LineAttrNormal
	}
}

// scrollDown shifts the active scroll region down by n lines, discarding the
// bottom n lines of the region.
func (it *Interpreter) scrollDown(n int) {
	top, bottom := it.scrollTop, it.scrollBottom
	for i := 0; i < n; i++ {
		copy(it.buffer[top+1:bottom+1], it.buffer[top:bottom])
		it.buffer[top] = it.newRow()
		copy(it.lineAttrs[top+1:bottom+1], it.lineAttrs[top:bottom])
		it.lineAttrs[top] = LineAttrNormal
	}
}

func (it *Interpreter) pushScrollback(row []Cell) {
	if it.maxScrollback <= 0 {
		return
	}
	cp := append([]Cell(nil), row...)
	it.scrollback = append(it.scrollback, cp)
	if len(it.scrollback) > it.maxScrollback {
		it.scrollback = it.scrollback[len(it.scrollback)-it.maxScrollback:]
	}
}

// setScrollRegion sets the DECSTBM top/bottom margins, clamped to the
// screen, and homes the cursor (spec §4.5, "r: set scroll region").
func (it *Interpreter) setScrollRegion(top, bottom int) TerminalUpdate {
	if top < 0 {
		top = 0
	}
	if bottom > it.rows-1 {
		bottom = it.rows - 1
	}
	if bottom-top < 1 {
		top, bottom = 0, it.rows-1
	}
	it.scrollTop, it.scrollBottom = top, bottom
	it.homeCursor()
	return TerminalUpdate{Kind: UpdateScrollRegion, ScrollTop: top, ScrollBottom: bottom}
}

func (it *Interpreter) homeCursor() {
	if it.originMode {
		it.cursorRow = it.scrollTop
	} else {
		it.cursorRow = 0
	}
	it.cursorColumn = 0
}

// insertLines implements IL (CSI n L): inserts n blank lines at the cursor
// row within the scroll region, pushing lines at the bottom of the region
// out (spec §4.5, "L: insert lines"). Grounded on the teacher's
// buffer_edit.go InsertLines, generalized to respect the scroll region.
func (it *Interpreter) insertLines(n int) {
	if it.cursorRow < it.scrollTop || it.cursorRow > it.scrollBottom {
		return
	}
	top, bottom := it.cursorRow, it.scrollBottom
	for i := 0; i < n && bottom > top; i++ {
		copy(it.buffer[top+1:bottom+1], it.buffer[top:bottom])
		it.buffer[top] = it.newRow()
		copy(it.lineAttrs[top+1:bottom+1], it.lineAttrs[top:bottom])
		it.lineAttrs[top] = LineAttrNormal
	}
}

// deleteLines implements DL (CSI n M), the inverse of insertLines.
func (it *Interpreter) deleteLines(n int) {
	if it.cursorRow < it.scrollTop || it.cursorRow > it.scrollBottom {
		return
	}
	top, bottom := it.cursorRow, it.scrollBottom
	for i := 0; i < n && bottom > top; i++ {
		copy(it.buffer[top:bottom], it.buffer[top+1:bottom+1])
		it.buffer[bottom] = it.newRow()
		copy(it.lineAttrs[top:bottom], it.lineAttrs[top+1:bottom+1])
		it.lineAttrs[bottom] = LineAttrNormal
	}
}

// deleteChars implements DCH (CSI n P): removes n cells at the cursor,
// shifting the remainder of the line left (spec §4.5, "P: delete chars").
// Grounded on the teacher's buffer_edit.go DeleteChars.
func (it *Interpreter) deleteChars(n int) {
	row := it.buffer[it.cursorRow]
	col := it.cursorColumn
	if n > len(row)-col {
		n = len(row) - col
	}
	if n <= 0 {
		return
	}
	copy(row[col:], row[col+n:])
	for i := len(row) - n; i < len(row); i++ {
		row[i] = EmptyCell(it.activeAttrs)
	}
}

// insertChars implements ICH (CSI n @): shifts cells at the cursor right by
// n, discarding cells pushed past the line end.
func (it *Interpreter) insertChars(n int) {
	it.shiftRowRight(it.cursorRow, it.cursorColumn, n)
}

func (it *Interpreter) shiftRowRight(row, col, n int) {
	line := it.buffer[row]
	if n > len(line)-col {
		n = len(line) - col
	}
	if n <= 0 {
		return
	}
	copy(line[col+n:], line[col:len(line)-n])
	for i := col; i < col+n; i++ {
		line[i] = EmptyCell(it.activeAttrs)
	}
}

// eraseChars implements ECH (CSI n X): blanks n cells at the cursor without
// shifting the line (spec §4.5, "X: erase chars").
func (it *Interpreter) eraseChars(n int) []CellUpdate {
	row := it.buffer[it.cursorRow]
	col := it.cursorColumn
	end := col + n
	if end > len(row) {
		end = len(row)
	}
	var cells []CellUpdate
	for c := col; c < end; c++ {
		row[c] = EmptyCell(it.activeAttrs)
		cells = append(cells, CellUpdate{Row: it.cursorRow, Column: c, Cell: row[c]})
	}
	return cells
}

// resize changes the grid dimensions, preserving as much of the existing
// content as fits (spec supplement: host-driven resize, see SPEC_FULL.md
// §4.5 "UpdateResize"). Grounded on the teacher's buffer.go Resize, stripped
// of its magnetic-scroll/logical-size machinery.
func (it *Interpreter) resize(rows, columns int) TerminalUpdate {
	if rows <= 0 {
		rows = it.rows
	}
	if columns <= 0 {
		columns = it.columns
	}
	newBuffer := make([][]Cell, rows)
	newAttrs := make([]LineAttr, rows)
	for r := 0; r < rows; r++ {
		row := make([]Cell, columns)
		for c := range row {
			row[c] = EmptyCell(it.defaultAttrs)
		}
		if r < len(it.buffer) {
			n := columns
			if n > len(it.buffer[r]) {
				n = len(it.buffer[r])
			}
			copy(row[:n], it.buffer[r][:n])
		}
		newBuffer[r] = row
		if r < len(it.lineAttrs) {
			newAttrs[r] = it.lineAttrs[r]
		}
	}
	it.buffer = newBuffer
	it.lineAttrs = newAttrs
	it.rows, it.columns = rows, columns
	if it.cursorRow >= rows {
		it.cursorRow = rows - 1
	}
	if it.cursorColumn >= columns {
		it.cursorColumn = columns - 1
	}
	it.scrollTop = 0
	it.scrollBottom = rows - 1
	it.resetTabStops()
	return TerminalUpdate{Kind: UpdateResize, Rows: rows, Columns: columns}
}
