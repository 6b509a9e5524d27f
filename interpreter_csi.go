package vtcore

// CSI dispatch, grounded on the teacher's parser.go executeCSI for the
// subset it implements (cursor motion, erase, SGR, insert/delete) and
// generalized/extended for everything the teacher left as a stub or never
// attempted: scroll regions (r), DSR/DA responses (n, c), DEC private modes
// (h/l), tab clear (g), and DECSCUSR/DECSCA ('q' with intermediates).

func paramDefault(params []int, idx, def int) int {
	if idx < len(params) && params[idx] != 0 {
		return params[idx]
	}
	return def
}

func paramRaw(params []int, idx, def int) int {
	if idx < len(params) {
		return params[idx]
	}
	return def
}

func (it *Interpreter) handleCSIDispatch(e ParserEvent) []TerminalUpdate {
	p := e.Params

	switch e.Final {
	case 'A':
		return it.cursorDelta(-paramDefault(p, 0, 1), 0)
	case 'B':
		return it.cursorDelta(paramDefault(p, 0, 1), 0)
	case 'C':
		return it.cursorDelta(0, paramDefault(p, 0, 1))
	case 'D':
		return it.cursorDelta(0, -paramDefault(p, 0, 1))
	case 'H', 'f':
		return it.cursorPosition(paramDefault(p, 0, 1)-1, paramDefault(p, 1, 1)-1)
	case 'G':
		it.cursorColumn = paramDefault(p, 0, 1) - 1
		it.clampCursor()
		return []TerminalUpdate{it.cursorUpdate()}
	case 'd':
		row := paramDefault(p, 0, 1) - 1
		if it.originMode {
			row += it.scrollTop
		}
		it.cursorRow = row
		it.clampCursor()
		return []TerminalUpdate{it.cursorUpdate()}
	case 'J':
		return it.eraseDisplay(paramRaw(p, 0, 0))
	case 'K':
		return it.eraseLine(paramRaw(p, 0, 0))
	case 'L':
		it.insertLines(paramDefault(p, 0, 1))
		return nil
	case 'M':
		it.deleteLines(paramDefault(p, 0, 1))
		return nil
	case 'P':
		it.deleteChars(paramDefault(p, 0, 1))
		return nil
	case '@':
		it.insertChars(paramDefault(p, 0, 1))
		return nil
	case 'X':
		cells := it.eraseChars(paramDefault(p, 0, 1))
		if len(cells) == 0 {
			return nil
		}
		return []TerminalUpdate{cellsUpdate(cells)}
	case 'S':
		it.scrollUp(paramDefault(p, 0, 1))
		return []TerminalUpdate{{Kind: UpdateScroll, ScrollAmount: paramDefault(p, 0, 1), ScrollTop: it.scrollTop, ScrollBottom: it.scrollBottom}}
	case 'T':
		it.scrollDown(paramDefault(p, 0, 1))
		return []TerminalUpdate{{Kind: UpdateScroll, ScrollAmount: -paramDefault(p, 0, 1), ScrollTop: it.scrollTop, ScrollBottom: it.scrollBottom}}
	case 'm':
		it.activeAttrs = it.activeAttrs.ApplySGR(p, e.ParamSeps)
		return []TerminalUpdate{{Kind: UpdateAttributes, Attrs: it.activeAttrs}}
	case 'r':
		u := it.setScrollRegion(paramDefault(p, 0, 1)-1, paramDefault(p, 1, it.rows)-1)
		return []TerminalUpdate{u, it.cursorUpdate()}
	case 'g':
		return it.tabClear(paramRaw(p, 0, 0))
	case 'h', 'l':
		return it.setModes(e, e.Final == 'h')
	case 'n':
		return it.deviceStatusReport(paramRaw(p, 0, 0))
	case 'c':
		return it.deviceAttributes(e)
	case 's':
		if !e.HasPrivate {
			it.savedCursorRow, it.savedCursorColumn = it.cursorRow, it.cursorColumn
		}
		return nil
	case 'u':
		if !e.HasPrivate {
			it.cursorRow, it.cursorColumn = it.savedCursorRow, it.savedCursorColumn
			it.clampCursor()
			return []TerminalUpdate{it.cursorUpdate()}
		}
		return nil
	case 'q':
		return it.handleDECPrivateQ(e)
	case 't':
		return it.windowManipulation(e)
	default:
		return nil
	}
}

func (it *Interpreter) cursorDelta(dRow, dCol int) []TerminalUpdate {
	it.cursorRow += dRow
	it.cursorColumn += dCol
	it.clampCursor()
	return []TerminalUpdate{it.cursorUpdate()}
}

func (it *Interpreter) cursorPosition(row, col int) []TerminalUpdate {
	if it.originMode {
		row += it.scrollTop
	}
	it.cursorRow, it.cursorColumn = row, col
	it.clampCursor()
	return []TerminalUpdate{it.cursorUpdate()}
}

func (it *Interpreter) eraseDisplay(mode int) []TerminalUpdate {
	var cells []CellUpdate
	switch mode {
	case 0:
		cells = append(cells, it.eraseRowRange(it.cursorRow, it.cursorColumn, it.columns)...)
		for r := it.cursorRow + 1; r < it.rows; r++ {
			cells = append(cells, it.eraseRowRange(r, 0, it.columns)...)
		}
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearDisplayAfterCursor, Cells: cells}}
	case 1:
		for r := 0; r < it.cursorRow; r++ {
			cells = append(cells, it.eraseRowRange(r, 0, it.columns)...)
		}
		cells = append(cells, it.eraseRowRange(it.cursorRow, 0, it.cursorColumn+1)...)
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearDisplayBeforeCursor, Cells: cells}}
	case 2, 3:
		for r := 0; r < it.rows; r++ {
			cells = append(cells, it.eraseRowRange(r, 0, it.columns)...)
		}
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearDisplay, Cells: cells}}
	}
	return nil
}

func (it *Interpreter) eraseLine(mode int) []TerminalUpdate {
	switch mode {
	case 0:
		cells := it.eraseRowRange(it.cursorRow, it.cursorColumn, it.columns)
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearLineAfterCursor, Cells: cells}}
	case 1:
		cells := it.eraseRowRange(it.cursorRow, 0, it.cursorColumn+1)
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearLineBeforeCursor, Cells: cells}}
	case 2:
		cells := it.eraseRowRange(it.cursorRow, 0, it.columns)
		return []TerminalUpdate{{Kind: UpdateClear, ClearScope: ClearLine, Cells: cells}}
	}
	return nil
}

func (it *Interpreter) eraseRowRange(row, from, to int) []CellUpdate {
	if to > it.columns {
		to = it.columns
	}
	var cells []CellUpdate
	for c := from; c < to; c++ {
		it.buffer[row][c] = EmptyCell(it.activeAttrs)
		cells = append(cells, CellUpdate{Row: row, Column: c, Cell: it.buffer[row][c]})
	}
	return cells
}

func (it *Interpreter) tabClear(mode int) []TerminalUpdate {
	switch mode {
	case 0:
		delete(it.tabStops, it.cursorColumn)
	case 3:
		it.tabStops = make(map[int]bool)
	}
	return nil
}

func (it *Interpreter) deviceStatusReport(code int) []TerminalUpdate {
	switch code {
	case 5:
		return []TerminalUpdate{{Kind: UpdateResponse, ResponseBytes: deviceStatusOK(it.c1Transmission)}}
	case 6:
		return []TerminalUpdate{{Kind: UpdateResponse, ResponseBytes: cursorPositionReport(it.c1Transmission, it.reportRow(), it.cursorColumn)}}
	}
	return nil
}

func (it *Interpreter) reportRow() int {
	if it.originMode {
		return it.cursorRow - it.scrollTop
	}
	return it.cursorRow
}

func (it *Interpreter) deviceAttributes(e ParserEvent) []TerminalUpdate {
	if e.HasPrivate && e.PrivatePrefix == '>' {
		return []TerminalUpdate{{Kind: UpdateResponse, ResponseBytes: secondaryDA(it.c1Transmission, it.features.SecondaryDA)}}
	}
	return []TerminalUpdate{{Kind: UpdateResponse, ResponseBytes: primaryDA(it.c1Transmission, it.features.PrimaryDA)}}
}

func (it *Interpreter) handleDECPrivateQ(e ParserEvent) []TerminalUpdate {
	if len(e.Intermediates) != 1 {
		return nil
	}
	switch e.Intermediates[0] {
	case ' ': // DECSCUSR
		style := paramRaw(e.Params, 0, 1)
		it.cursorStyle = style
		return []TerminalUpdate{{Kind: UpdateCursorStyle, CursorStyle: style}}
	case '"': // DECSCA
		mode := paramRaw(e.Params, 0, 0)
		it.protectMode = mode == 1
		return nil
	}
	return nil
}

// windowManipulation handles CSI Ps ; Ps ; Ps t (spec supplement: the
// teacher's executeWindowManipulation implemented a custom logical-resize
// extension; vtcore only recognizes the one sub-command that maps onto the
// spec's host-driven resize, per SPEC_FULL.md §4.5 "UpdateResize", and
// otherwise ignores the request as out of scope for a headless core).
func (it *Interpreter) windowManipulation(e ParserEvent) []TerminalUpdate {
	if paramRaw(e.Params, 0, 0) == 8 {
		rows := paramRaw(e.Params, 1, it.rows)
		cols := paramRaw(e.Params, 2, it.columns)
		return []TerminalUpdate{it.resize(rows, cols)}
	}
	return nil
}
