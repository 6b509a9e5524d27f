package vtcore

// Print-cycle, C0 execution, and ESC dispatch, grounded on the teacher's
// buffer.go writeCharInternal (print/wrap) and buffer_cursor.go
// MoveCursor*/SaveCursor/RestoreCursor, generalized to charset translation,
// scroll regions, and the full VT500 C0/C1 semantics the teacher never
// implemented (it had no DECSC/DECRC, no HTS/tab stops, no IND/RI/NEL, no
// charset designation).

func (it *Interpreter) currentGCharset() Charset {
	idx := it.glIndex
	switch it.singleShift {
	case 2:
		idx = 2
	case 3:
		idx = 3
	}
	return it.g[idx]
}

func (it *Interpreter) handlePrint(b []byte) []TerminalUpdate {
	runes := it.utf8.Decode(b)
	if len(runes) == 0 {
		return nil
	}

	var out []TerminalUpdate
	var cells []CellUpdate
	flush := func() {
		if len(cells) > 0 {
			out = append(out, cellsUpdate(cells))
			cells = nil
		}
	}

	for _, dr := range runes {
		cs := it.currentGCharset()
		it.singleShift = -1
		r := translateCharset(cs, dr.R)
		w := dr.Width
		if w <= 0 {
			w = 1
		}

		if it.cursorColumn+w > it.columns {
			if it.autoWrap {
				flush()
				it.cursorColumn = 0
				if scroll := it.advanceLine(); scroll != nil {
					out = append(out, *scroll)
				}
			} else {
				it.cursorColumn = it.columns - w
				if it.cursorColumn < 0 {
					it.cursorColumn = 0
				}
			}
		}

		if it.insertMode {
			it.shiftRowRight(it.cursorRow, it.cursorColumn, w)
		}

		cell := Cell{Char: r, Attrs: it.activeAttrs, Protected: it.protectMode}
		it.buffer[it.cursorRow][it.cursorColumn] = cell
		cells = append(cells, CellUpdate{Row: it.cursorRow, Column: it.cursorColumn, Cell: cell})

		if w >= 2 && it.cursorColumn+1 < it.columns {
			blank := Cell{Char: 0, Attrs: it.activeAttrs}
			it.buffer[it.cursorRow][it.cursorColumn+1] = blank
			cells = append(cells, CellUpdate{Row: it.cursorRow, Column: it.cursorColumn + 1, Cell: blank})
		}

		it.cursorColumn += w
	}

	flush()
	out = append(out, it.cursorUpdate())
	return out
}

func (it *Interpreter) handleExecute(code rune) []TerminalUpdate {
	switch code {
	case 0x07: // BEL
		return []TerminalUpdate{it.bellUpdate()}
	case 0x08: // BS
		if it.cursorColumn > 0 {
			it.cursorColumn--
		}
		return []TerminalUpdate{it.cursorUpdate()}
	case 0x09: // HT
		it.cursorColumn = it.nextTabStop(it.cursorColumn)
		return []TerminalUpdate{it.cursorUpdate()}
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF: next line, back to column 0
		it.cursorColumn = 0
		var out []TerminalUpdate
		if scroll := it.advanceLine(); scroll != nil {
			out = append(out, *scroll)
		}
		return append(out, it.cursorUpdate())
	case 0x0D: // CR
		it.cursorColumn = 0
		return []TerminalUpdate{it.cursorUpdate()}
	case 0x0E: // SO
		it.glIndex = 1
		return nil
	case 0x0F: // SI
		it.glIndex = 0
		return nil
	case 0x05: // ENQ
		return []TerminalUpdate{{Kind: UpdateResponse, ResponseBytes: []byte(it.answerback)}}
	default:
		return nil
	}
}

func (it *Interpreter) nextTabStop(from int) int {
	for c := from + 1; c < it.columns; c++ {
		if it.tabStops[c] {
			return c
		}
	}
	return it.columns - 1
}

func (it *Interpreter) handleEscDispatch(final byte, intermediates []byte) []TerminalUpdate {
	if len(intermediates) == 1 {
		return it.handleCharsetDesignate(intermediates[0], final)
	}

	switch final {
	case '7': // DECSC
		it.savedCursorRow, it.savedCursorColumn = it.cursorRow, it.cursorColumn
		it.savedAttrs = it.activeAttrs
		it.savedOriginMode = it.originMode
		return nil
	case '8': // DECRC
		it.cursorRow, it.cursorColumn = it.savedCursorRow, it.savedCursorColumn
		it.activeAttrs = it.savedAttrs
		it.originMode = it.savedOriginMode
		it.clampCursor()
		return []TerminalUpdate{it.cursorUpdate()}
	case 'c': // RIS
		it.initFromFeatures()
		return []TerminalUpdate{
			{Kind: UpdateClear, ClearScope: ClearDisplay},
			it.cursorUpdate(),
		}
	case 'D': // IND
		if scroll := it.advanceLine(); scroll != nil {
			return []TerminalUpdate{*scroll, it.cursorUpdate()}
		}
		return []TerminalUpdate{it.cursorUpdate()}
	case 'E': // NEL
		it.cursorColumn = 0
		var out []TerminalUpdate
		if scroll := it.advanceLine(); scroll != nil {
			out = append(out, *scroll)
		}
		return append(out, it.cursorUpdate())
	case 'H': // HTS
		it.tabStops[it.cursorColumn] = true
		return nil
	case 'M': // RI
		if scroll := it.reverseIndex(); scroll != nil {
			return []TerminalUpdate{*scroll, it.cursorUpdate()}
		}
		return []TerminalUpdate{it.cursorUpdate()}
	case 'N': // SS2
		it.singleShift = 2
		return nil
	case 'O': // SS3
		it.singleShift = 3
		return nil
	case '=': // DECKPAM
		it.keypadApplication = true
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeKeypadApplication, ModeValue: true}}
	case '>': // DECKPNM
		it.keypadApplication = false
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeKeypadApplication, ModeValue: false}}
	default:
		return nil
	}
}

func (it *Interpreter) handleCharsetDesignate(introducer, final byte) []TerminalUpdate {
	var target int
	switch introducer {
	case '(':
		target = 0
	case ')':
		target = 1
	case '*':
		target = 2
	case '+':
		target = 3
	default:
		return nil
	}
	if cs, ok := charsetFromDesignator(final); ok {
		it.g[target] = cs
	}
	return nil
}

func (it *Interpreter) clampCursor() {
	minRow, maxRow := 0, it.rows-1
	if it.originMode {
		minRow, maxRow = it.scrollTop, it.scrollBottom
	}
	if it.cursorRow < minRow {
		it.cursorRow = minRow
	}
	if it.cursorRow > maxRow {
		it.cursorRow = maxRow
	}
	if it.cursorColumn < 0 {
		it.cursorColumn = 0
	}
	if it.cursorColumn > it.columns-1 {
		it.cursorColumn = it.columns - 1
	}
}
