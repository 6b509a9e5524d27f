package vtcore

import (
	"strings"
	"time"
)

// Selection lifecycle, grounded on the teacher's buffer_selection.go
// StartSelection/UpdateSelection/EndSelection/ClearSelection/GetSelectedText,
// adapted to the TerminalUpdate contract (the teacher mutated its Buffer's
// selection fields directly and let the renderer poll IsCellInSelection).

// SetSelection begins or replaces the active selection at the given anchor
// (spec §4.6, "pointer/selection events").
func (it *Interpreter) SetSelection(anchor Point, kind SelectionKind) TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	now := time.Now()
	it.selection = &Selection{
		Anchor: anchor, Focus: anchor,
		AnchorTime: now, FocusTime: now,
		Kind: kind, Status: SelectionDragging,
	}
	sel := *it.selection
	return TerminalUpdate{Kind: UpdateSelectionSet, Selection: &sel}
}

// UpdateSelection moves the selection's focus point, a no-op if there is no
// active selection or the focus is unchanged (spec §4.6, "diff-checked
// no-op").
func (it *Interpreter) UpdateSelection(focus Point) *TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.selection == nil || it.selection.Focus == focus {
		return nil
	}
	it.selection.Focus = focus
	it.selection.FocusTime = time.Now()
	sel := *it.selection
	u := TerminalUpdate{Kind: UpdateSelectionUpdate, Selection: &sel}
	return &u
}

// ClearSelection drops the active selection, a no-op when none is active
// (spec §4.6).
func (it *Interpreter) ClearSelection() *TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.selection == nil {
		return nil
	}
	it.selection = nil
	u := TerminalUpdate{Kind: UpdateSelectionClear}
	return &u
}

func (it *Interpreter) extendSelectionToCursorLocked() TerminalUpdate {
	focus := Point{Row: it.cursorRow, Column: it.cursorColumn}
	if it.selection == nil {
		now := time.Now()
		it.selection = &Selection{Anchor: focus, Focus: focus, AnchorTime: now, FocusTime: now, Status: SelectionDragging}
	} else {
		it.selection.Focus = focus
		it.selection.FocusTime = time.Now()
	}
	sel := *it.selection
	return TerminalUpdate{Kind: UpdateSelectionUpdate, Selection: &sel}
}

// SelectedText returns the selection's content, rows joined by newline with
// trailing blanks trimmed per row (spec §4.6, grounded on the teacher's
// GetSelectedText).
func (it *Interpreter) SelectedText() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.selection == nil {
		return ""
	}
	start, end := it.selection.bounds()
	var lines []string
	for r := start.Row; r <= end.Row && r < it.rows; r++ {
		from, to := 0, it.columns
		if it.selection.Kind == SelectionRectangular {
			from, to = start.Column, end.Column+1
		} else {
			if r == start.Row {
				from = start.Column
			}
			if r == end.Row {
				to = end.Column + 1
			}
		}
		lines = append(lines, it.rowText(r, from, to))
	}
	return strings.Join(lines, "\n")
}

func (it *Interpreter) rowText(row, from, to int) string {
	if to > it.columns {
		to = it.columns
	}
	if from < 0 {
		from = 0
	}
	var b strings.Builder
	for c := from; c < to; c++ {
		if ch := it.buffer[row][c].Char; ch != 0 {
			b.WriteRune(ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// EditSelectionOptions parameterizes EditSelection (spec §4.6).
type EditSelectionOptions struct {
	Replacement        string
	AttributesOverride *Attributes
}

// EditSelection replaces the active selection's bounded range with
// Replacement (split on "\n" for multi-line), leaving the cursor at the end
// of the insertion and the selection cleared; it falls back to inserting at
// the cursor when no selection is active (spec §4.6, "Selection semantics").
func (it *Interpreter) EditSelection(opts EditSelectionOptions) []TerminalUpdate {
	it.mu.Lock()
	if it.selection == nil {
		it.mu.Unlock()
		return it.printReplacement(opts.Replacement, opts.AttributesOverride)
	}

	start, end := it.selection.bounds()
	kind := it.selection.Kind
	var cells []CellUpdate
	for r := start.Row; r <= end.Row && r < it.rows; r++ {
		from, to := 0, it.columns
		if kind == SelectionRectangular {
			from, to = start.Column, end.Column+1
		} else {
			if r == start.Row {
				from = start.Column
			}
			if r == end.Row {
				to = end.Column + 1
			}
		}
		cells = append(cells, it.eraseRowRange(r, from, to)...)
	}
	it.cursorRow, it.cursorColumn = start.Row, start.Column
	it.selection = nil
	it.mu.Unlock()

	out := []TerminalUpdate{{Kind: UpdateSelectionClear}}
	if len(cells) > 0 {
		out = append(out, TerminalUpdate{Kind: UpdateCells, Cells: cells})
	}
	out = append(out, it.printReplacement(opts.Replacement, opts.AttributesOverride)...)
	return out
}

// printReplacement prints text through the normal print path, splitting on
// "\n" into separate lines (CR+LF) instead of feeding the control byte as a
// printable cell, optionally under a temporary attribute override.
func (it *Interpreter) printReplacement(text string, override *Attributes) []TerminalUpdate {
	var prev Attributes
	if override != nil {
		it.mu.Lock()
		prev = it.activeAttrs
		it.activeAttrs = *override
		it.mu.Unlock()
	}

	var out []TerminalUpdate
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			out = append(out, it.HandleEvent(ParserEvent{Kind: EventPrint, Bytes: []byte(line)})...)
		}
		if i < len(lines)-1 {
			out = append(out, it.HandleEvent(ParserEvent{Kind: EventExecute, Code: '\n'})...)
			out = append(out, it.HandleEvent(ParserEvent{Kind: EventExecute, Code: '\r'})...)
		}
	}

	if override != nil {
		it.mu.Lock()
		it.activeAttrs = prev
		it.mu.Unlock()
	}
	return out
}
