package vtcore

import "testing"

func newTestInterpreter(t *testing.T) (*Parser, *Interpreter) {
	t.Helper()
	opts, features := ResolveCapabilities(CapabilityRequest{Spec: SpecVT220})
	return NewParser(opts), NewInterpreter(features)
}

func feed(p *Parser, it *Interpreter, input string) {
	p.Write([]byte(input), func(e ParserEvent) { it.HandleEvent(e) })
}

func cellChar(it *Interpreter, row, col int) rune {
	snap := it.Snapshot()
	return snap.Buffer[row][col].Char
}

// S1: printable text with CR/LF.
func TestScenarioPrintableCRLF(t *testing.T) {
	p, it := newTestInterpreter(t)
	feed(p, it, "hi\nthere\r!")

	for i, want := range "hi " {
		if got := cellChar(it, 0, i); want != ' ' && got != want {
			t.Fatalf("row0[%d] = %q, want %q", i, got, want)
		}
	}
	if got := cellChar(it, 1, 0); got != '!' {
		t.Fatalf("row1[0] = %q, want '!'", got)
	}
	want := "here"
	for i, r := range want {
		if got := cellChar(it, 1, 1+i); got != r {
			t.Fatalf("row1[%d] = %q, want %q", 1+i, got, r)
		}
	}
	snap := it.Snapshot()
	if snap.Cursor.Row != 1 || snap.Cursor.Column != 1 {
		t.Fatalf("cursor = %+v, want (1,1)", snap.Cursor)
	}
}

// S2: autowrap on 81 printable columns.
func TestScenarioAutowrap(t *testing.T) {
	p, it := newTestInterpreter(t)
	input := make([]byte, 81)
	for i := range input {
		input[i] = 'a'
	}
	feed(p, it, string(input))

	if got := cellChar(it, 0, 79); got != 'a' {
		t.Fatalf("row0[79] = %q, want 'a'", got)
	}
	if got := cellChar(it, 1, 0); got != 'a' {
		t.Fatalf("row1[0] = %q, want 'a'", got)
	}
	snap := it.Snapshot()
	if snap.Cursor.Row != 1 || snap.Cursor.Column != 1 {
		t.Fatalf("cursor = %+v, want (1,1)", snap.Cursor)
	}
}

// S3: CSI clear + cursor position.
func TestScenarioClearAndPosition(t *testing.T) {
	p, it := newTestInterpreter(t)
	feed(p, it, "seed\x1b[2J\x1b[10;10Hmark")

	if got := cellChar(it, 0, 0); got != ' ' {
		t.Fatalf("row0[0] = %q, want ' ' (cleared)", got)
	}
	want := "mark"
	for i, r := range want {
		if got := cellChar(it, 9, 9+i); got != r {
			t.Fatalf("row9[%d] = %q, want %q", 9+i, got, r)
		}
	}
	snap := it.Snapshot()
	if snap.Cursor.Row != 9 || snap.Cursor.Column != 13 {
		t.Fatalf("cursor = %+v, want (9,13)", snap.Cursor)
	}
}

// S4: SGR bold red, then reset restores default attributes.
func TestScenarioSGR(t *testing.T) {
	p, it := newTestInterpreter(t)
	feed(p, it, "\x1b[31;1mR\x1b[0m")

	snap := it.Snapshot()
	cell := snap.Buffer[0][0]
	if cell.Char != 'R' {
		t.Fatalf("cell(0,0).Char = %q, want 'R'", cell.Char)
	}
	if !cell.Attrs.Bold {
		t.Fatalf("cell(0,0).Attrs.Bold = false, want true")
	}
	if cell.Attrs.Foreground != ANSIColor(1) {
		t.Fatalf("cell(0,0).Attrs.Foreground = %+v, want ansi(1)", cell.Attrs.Foreground)
	}
	if snap.ActiveAttrs != it.defaultAttrs {
		t.Fatalf("active attrs after reset = %+v, want defaults %+v", snap.ActiveAttrs, it.defaultAttrs)
	}
}
