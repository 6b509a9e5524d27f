// Package runtime combines a parser and an interpreter behind one façade
// for a host to drive (spec §4.6). Grounded on the teacher's cli/terminal.go
// Terminal struct (PTY + buffer + renderer ownership, mutex-guarded) and
// cli/input.go InputHandler (key-name → byte translation), stripped of PTY
// and renderer ownership — those belong to cmd/vtdemo — and generalized
// from the teacher's fixed VT100-ish key table to one that respects
// cursor-keys and keypad application modes.
package runtime

import (
	"strings"

	"go.uber.org/zap"

	"github.com/vtcore/vtcore"
)

// Facade is the runtime façade combining a vtcore.Parser and
// vtcore.Interpreter (spec §4.6).
type Facade struct {
	parser *vtcore.Parser
	interp *vtcore.Interpreter
	log    *zap.Logger
}

// New builds a Facade from a capability request, resolving parser options
// and terminal features together (spec §3, "Lifecycle"). rows/columns
// override the spec default grid size when positive.
func New(req vtcore.CapabilityRequest, rows, columns int, log *zap.Logger) *Facade {
	if log == nil {
		log = zap.NewNop()
	}
	opts, features := vtcore.ResolveCapabilities(req)
	if rows > 0 {
		features.Rows = rows
	}
	if columns > 0 {
		features.Columns = columns
	}
	f := &Facade{log: log}
	f.interp = vtcore.NewInterpreter(features)
	f.parser = vtcore.NewParser(opts)
	return f
}

// Write UTF-8 decodes s as parser input (spec §4.6, "write(string|bytes)").
func (f *Facade) Write(s string) []vtcore.TerminalUpdate {
	return f.WriteBytes([]byte(s))
}

// WriteBytes feeds raw bytes to the parser, returning the interpreter
// updates the resulting parser events produced. A c1-transmission update
// is forwarded to the parser itself (spec §4.5/§4.6: the 7-bit/8-bit
// introducer toggle the interpreter applies to CSI/DCS responses must also
// change how the parser recognizes C1 introducers in subsequent input).
func (f *Facade) WriteBytes(b []byte) []vtcore.TerminalUpdate {
	var out []vtcore.TerminalUpdate
	f.parser.Write(b, func(e vtcore.ParserEvent) {
		updates := f.interp.HandleEvent(e)
		for _, u := range updates {
			if u.Kind == vtcore.UpdateC1Transmission {
				f.parser.SetC1TransmissionMode(u.C1Transmission)
			}
		}
		out = append(out, updates...)
	})
	f.log.Debug("write", zap.Int("bytes", len(b)), zap.Int("updates", len(out)))
	return out
}

// DispatchParserEvent applies one already-parsed event directly to the
// interpreter, bypassing the parser (spec §4.6, "dispatchParserEvent").
func (f *Facade) DispatchParserEvent(e vtcore.ParserEvent) []vtcore.TerminalUpdate {
	return f.interp.HandleEvent(e)
}

// DispatchParserEvents applies a batch of already-parsed events in order.
func (f *Facade) DispatchParserEvents(events []vtcore.ParserEvent) []vtcore.TerminalUpdate {
	return f.interp.HandleEvents(events)
}

// Reset reinitializes both parser and interpreter (spec §4.6, "reset()").
func (f *Facade) Reset() []vtcore.TerminalUpdate {
	f.parser.Reset()
	f.interp.Reset()
	return []vtcore.TerminalUpdate{{Kind: vtcore.UpdateClear, ClearScope: vtcore.ClearDisplay}}
}

// Snapshot exposes the interpreter's read-only state for renderers.
func (f *Facade) Snapshot() vtcore.Snapshot {
	return f.interp.Snapshot()
}

// Interpreter exposes the underlying interpreter for direct cursor/
// selection API calls (interpreter_cursor.go, interpreter_selection.go).
func (f *Facade) Interpreter() *vtcore.Interpreter {
	return f.interp
}

// DispatchEvent translates one host event into the updates it produces
// (spec §4.6). Input-direction events (key, text, paste, pointer, wheel,
// focus, blur) surface their wire bytes as a single UpdateResponse, mirroring
// the spec's own framing for pointer/wheel reports ("emit as response
// bytes") rather than introducing a second return channel.
func (f *Facade) DispatchEvent(e HostEvent) []vtcore.TerminalUpdate {
	switch e.Kind {
	case HostKey:
		return f.responseOrNil(f.translateKey(e.Key))
	case HostText:
		return f.responseOrNil([]byte(e.Text))
	case HostCursorMotion:
		return f.dispatchCursorMotion(e)
	case HostCursorSet:
		return f.interp.MoveCursorTo(e.CursorSet.Row, e.CursorSet.Column, vtcore.CursorMoveOptions{})
	case HostSelectionSet:
		u := f.interp.SetSelection(e.SelectionPoint, e.SelectionKind)
		return []vtcore.TerminalUpdate{u}
	case HostSelectionUpdate:
		if u := f.interp.UpdateSelection(e.SelectionPoint); u != nil {
			return []vtcore.TerminalUpdate{*u}
		}
		return nil
	case HostSelectionClear:
		if u := f.interp.ClearSelection(); u != nil {
			return []vtcore.TerminalUpdate{*u}
		}
		return nil
	case HostSelectionReplace:
		return f.interp.EditSelection(vtcore.EditSelectionOptions{Replacement: e.Text})
	case HostPointer:
		return f.dispatchPointer(e)
	case HostWheel:
		return f.dispatchWheel(e)
	case HostFocus:
		return f.focusReport(true)
	case HostBlur:
		return f.focusReport(false)
	case HostPaste:
		return f.dispatchPaste(e.Text)
	case HostReset:
		return f.Reset()
	case HostParserDispatch:
		return f.DispatchParserEvent(e.ParserEvent)
	case HostParserBatch:
		return f.DispatchParserEvents(e.ParserEvents)
	case HostRendererConfigure, HostProfileUpdate:
		// Ignored by the core (spec §4.6): renderer/profile concerns belong
		// to the host, not the terminal model.
		return nil
	default:
		return nil
	}
}

func (f *Facade) responseOrNil(b []byte) []vtcore.TerminalUpdate {
	if len(b) == 0 {
		return nil
	}
	return []vtcore.TerminalUpdate{{Kind: vtcore.UpdateResponse, ResponseBytes: b}}
}

func (f *Facade) dispatchCursorMotion(e HostEvent) []vtcore.TerminalUpdate {
	opts := vtcore.CursorMoveOptions{ExtendSelection: e.ExtendSelection}
	switch e.CursorMotion {
	case MotionLeft:
		return f.interp.MoveCursorLeft(e.Count, opts)
	case MotionRight:
		return f.interp.MoveCursorRight(e.Count, opts)
	case MotionUp:
		return f.interp.MoveCursorUp(e.Count, opts)
	case MotionDown:
		return f.interp.MoveCursorDown(e.Count, opts)
	case MotionLineStart:
		return f.interp.MoveCursorLineStart(opts)
	case MotionLineEnd:
		return f.interp.MoveCursorLineEnd(opts)
	case MotionWordLeft:
		return f.interp.MoveCursorWordLeft(opts)
	case MotionWordRight:
		return f.interp.MoveCursorWordRight(opts)
	}
	return nil
}

func (f *Facade) focusReport(focused bool) []vtcore.TerminalUpdate {
	if !f.interp.FocusReportingMode() {
		return nil
	}
	if focused {
		return f.responseOrNil([]byte{0x1b, '[', 'I'})
	}
	return f.responseOrNil([]byte{0x1b, '[', 'O'})
}

func (f *Facade) dispatchPaste(payload string) []vtcore.TerminalUpdate {
	if !f.interp.BracketedPasteMode() {
		return f.responseOrNil([]byte(payload))
	}
	var b strings.Builder
	b.WriteString("\x1b[200~")
	b.WriteString(payload)
	b.WriteString("\x1b[201~")
	return f.responseOrNil([]byte(b.String()))
}
