package vtcore

import "sync"

// Interpreter applies parser events to a mutable terminal grid and emits
// ordered TerminalUpdates (spec §4.5). It is grounded file-for-file on the
// teacher's buffer.go + buffer_cursor.go + buffer_scroll.go + buffer_edit.go
// + buffer_selection.go + buffer_output.go family, generalized to consume
// ParserEvents instead of being called directly by the parser, and to
// return []TerminalUpdate instead of mutating a renderer-held buffer in
// place.
type Interpreter struct {
	// mu guards a live Snapshot() call against a concurrent HandleEvent
	// (spec §5); mutation itself is never concurrent, mirroring the
	// teacher's sync.Mutex use throughout buffer.go.
	mu sync.Mutex

	features TerminalFeatures

	rows, columns int
	cursorRow     int
	cursorColumn  int

	buffer    [][]Cell
	lineAttrs []LineAttr

	defaultAttrs Attributes
	activeAttrs  Attributes

	tabStops map[int]bool

	autoWrap      bool
	originMode    bool
	cursorVisible bool
	reverseVideo  bool
	insertMode    bool
	protectMode   bool

	scrollTop    int
	scrollBottom int

	g       [4]Charset
	glIndex int
	grIndex int

	singleShift int // -1 = none, else 2 (SS2) or 3 (SS3)

	savedCursorRow    int
	savedCursorColumn int
	savedAttrs        Attributes
	savedOriginMode   bool

	title        string
	clipboard    ClipboardEntry
	lastSosPmApc string

	selection *Selection

	c1Transmission C1Transmission

	printerControllerMode bool
	autoPrintMode         bool
	printer               PrinterController

	answerback string

	keypadApplication     bool
	cursorKeysApplication bool
	bracketedPaste        bool
	focusReporting        bool

	pointerMode     PointerTrackingMode
	pointerEncoding PointerEncoding

	utf8 utf8Decoder

	scrollback    [][]Cell
	maxScrollback int

	cursorStyle int

	dcsActive        bool
	dcsFinal         byte
	dcsParams        []int
	dcsIntermediates []byte
	dcsPayload       []byte
}

// NewInterpreter builds an Interpreter initialized from resolved
// capabilities (spec §3, "Lifecycle": "All state is constructed from
// resolved capabilities").
func NewInterpreter(features TerminalFeatures) *Interpreter {
	it := &Interpreter{
		printer:       NoopPrinter{},
		maxScrollback: 2000,
	}
	it.features = features
	it.initFromFeatures()
	return it
}

// SetPrinter installs a printer controller, replacing the default no-op
// sink (spec §6).
func (it *Interpreter) SetPrinter(p PrinterController) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if p == nil {
		p = NoopPrinter{}
	}
	it.printer = p
}

func (it *Interpreter) initFromFeatures() {
	f := it.features
	it.rows = f.Rows
	it.columns = f.Columns
	if it.rows <= 0 {
		it.rows = 24
	}
	if it.columns <= 0 {
		it.columns = 80
	}
	it.cursorRow = 0
	it.cursorColumn = 0
	it.defaultAttrs = DefaultAttributes()
	it.activeAttrs = it.defaultAttrs
	it.autoWrap = f.AutoWrap
	it.originMode = false
	it.cursorVisible = true
	it.reverseVideo = false
	it.insertMode = false
	it.protectMode = false
	it.scrollTop = 0
	it.scrollBottom = it.rows - 1
	it.g = [4]Charset{CharsetUSASCII, CharsetUSASCII, CharsetUSASCII, CharsetUSASCII}
	it.glIndex = 0
	it.grIndex = 1
	it.singleShift = -1
	it.c1Transmission = f.C1TransmissionMode
	it.answerback = f.Answerback
	it.bracketedPaste = false
	it.pointerMode = PointerTrackingOff
	it.pointerEncoding = PointerEncodingDefault
	it.keypadApplication = false
	it.cursorKeysApplication = false
	it.focusReporting = false
	it.cursorStyle = 1
	it.selection = nil
	it.clipboard = ClipboardEntry{}
	it.title = ""
	it.lastSosPmApc = ""
	it.utf8 = utf8Decoder{}
	it.dcsActive = false
	it.dcsPayload = nil
	it.resetTabStops()
	it.resetBuffer()
}

func (it *Interpreter) resetTabStops() {
	it.tabStops = make(map[int]bool)
	for c := 8; c < it.columns; c += 8 {
		it.tabStops[c] = true
	}
}

func (it *Interpreter) resetBuffer() {
	it.buffer = make([][]Cell, it.rows)
	it.lineAttrs = make([]LineAttr, it.rows)
	for r := range it.buffer {
		it.buffer[r] = it.newRow()
	}
}

func (it *Interpreter) newRow() []Cell {
	row := make([]Cell, it.columns)
	for c := range row {
		row[c] = EmptyCell(it.defaultAttrs)
	}
	return row
}

// Reset re-initializes the interpreter to capability defaults, dropping
// partial DCS/UTF-8 state (spec §4.5, "reset()").
func (it *Interpreter) Reset() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.scrollback = nil
	it.initFromFeatures()
}

// Snapshot is a read-only view of terminal state for renderers (spec §4.5,
// "snapshot"). Buffer and LineAttrs are copies; mutating them does not affect
// the interpreter.
type Snapshot struct {
	Rows, Columns int
	Cursor        Point
	CursorVisible bool
	Buffer        [][]Cell
	LineAttrs     []LineAttr
	ActiveAttrs   Attributes
	ScrollTop     int
	ScrollBottom  int
	OriginMode    bool
	AutoWrap      bool
	ReverseVideo  bool
	Title         string
	Selection     *Selection
	C1Transmiss   C1Transmission
}

// Snapshot returns a live, read-only copy of terminal state (spec §4.5).
func (it *Interpreter) Snapshot() Snapshot {
	it.mu.Lock()
	defer it.mu.Unlock()
	buf := make([][]Cell, len(it.buffer))
	for i, row := range it.buffer {
		buf[i] = append([]Cell(nil), row...)
	}
	var sel *Selection
	if it.selection != nil {
		s := *it.selection
		sel = &s
	}
	return Snapshot{
		Rows:          it.rows,
		Columns:       it.columns,
		Cursor:        Point{Row: it.cursorRow, Column: it.cursorColumn},
		CursorVisible: it.cursorVisible,
		Buffer:        buf,
		LineAttrs:     append([]LineAttr(nil), it.lineAttrs...),
		ActiveAttrs:   it.activeAttrs,
		ScrollTop:     it.scrollTop,
		ScrollBottom:  it.scrollBottom,
		OriginMode:    it.originMode,
		AutoWrap:      it.autoWrap,
		ReverseVideo:  it.reverseVideo,
		Title:         it.title,
		Selection:     sel,
		C1Transmiss:   it.c1Transmission,
	}
}

// HandleEvents applies a sequence of parser events, in order, returning
// their combined updates (spec §4.5).
func (it *Interpreter) HandleEvents(events []ParserEvent) []TerminalUpdate {
	var out []TerminalUpdate
	for _, e := range events {
		out = append(out, it.HandleEvent(e)...)
	}
	return out
}

// HandleEvent applies one parser event and returns the ordered updates it
// produced (spec §4.5).
func (it *Interpreter) HandleEvent(e ParserEvent) []TerminalUpdate {
	it.mu.Lock()
	defer it.mu.Unlock()

	switch e.Kind {
	case EventPrint:
		return it.handlePrint(e.Bytes)
	case EventExecute:
		return it.handleExecute(e.Code)
	case EventEscDispatch:
		return it.handleEscDispatch(e.Final, e.Intermediates)
	case EventCSIDispatch:
		return it.handleCSIDispatch(e)
	case EventOSCDispatch:
		return it.handleOSCDispatch(e.Bytes)
	case EventDCSHook:
		return it.handleDCSHook(e)
	case EventDCSPut:
		return it.handleDCSPut(e.Bytes)
	case EventDCSUnhook:
		return it.handleDCSUnhook()
	case EventSosPmApcDispatch:
		return it.handleSosPmApc(e.StringKind, e.Bytes)
	case EventIgnore:
		return nil
	}
	return nil
}

func cellsUpdate(cells []CellUpdate) TerminalUpdate {
	return TerminalUpdate{Kind: UpdateCells, Cells: cells}
}

func (it *Interpreter) cursorUpdate() TerminalUpdate {
	return TerminalUpdate{Kind: UpdateCursor, Cursor: Point{Row: it.cursorRow, Column: it.cursorColumn}}
}

func (it *Interpreter) bellUpdate() TerminalUpdate {
	return TerminalUpdate{Kind: UpdateBell}
}
