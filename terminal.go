package vtcore

import "time"

// LineAttr is a per-row rendering attribute (spec §3, "line-attributes per
// row").
type LineAttr uint8

const (
	LineAttrNormal LineAttr = iota
	LineAttrDoubleTop
	LineAttrDoubleBottom
	LineAttrDoubleWide
)

// Charset identifies one of the character sets a G-set can designate (spec
// §3, "charsets"; §4.5 escape-dispatch "designate G0-G3").
type Charset uint8

const (
	CharsetUSASCII Charset = iota
	CharsetDECSpecial
	CharsetUK
	CharsetNRCSDutch
	CharsetNRCSFinnish
	CharsetNRCSFrench
	CharsetNRCSFrenchCanadian
	CharsetNRCSGerman
	CharsetNRCSItalian
	CharsetNRCSNorwegianDanish
	CharsetNRCSPortuguese
	CharsetNRCSSpanish
	CharsetNRCSSwedish
	CharsetNRCSSwiss
)

// Point is a (row, column) grid coordinate (spec §3, selection anchor/focus).
type Point struct {
	Row    int
	Column int
}

// SelectionKind distinguishes a linear selection from a rectangular (block)
// one (spec §3).
type SelectionKind uint8

const (
	SelectionNormal SelectionKind = iota
	SelectionRectangular
)

// SelectionStatus tracks whether a selection is still being extended by a
// drag gesture (spec §3).
type SelectionStatus uint8

const (
	SelectionIdle SelectionStatus = iota
	SelectionDragging
)

// Selection is the active text-selection state (spec §3).
type Selection struct {
	Anchor     Point
	Focus      Point
	AnchorTime time.Time
	FocusTime  time.Time
	Kind       SelectionKind
	Status     SelectionStatus
}

// bounds returns the selection's (start, end) points ordered by (row,
// column), per spec §4.5 "Selection semantics".
func (s Selection) bounds() (Point, Point) {
	a, f := s.Anchor, s.Focus
	if pointLess(f, a) {
		return f, a
	}
	return a, f
}

func pointLess(a, b Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// ClipboardEntry is the selection target and base64 payload of the last OSC
// 52 clipboard write (spec §3).
type ClipboardEntry struct {
	Selection byte // e.g. 'c' (clipboard), 'p' (primary)
	Data      string
}

// PointerTrackingMode selects which pointer events are reported (spec §3).
type PointerTrackingMode uint8

const (
	PointerTrackingOff PointerTrackingMode = iota
	PointerTrackingX10
	PointerTrackingNormal
	PointerTrackingButton
	PointerTrackingAny
)

// PointerEncoding selects how pointer reports are encoded on the wire (spec
// §3, §4.6).
type PointerEncoding uint8

const (
	PointerEncodingDefault PointerEncoding = iota
	PointerEncodingUTF8
	PointerEncodingSGR
)

// UpdateKind discriminates the TerminalUpdate tagged union (spec §4.5,
// "Terminal update").
type UpdateKind uint8

const (
	UpdateCells UpdateKind = iota
	UpdateCursor
	UpdateClear
	UpdateScroll
	UpdateBell
	UpdateAttributes
	UpdateScrollRegion
	UpdateMode
	UpdateCursorVisibility
	UpdateOSC
	UpdateTitle
	UpdateClipboard
	UpdatePalette
	UpdateSelectionSet
	UpdateSelectionUpdate
	UpdateSelectionClear
	UpdateC1Transmission
	UpdateDCSStart
	UpdateDCSData
	UpdateDCSEnd
	UpdateSosPmApc
	UpdateResponse
	UpdateLineAttributes
	UpdateScrollback // supplement, see SPEC_FULL.md §4.5
	UpdateCursorStyle
	UpdateResize
)

// ClearScope selects what a clear update erased (spec §4.5).
type ClearScope uint8

const (
	ClearDisplay ClearScope = iota
	ClearDisplayAfterCursor
	ClearDisplayBeforeCursor
	ClearLine
	ClearLineAfterCursor
	ClearLineBeforeCursor
)

// ModeName identifies a boolean terminal mode reported by an UpdateMode
// (spec §4.5).
type ModeName uint8

const (
	ModeOrigin ModeName = iota
	ModeAutoWrap
	ModeReverseVideo
	ModeSmoothScroll
	ModeKeypadApplication
	ModeCursorKeysApplication
	ModeInsert
	ModeBracketedPaste
	ModeFocusReporting
)

// CellUpdate is one written cell in an UpdateCells payload.
type CellUpdate struct {
	Row, Column int
	Cell        Cell
}

// TerminalUpdate is the tagged value the interpreter returns for every
// event it applies (spec §4.5, "Terminal update"). Only the fields relevant
// to Kind are populated.
type TerminalUpdate struct {
	Kind UpdateKind

	Cells  []CellUpdate
	Cursor Point

	ClearScope ClearScope

	ScrollAmount int

	Attrs Attributes

	ScrollTop, ScrollBottom int

	Mode      ModeName
	ModeValue bool

	CursorVisible bool

	OSCIdent   string
	OSCPayload string

	Title string

	Clipboard ClipboardEntry

	PaletteIndex int
	PaletteColor Color

	Selection *Selection

	C1Transmission C1Transmission

	DCSFinal         byte
	DCSParams        []int
	DCSIntermediates []byte
	DCSData          string

	SosPmApcKind StringKind
	SosPmApcData string

	ResponseBytes []byte

	Row      int
	LineAttr LineAttr

	ScrollbackLine []Cell

	CursorStyle int

	Columns, Rows int
}
