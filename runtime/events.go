package runtime

import "github.com/vtcore/vtcore"

// HostEventKind discriminates the HostEvent tagged union DispatchEvent
// consumes (spec §4.6, "dispatchEvent(event)").
type HostEventKind uint8

const (
	HostKey HostEventKind = iota
	HostText
	HostCursorMotion
	HostCursorSet
	HostSelectionSet
	HostSelectionUpdate
	HostSelectionClear
	HostSelectionReplace
	HostPointer
	HostWheel
	HostFocus
	HostBlur
	HostPaste
	HostReset
	HostParserDispatch
	HostParserBatch
	HostRendererConfigure
	HostProfileUpdate
)

// CursorMotion names a host-driven cursor navigation gesture (spec §4.6).
type CursorMotion uint8

const (
	MotionLeft CursorMotion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionWordLeft
	MotionWordRight
)

// KeyEvent is one keypress, named the way the teacher's cli/input.go
// direct-key-handler integration names keys ("Up", "C-Left", "M-a", "^A"),
// generalized into explicit modifier fields instead of string concatenation.
type KeyEvent struct {
	Name  string // base key name: a single rune, or "Up"/"Down"/"F1".../"Enter" etc.
	Ctrl  bool
	Alt   bool
	Shift bool
}

// PointerButton identifies which button a pointer event concerns (spec
// §4.6, "pointer").
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerAction distinguishes press/release/move (spec §4.6).
type PointerAction uint8

const (
	PointerPress PointerAction = iota
	PointerRelease
	PointerMove
)

// HostEvent is the tagged value passed to Facade.DispatchEvent. Only the
// fields relevant to Kind are populated.
type HostEvent struct {
	Kind HostEventKind

	Key  KeyEvent
	Text string

	CursorMotion    CursorMotion
	Count           int
	ExtendSelection bool
	CursorSet       vtcore.Point

	SelectionPoint vtcore.Point
	SelectionKind  vtcore.SelectionKind

	PointerRow, PointerColumn int
	PointerButton             PointerButton
	PointerAction             PointerAction
	Modifiers                 KeyEvent // Ctrl/Alt/Shift only; Name unused

	WheelDelta int

	ParserEvent  vtcore.ParserEvent
	ParserEvents []vtcore.ParserEvent
}
