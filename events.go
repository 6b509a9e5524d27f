package vtcore

// ParserState is one of the VT500 state-machine states (spec §3, "Parser
// state"). It is private to the parser; only transitions are observable as
// events.
type ParserState int

const (
	StateGround ParserState = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateOSCString
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSIgnore
	StateDCSPassthrough
	StateSosPmApcString
)

func (s ParserState) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateCSIEntry:
		return "CsiEntry"
	case StateCSIParam:
		return "CsiParam"
	case StateCSIIntermediate:
		return "CsiIntermediate"
	case StateCSIIgnore:
		return "CsiIgnore"
	case StateOSCString:
		return "OscString"
	case StateDCSEntry:
		return "DcsEntry"
	case StateDCSParam:
		return "DcsParam"
	case StateDCSIntermediate:
		return "DcsIntermediate"
	case StateDCSIgnore:
		return "DcsIgnore"
	case StateDCSPassthrough:
		return "DcsPassthrough"
	case StateSosPmApcString:
		return "SosPmApcString"
	default:
		return "Unknown"
	}
}

// ParamSeparator records whether a CSI/DCS parameter was terminated by a
// colon (subparameter) or a semicolon (spec §3, "Parser context").
type ParamSeparator uint8

const (
	SepSemicolon ParamSeparator = iota
	SepColon
)

// StringKind distinguishes SOS/PM/APC strings (spec §3).
type StringKind uint8

const (
	KindSOS StringKind = iota
	KindPM
	KindAPC
)

func (k StringKind) String() string {
	switch k {
	case KindSOS:
		return "SOS"
	case KindPM:
		return "PM"
	case KindAPC:
		return "APC"
	default:
		return "?"
	}
}

// EventKind discriminates the ParserEvent tagged union (spec §3, "Parser
// event").
type EventKind uint8

const (
	EventPrint EventKind = iota
	EventExecute
	EventEscDispatch
	EventCSIDispatch
	EventOSCDispatch
	EventDCSHook
	EventDCSPut
	EventDCSUnhook
	EventSosPmApcDispatch
	EventIgnore
)

// ParserEvent is the tagged value the parser state machine emits through its
// EventSink. Only the fields relevant to Kind are populated.
type ParserEvent struct {
	Kind EventKind

	// EventPrint
	Bytes []byte

	// EventExecute
	Code rune

	// EventEscDispatch, EventCSIDispatch
	Final         byte
	Intermediates []byte

	// EventCSIDispatch
	Params         []int
	ParamSeps      []ParamSeparator
	PrivatePrefix  byte // 0 if absent, else one of '<','=','>','?'
	HasPrivate     bool

	// EventOSCDispatch: Bytes holds the raw "ident;payload" text.
	// EventDCSHook: Final/Params/Intermediates describe the hook.
	// EventDCSPut: Bytes holds one payload chunk. EventDCSUnhook carries
	// no payload; Bytes is nil.

	// EventSosPmApcDispatch
	StringKind StringKind
}

// EventSink receives parser events synchronously, one at a time, in the
// order they are produced by a single Write call. Sinks MUST NOT reenter
// Write on the same parser (spec §5).
type EventSink func(ParserEvent)
