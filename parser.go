package vtcore

// Parser drives the VT500 state diagram (spec §4.2): it consumes bytes and
// emits typed ParserEvents through a sink. It has no internal suspension
// point — Write runs to completion synchronously (spec §5); reset() is the
// only way to abandon partial state.
type Parser struct {
	opts ParserOptions

	state ParserState

	intermediates []byte
	params        []int
	paramSeps     []ParamSeparator
	curParam      int
	curParamSet   bool
	privatePrefix byte
	hasPrivate    bool

	oscBuf      []byte
	oscOverflow bool

	dcsBuf       []byte
	dcsOverflow  bool
	dcsTotal     int // payload bytes accepted since DcsHook
	dcsFinal     byte
	dcsParams    []int
	dcsInterm    []byte
	dcsPrivate   byte
	dcsHasPriv   bool

	sosBuf      []byte
	sosOverflow bool
	sosKind     StringKind

	// escPending marks that an ESC was just seen inside a string state
	// (OSC/DCS-passthrough/SOS-PM-APC); only one string state is ever
	// active at a time, so a single flag suffices (spec §3, "parser
	// context").
	escPending bool

	printBuf []byte
}

// NewParser creates a parser with the given resolved options.
func NewParser(opts ParserOptions) *Parser {
	p := &Parser{opts: opts, state: StateGround}
	return p
}

func (p *Parser) resetBuffers() {
	p.intermediates = p.intermediates[:0]
	p.params = p.params[:0]
	p.paramSeps = p.paramSeps[:0]
	p.curParam = 0
	p.curParamSet = false
	p.privatePrefix = 0
	p.hasPrivate = false
	p.oscBuf = p.oscBuf[:0]
	p.oscOverflow = false
	p.dcsBuf = p.dcsBuf[:0]
	p.dcsOverflow = false
	p.dcsFinal = 0
	p.dcsParams = p.dcsParams[:0]
	p.dcsInterm = p.dcsInterm[:0]
	p.dcsPrivate = 0
	p.dcsHasPriv = false
	p.sosBuf = p.sosBuf[:0]
	p.sosOverflow = false
	p.escPending = false
}

// Reset returns the parser to Ground, dropping partial buffers but keeping
// configuration (spec §4.2).
func (p *Parser) Reset() {
	p.state = StateGround
	p.resetBuffers()
	p.printBuf = p.printBuf[:0]
}

// State returns the current parser state (for tests).
func (p *Parser) State() ParserState {
	return p.state
}

// SetC1TransmissionMode toggles whether 0x80-0x9F C1 introducers are
// honored in Ground (spec §4.2). It must be kept in sync with the
// interpreter's c1-transmission update.
func (p *Parser) SetC1TransmissionMode(mode C1Transmission) {
	p.opts.AcceptEightBitControls = mode == C1Transmission8Bit
}

// Write feeds bytes into the parser, emitting events through sink. A
// trailing Print run is flushed at the end of the call (spec §4.2, §5).
func (p *Parser) Write(input []byte, sink EventSink) {
	for _, b := range input {
		p.step(b, sink)
	}
	p.flushPrint(sink)
}

// WriteString is a convenience wrapper over Write for text input.
func (p *Parser) WriteString(s string, sink EventSink) {
	p.Write([]byte(s), sink)
}

func (p *Parser) flushPrint(sink EventSink) {
	if len(p.printBuf) == 0 {
		return
	}
	buf := make([]byte, len(p.printBuf))
	copy(buf, p.printBuf)
	p.printBuf = p.printBuf[:0]
	sink(ParserEvent{Kind: EventPrint, Bytes: buf})
}

func (p *Parser) step(b byte, sink EventSink) {
	class := Classify(b)

	switch p.state {
	case StateGround:
		p.stepGround(b, class, sink)
	case StateEscape:
		p.flushPrint(sink)
		p.stepEscape(b, class, sink)
	case StateEscapeIntermediate:
		p.stepEscapeIntermediate(b, class, sink)
	case StateCSIEntry, StateCSIParam, StateCSIIntermediate, StateCSIIgnore:
		p.flushPrint(sink)
		p.stepCSI(b, class, sink)
	case StateOSCString:
		p.flushPrint(sink)
		p.stepOSC(b, sink)
	case StateDCSEntry, StateDCSParam, StateDCSIntermediate, StateDCSIgnore, StateDCSPassthrough:
		p.flushPrint(sink)
		p.stepDCS(b, class, sink)
	case StateSosPmApcString:
		p.flushPrint(sink)
		p.stepSosPmApc(b, sink)
	}
}

// --- Ground ---

func (p *Parser) stepGround(b byte, class ClassSet, sink EventSink) {
	if class.Has(ClassDelete) {
		return // DEL is a no-op in Ground (spec §4.5)
	}
	if class.Has(ClassC0Control) {
		p.flushPrint(sink)
		p.handleC0(b, sink)
		return
	}
	if class.Has(ClassC1Control) {
		p.flushPrint(sink)
		p.handleC1(b, sink)
		return
	}
	if class.Has(ClassPrintable) {
		p.printBuf = append(p.printBuf, b)
		return
	}
}

func (p *Parser) handleC0(b byte, sink EventSink) {
	if b == 0x1B {
		p.state = StateEscape
		p.intermediates = p.intermediates[:0]
		return
	}
	sink(ParserEvent{Kind: EventExecute, Code: rune(b)})
}

// handleC1 applies the configured c1Handling policy to a Ground-state C1
// byte (spec §4.2).
func (p *Parser) handleC1(b byte, sink EventSink) {
	if !p.opts.AcceptEightBitControls {
		p.applyC1Policy(b, sink)
		return
	}
	switch b {
	case 0x9B:
		p.enterCSI()
	case 0x9D:
		p.enterOSC()
	case 0x90:
		p.enterDCS()
	case 0x98:
		p.enterSosPmApc(KindSOS)
	case 0x9E:
		p.enterSosPmApc(KindPM)
	case 0x9F:
		p.enterSosPmApc(KindAPC)
	default:
		p.applyC1Policy(b, sink)
	}
}

// applyC1Policy implements the c1Handling modes for a C1 byte that is not
// (or is not being treated as) a string/CSI/DCS introducer.
func (p *Parser) applyC1Policy(b byte, sink EventSink) {
	switch p.opts.C1Handling {
	case C1HandlingExecute:
		sink(ParserEvent{Kind: EventExecute, Code: rune(b)})
	case C1HandlingIgnore:
		// dropped
	case C1HandlingEscaped:
		final := b - 0x40
		if final >= 0x40 && final <= 0x5F {
			p.stepEscape(final, Classify(final), sink)
		}
	case C1HandlingSpec:
		p.applyC1Spec(b, sink)
	}
}

// applyC1Spec maps each C1 to its ECMA-48 action per spec §4.2: 0x9B=CSI,
// 0x9D=OSC, 0x90=DCS, 0x98/9E/9F=SOS/PM/APC, 0x84=IND, 0x88=HTS, 0x8D=RI,
// 0x8E/8F=SS2/SS3; every other C1 byte b -> ESC (b-0x40).
func (p *Parser) applyC1Spec(b byte, sink EventSink) {
	switch b {
	case 0x9B:
		p.enterCSI()
	case 0x9D:
		p.enterOSC()
	case 0x90:
		p.enterDCS()
	case 0x98:
		p.enterSosPmApc(KindSOS)
	case 0x9E:
		p.enterSosPmApc(KindPM)
	case 0x9F:
		p.enterSosPmApc(KindAPC)
	case 0x84:
		p.dispatchEscFinal('D', sink)
	case 0x88:
		p.dispatchEscFinal('H', sink)
	case 0x8D:
		p.dispatchEscFinal('M', sink)
	case 0x8E:
		p.dispatchEscFinal('N', sink)
	case 0x8F:
		p.dispatchEscFinal('O', sink)
	default:
		// Remaining C1 slots map onto ESC (b-0x40), i.e. '@'..'_'.
		p.dispatchEscFinal(b-0x40, sink)
	}
}

func (p *Parser) dispatchEscFinal(final byte, sink EventSink) {
	sink(ParserEvent{Kind: EventEscDispatch, Final: final})
}

func (p *Parser) enterCSI() {
	p.state = StateCSIEntry
	p.params = p.params[:0]
	p.paramSeps = p.paramSeps[:0]
	p.intermediates = p.intermediates[:0]
	p.curParam = 0
	p.curParamSet = false
	p.privatePrefix = 0
	p.hasPrivate = false
}

func (p *Parser) enterOSC() {
	p.state = StateOSCString
	p.oscBuf = p.oscBuf[:0]
	p.oscOverflow = false
	p.escPending = false
}

func (p *Parser) enterDCS() {
	p.state = StateDCSEntry
	p.dcsParams = p.dcsParams[:0]
	p.dcsInterm = p.dcsInterm[:0]
	p.dcsPrivate = 0
	p.dcsHasPriv = false
	p.dcsBuf = p.dcsBuf[:0]
	p.dcsOverflow = false
	p.dcsTotal = 0
	p.curParam = 0
	p.curParamSet = false
	p.escPending = false
}

func (p *Parser) enterSosPmApc(kind StringKind) {
	p.state = StateSosPmApcString
	p.sosKind = kind
	p.sosBuf = p.sosBuf[:0]
	p.sosOverflow = false
	p.escPending = false
}

// reenterEscape handles a non-'\\' byte that follows an ESC inside a string
// state: the string is abandoned without dispatch, and the ESC plus this
// byte are processed as a new escape sequence.
func (p *Parser) reenterEscape(b byte, sink EventSink) {
	p.state = StateEscape
	p.intermediates = p.intermediates[:0]
	p.stepEscape(b, Classify(b), sink)
}

// --- Escape ---

func (p *Parser) stepEscape(b byte, class ClassSet, sink EventSink) {
	switch {
	case b == '[':
		p.enterCSI()
	case b == ']':
		p.enterOSC()
	case b == 'P':
		p.enterDCS()
	case b == 'X':
		p.enterSosPmApc(KindSOS)
	case b == '^':
		p.enterSosPmApc(KindPM)
	case b == '_':
		p.enterSosPmApc(KindAPC)
	case class.Has(ClassIntermediate):
		p.intermediates = append(p.intermediates, b)
		p.state = StateEscapeIntermediate
	case b >= 0x30 && b <= 0x7E:
		interm := copyBytes(p.intermediates)
		sink(ParserEvent{Kind: EventEscDispatch, Final: b, Intermediates: interm})
		p.state = StateGround
	default:
		p.state = StateGround
	}
}

func (p *Parser) stepEscapeIntermediate(b byte, class ClassSet, sink EventSink) {
	switch {
	case class.Has(ClassIntermediate):
		if len(p.intermediates) < 4 {
			p.intermediates = append(p.intermediates, b)
		}
	case b >= 0x30 && b <= 0x7E:
		interm := copyBytes(p.intermediates)
		sink(ParserEvent{Kind: EventEscDispatch, Final: b, Intermediates: interm})
		p.state = StateGround
	default:
		p.state = StateGround
	}
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// --- CSI ---

func isPrivatePrefix(b byte) bool {
	return b == '<' || b == '=' || b == '>' || b == '?'
}

func (p *Parser) stepCSI(b byte, class ClassSet, sink EventSink) {
	// CAN/SUB cancel to Ground from any CSI substate; ESC returns to
	// Escape (spec §4.2, "Cancellation").
	if b == 0x18 || b == 0x1A {
		p.state = StateGround
		return
	}
	if b == 0x1B {
		p.state = StateEscape
		p.intermediates = p.intermediates[:0]
		return
	}

	if p.state == StateCSIIgnore {
		if class.Has(ClassFinal) {
			p.state = StateGround
		}
		return
	}

	if p.state == StateCSIEntry && !p.hasPrivate && isPrivatePrefix(b) {
		p.privatePrefix = b
		p.hasPrivate = true
		p.state = StateCSIParam
		return
	}
	if p.state == StateCSIEntry {
		p.state = StateCSIParam
	}

	switch {
	case b >= '0' && b <= '9':
		if p.state == StateCSIIntermediate {
			p.state = StateCSIIgnore
			return
		}
		p.curParam = p.curParam*10 + int(b-'0')
		p.curParamSet = true
		if p.curParam > p.opts.MaxCSIParamValue {
			p.state = StateCSIIgnore
		}
	case b == ':' || b == ';':
		if p.state == StateCSIIntermediate {
			p.state = StateCSIIgnore
			return
		}
		p.finalizeParam(b == ':')
		if len(p.params) > p.opts.MaxCSIParams {
			p.state = StateCSIIgnore
		}
	case class.Has(ClassIntermediate):
		p.finalizeParamIfPending()
		if len(p.intermediates) >= p.opts.MaxCSIIntermediates {
			p.state = StateCSIIgnore
			return
		}
		p.intermediates = append(p.intermediates, b)
		p.state = StateCSIIntermediate
	case isPrivatePrefix(b) && len(p.params) == 0 && !p.curParamSet:
		// A duplicate/misplaced private-prefix byte cancels to CsiIgnore.
		p.state = StateCSIIgnore
	case class.Has(ClassFinal):
		p.finalizeParamIfPending()
		p.dispatchCSI(b, sink)
		p.state = StateGround
	default:
		p.state = StateCSIIgnore
	}
}

func (p *Parser) finalizeParamIfPending() {
	if p.curParamSet || len(p.params) == 0 {
		p.finalizeParam(false)
	}
}

func (p *Parser) finalizeParam(colon bool) {
	p.params = append(p.params, p.curParam)
	sep := SepSemicolon
	if colon {
		sep = SepColon
	}
	p.paramSeps = append(p.paramSeps, sep)
	p.curParam = 0
	p.curParamSet = false
}

func (p *Parser) dispatchCSI(final byte, sink EventSink) {
	params := p.params
	seps := p.paramSeps
	if len(params) == 0 {
		// Parameter defaulting: present a single default 0 parameter
		// (spec §4.2, "Parameter defaulting").
		params = []int{0}
		seps = []ParamSeparator{SepSemicolon}
	}
	ev := ParserEvent{
		Kind:          EventCSIDispatch,
		Final:         final,
		Params:        append([]int(nil), params...),
		ParamSeps:     append([]ParamSeparator(nil), seps...),
		Intermediates: copyBytes(p.intermediates),
	}
	if p.hasPrivate {
		ev.HasPrivate = true
		ev.PrivatePrefix = p.privatePrefix
	}
	sink(ev)
}

// --- OSC ---

func (p *Parser) stepOSC(b byte, sink EventSink) {
	if p.escPending {
		p.escPending = false
		if b == '\\' {
			p.finishOSC(sink)
			p.state = StateGround
			return
		}
		p.reenterEscape(b, sink)
		return
	}
	switch b {
	case 0x07, 0x9C:
		p.finishOSC(sink)
		p.state = StateGround
	case 0x1B:
		p.escPending = true
	case 0x18, 0x1A:
		p.state = StateGround
	default:
		if !p.oscOverflow {
			if len(p.oscBuf) >= p.opts.StringLimits.OSC {
				p.oscOverflow = true
			} else {
				p.oscBuf = append(p.oscBuf, b)
			}
		}
	}
}

func (p *Parser) finishOSC(sink EventSink) {
	if p.oscOverflow {
		return
	}
	sink(ParserEvent{Kind: EventOSCDispatch, Bytes: copyBytes(p.oscBuf)})
}

// --- DCS ---

func (p *Parser) stepDCS(b byte, class ClassSet, sink EventSink) {
	if p.state == StateDCSPassthrough {
		p.stepDCSPassthrough(b, sink)
		return
	}

	if b == 0x18 || b == 0x1A {
		p.state = StateGround
		return
	}
	if b == 0x1B {
		p.state = StateEscape
		p.intermediates = p.intermediates[:0]
		return
	}

	if p.state == StateDCSIgnore {
		if class.Has(ClassFinal) {
			p.state = StateGround
		}
		return
	}

	if p.state == StateDCSEntry && !p.dcsHasPriv && isPrivatePrefix(b) {
		p.dcsPrivate = b
		p.dcsHasPriv = true
		p.state = StateDCSParam
		return
	}
	if p.state == StateDCSEntry {
		p.state = StateDCSParam
	}

	switch {
	case b >= '0' && b <= '9':
		if p.state == StateDCSIntermediate {
			p.state = StateDCSIgnore
			return
		}
		p.curParam = p.curParam*10 + int(b-'0')
		p.curParamSet = true
		if p.curParam > p.opts.MaxCSIParamValue {
			p.state = StateDCSIgnore
		}
	case b == ':' || b == ';':
		if p.state == StateDCSIntermediate {
			p.state = StateDCSIgnore
			return
		}
		p.finalizeDCSParam(b == ':')
		if len(p.dcsParams) > p.opts.MaxCSIParams {
			p.state = StateDCSIgnore
		}
	case class.Has(ClassIntermediate):
		p.finalizeDCSParamIfPending()
		if len(p.dcsInterm) >= p.opts.MaxCSIIntermediates {
			p.state = StateDCSIgnore
			return
		}
		p.dcsInterm = append(p.dcsInterm, b)
		p.state = StateDCSIntermediate
	case isPrivatePrefix(b) && len(p.dcsParams) == 0 && !p.curParamSet:
		p.state = StateDCSIgnore
	case class.Has(ClassFinal):
		p.finalizeDCSParamIfPending()
		p.dcsFinal = b
		p.hookDCS(sink)
		p.state = StateDCSPassthrough
	default:
		p.state = StateDCSIgnore
	}
}

func (p *Parser) finalizeDCSParamIfPending() {
	if p.curParamSet || len(p.dcsParams) == 0 {
		p.finalizeDCSParam(false)
	}
}

func (p *Parser) finalizeDCSParam(colon bool) {
	p.dcsParams = append(p.dcsParams, p.curParam)
	p.curParam = 0
	p.curParamSet = false
	_ = colon // DCS subparameter separators are not surfaced beyond CSI-style parsing
}

func (p *Parser) hookDCS(sink EventSink) {
	params := p.dcsParams
	if len(params) == 0 {
		params = []int{0}
	}
	ev := ParserEvent{
		Kind:          EventDCSHook,
		Final:         p.dcsFinal,
		Params:        append([]int(nil), params...),
		Intermediates: copyBytes(p.dcsInterm),
	}
	if p.dcsHasPriv {
		ev.HasPrivate = true
		ev.PrivatePrefix = p.dcsPrivate
	}
	sink(ev)
}

func (p *Parser) stepDCSPassthrough(b byte, sink EventSink) {
	if p.escPending {
		p.escPending = false
		if b == '\\' {
			p.finishDCSviaST(sink)
			return
		}
		p.reenterEscape(b, sink)
		return
	}
	switch b {
	case 0x18, 0x1A:
		// DCS CAN/SUB first flushes accumulated passthrough as a DcsPut
		// but does not emit DcsUnhook (spec §4.2, "Cancellation").
		p.flushDCSPut(sink)
		p.state = StateGround
	case 0x9C:
		p.finishDCSviaST(sink)
	case 0x1B:
		p.escPending = true
	default:
		if p.dcsOverflow {
			return
		}
		if p.dcsTotal >= p.opts.StringLimits.DCS {
			// Overflow: stop appending further bytes and suppress
			// DcsUnhook, but keep consuming input until ST (spec §4.2).
			p.flushDCSPut(sink)
			p.dcsOverflow = true
			return
		}
		p.dcsBuf = append(p.dcsBuf, b)
		p.dcsTotal++
		if len(p.dcsBuf) >= p.opts.DCSFlushThreshold {
			p.flushDCSPut(sink)
		}
	}
}

func (p *Parser) flushDCSPut(sink EventSink) {
	if len(p.dcsBuf) == 0 {
		return
	}
	buf := copyBytes(p.dcsBuf)
	p.dcsBuf = p.dcsBuf[:0]
	sink(ParserEvent{Kind: EventDCSPut, Bytes: buf})
}

func (p *Parser) finishDCSviaST(sink EventSink) {
	p.flushDCSPut(sink)
	if !p.dcsOverflow {
		sink(ParserEvent{Kind: EventDCSUnhook})
	}
	p.state = StateGround
}

// --- SOS/PM/APC ---

func (p *Parser) stepSosPmApc(b byte, sink EventSink) {
	if p.escPending {
		p.escPending = false
		if b == '\\' {
			p.finishSosPmApc(sink)
			p.state = StateGround
			return
		}
		p.reenterEscape(b, sink)
		return
	}
	switch b {
	case 0x9C:
		p.finishSosPmApc(sink)
		p.state = StateGround
	case 0x1B:
		p.escPending = true
	case 0x18, 0x1A:
		p.state = StateGround
	default:
		if !p.sosOverflow {
			if len(p.sosBuf) >= p.opts.StringLimits.SosPmApc {
				p.sosOverflow = true
			} else {
				p.sosBuf = append(p.sosBuf, b)
			}
		}
	}
}

func (p *Parser) finishSosPmApc(sink EventSink) {
	if p.sosOverflow {
		return
	}
	sink(ParserEvent{Kind: EventSosPmApcDispatch, StringKind: p.sosKind, Bytes: copyBytes(p.sosBuf)})
}
