package vtcore

import (
	"reflect"
	"testing"
)

func collect(p *Parser, input []byte) []ParserEvent {
	var events []ParserEvent
	p.Write(input, func(e ParserEvent) { events = append(events, e) })
	return events
}

func newTestParser() *Parser {
	opts, _ := ResolveCapabilities(CapabilityRequest{Spec: SpecVT220})
	return NewParser(opts)
}

func TestParserPrintRun(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("hello"))
	if len(events) != 1 || events[0].Kind != EventPrint || string(events[0].Bytes) != "hello" {
		t.Fatalf("got %+v", events)
	}
}

func TestParserExecuteInterruptsPrint(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("ab\ncd"))
	want := []EventKind{EventPrint, EventExecute, EventPrint}
	if len(events) != len(want) {
		t.Fatalf("got %d events: %+v", len(events), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Fatalf("event %d: got %v want %v", i, events[i].Kind, k)
		}
	}
	if string(events[0].Bytes) != "ab" || events[1].Code != '\n' || string(events[2].Bytes) != "cd" {
		t.Fatalf("got %+v", events)
	}
}

func TestParserCSIDispatchBasic(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[31m"))
	if len(events) != 1 || events[0].Kind != EventCSIDispatch {
		t.Fatalf("got %+v", events)
	}
	ev := events[0]
	if ev.Final != 'm' || !reflect.DeepEqual(ev.Params, []int{31}) {
		t.Fatalf("got %+v", ev)
	}
}

func TestParserCSIMultiParam(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[1;31;48m"))
	ev := events[0]
	if !reflect.DeepEqual(ev.Params, []int{1, 31, 48}) {
		t.Fatalf("got %+v", ev.Params)
	}
}

func TestParserCSIDefaultParam(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[H"))
	ev := events[0]
	if !reflect.DeepEqual(ev.Params, []int{0}) {
		t.Fatalf("empty CSI should default to [0], got %+v", ev.Params)
	}
}

func TestParserCSIPrivatePrefix(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[?1049h"))
	ev := events[0]
	if !ev.HasPrivate || ev.PrivatePrefix != '?' || ev.Final != 'h' {
		t.Fatalf("got %+v", ev)
	}
	if !reflect.DeepEqual(ev.Params, []int{1049}) {
		t.Fatalf("got %+v", ev.Params)
	}
}

func TestParserCSIIntermediate(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[0 q"))
	ev := events[0]
	if ev.Final != 'q' || !reflect.DeepEqual(ev.Intermediates, []byte{' '}) {
		t.Fatalf("got %+v", ev)
	}
}

func TestParserCSIOverflowParamsGoesIgnore(t *testing.T) {
	p := newTestParser()
	// 20 empty params exceeds MaxCSIParams(16); should be silently ignored.
	seq := "\x1b[" + ";;;;;;;;;;;;;;;;;;;" + "m"
	events := collect(p, []byte(seq))
	if len(events) != 0 {
		t.Fatalf("expected no dispatch for overflowed CSI, got %+v", events)
	}
	if p.State() != StateGround {
		t.Fatalf("parser should return to Ground after CsiIgnore final byte, got %v", p.State())
	}
}

func TestParserCSICancelByCAN(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[31\x18m"))
	if len(events) != 1 || events[0].Kind != EventPrint || string(events[0].Bytes) != "m" {
		t.Fatalf("CAN should cancel CSI and resume Ground printing 'm', got %+v", events)
	}
}

func TestParserCSIEscRestartsEscape(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b[31\x1bc"))
	if len(events) != 1 || events[0].Kind != EventEscDispatch || events[0].Final != 'c' {
		t.Fatalf("ESC inside CSI should abandon it and start a new escape sequence, got %+v", events)
	}
}

func TestParserOSCDispatch(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b]0;title\x07"))
	if len(events) != 1 || events[0].Kind != EventOSCDispatch || string(events[0].Bytes) != "0;title" {
		t.Fatalf("got %+v", events)
	}
}

func TestParserOSCTerminatedByST(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b]0;title\x1b\\"))
	if len(events) != 1 || events[0].Kind != EventOSCDispatch || string(events[0].Bytes) != "0;title" {
		t.Fatalf("ESC \\ should terminate OSC as ST, got %+v", events)
	}
	if p.State() != StateGround {
		t.Fatalf("expected Ground after ST, got %v", p.State())
	}
}

func TestParserOSCTerminatedBy8BitST(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b]0;title\x9c"))
	if len(events) != 1 || events[0].Kind != EventOSCDispatch {
		t.Fatalf("got %+v", events)
	}
}

func TestParserOSCAbortedEscNotBackslash(t *testing.T) {
	p := newTestParser()
	// ESC followed by a non-backslash byte aborts the OSC string (no
	// dispatch); the ESC and that byte then form a new escape sequence.
	events := collect(p, []byte("\x1b]0;title\x1bc"))
	if len(events) != 1 || events[0].Kind != EventEscDispatch || events[0].Final != 'c' {
		t.Fatalf("got %+v", events)
	}
}

func TestParserDCSRoundTrip(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1bP1$rpayload\x1b\\"))
	if len(events) != 3 {
		t.Fatalf("expected Hook/Put/Unhook, got %+v", events)
	}
	if events[0].Kind != EventDCSHook || events[0].Final != 'r' {
		t.Fatalf("got hook %+v", events[0])
	}
	if events[1].Kind != EventDCSPut || string(events[1].Bytes) != "payload" {
		t.Fatalf("got put %+v", events[1])
	}
	if events[2].Kind != EventDCSUnhook {
		t.Fatalf("got %+v", events[2])
	}
}

func TestParserDCSCancelSuppressesUnhook(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1bP1$rpayload\x18"))
	if len(events) != 2 {
		t.Fatalf("expected Hook/Put only, got %+v", events)
	}
	if events[1].Kind != EventDCSPut {
		t.Fatalf("got %+v", events[1])
	}
	for _, e := range events {
		if e.Kind == EventDCSUnhook {
			t.Fatalf("CAN must suppress DcsUnhook, got %+v", events)
		}
	}
}

func TestParserSosPmApcDispatch(t *testing.T) {
	p := newTestParser()
	events := collect(p, []byte("\x1b^payload\x1b\\"))
	if len(events) != 1 || events[0].Kind != EventSosPmApcDispatch || events[0].StringKind != KindPM {
		t.Fatalf("got %+v", events)
	}
	if string(events[0].Bytes) != "payload" {
		t.Fatalf("got %+v", events[0])
	}
}

func TestParserStringOverflowCancelsSilently(t *testing.T) {
	opts, _ := ResolveCapabilities(CapabilityRequest{Spec: SpecVT220})
	opts.StringLimits.OSC = 4
	p := NewParser(opts)
	events := collect(p, []byte("\x1b]0;abcdefgh\x07"))
	if len(events) != 0 {
		t.Fatalf("overflowed OSC should dispatch nothing, got %+v", events)
	}
}

// TestParserChunkInvariance implements the "writes are chunk-invariant"
// property: splitting a byte stream across multiple Write calls at any
// boundary produces the same events as one call, once adjacent Print
// events are coalesced (a Write call always flushes its trailing Print
// run, which a single call would not have split).
func TestParserChunkInvariance(t *testing.T) {
	input := []byte("hi\x1b[1;31mbye\x1b]0;t\x07done\x1bPq1\x1b\\tail")

	whole := newTestParser()
	wantEvents := collect(whole, input)
	want := coalescePrints(wantEvents)

	for split := 1; split < len(input); split++ {
		p := newTestParser()
		var events []ParserEvent
		sink := func(e ParserEvent) { events = append(events, e) }
		p.Write(input[:split], sink)
		p.Write(input[split:], sink)
		got := coalescePrints(events)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("split at %d: got %+v, want %+v", split, got, want)
		}
	}
}

func coalescePrints(events []ParserEvent) []ParserEvent {
	var out []ParserEvent
	for _, e := range events {
		if e.Kind == EventPrint && len(out) > 0 && out[len(out)-1].Kind == EventPrint {
			out[len(out)-1].Bytes = append(out[len(out)-1].Bytes, e.Bytes...)
			continue
		}
		out = append(out, e)
	}
	return out
}

func TestParserResetClearsState(t *testing.T) {
	p := newTestParser()
	p.Write([]byte("\x1b[31"), func(ParserEvent) {})
	if p.State() == StateGround {
		t.Fatalf("expected non-Ground mid-sequence state")
	}
	p.Reset()
	if p.State() != StateGround {
		t.Fatalf("Reset should return to Ground")
	}
	events := collect(p, []byte("m"))
	if len(events) != 1 || events[0].Kind != EventPrint {
		t.Fatalf("expected fresh Print after reset, got %+v", events)
	}
}

// S5: a C1 CSI introducer (0x9B) under escaped handling behaves exactly
// like ESC '[', so it still enters CSI and the following 'A' dispatches.
func TestParserC1EscapedModeEntersCSI(t *testing.T) {
	opts, _ := ResolveCapabilities(CapabilityRequest{Spec: SpecVT220})
	opts.AcceptEightBitControls = false
	opts.C1Handling = C1HandlingEscaped
	p := NewParser(opts)

	events := collect(p, []byte{0x9B, 'A'})
	if len(events) != 1 || events[0].Kind != EventCSIDispatch {
		t.Fatalf("got %+v", events)
	}
	ev := events[0]
	if ev.Final != 'A' || !reflect.DeepEqual(ev.Params, []int{0}) {
		t.Fatalf("got %+v", ev)
	}
}

// S6: a DCS payload exceeding the configured cap is truncated to that cap,
// no DcsUnhook fires, and the parser returns to Ground.
func TestParserDCSOverflowCap(t *testing.T) {
	opts, _ := ResolveCapabilities(CapabilityRequest{Spec: SpecVT220})
	opts.StringLimits.DCS = 8
	opts.DCSFlushThreshold = 4
	p := NewParser(opts)

	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = 'X'
	}
	input := append([]byte{0x1b, 'P', 'q'}, payload...)
	input = append(input, 0x1b, '\\')

	events := collect(p, input)

	var total int
	for _, e := range events {
		if e.Kind == EventDCSUnhook {
			t.Fatalf("expected no DcsUnhook, got %+v", events)
		}
		if e.Kind == EventDCSPut {
			total += len(e.Bytes)
		}
	}
	if total != opts.StringLimits.DCS {
		t.Fatalf("total DcsPut bytes = %d, want %d", total, opts.StringLimits.DCS)
	}
	if p.State() != StateGround {
		t.Fatalf("state = %v, want Ground", p.State())
	}
}
