package vtcore

// CursorKeysApplicationMode reports whether DECCKM (mode 1) is set, used by
// a host to choose between CSI and SS3 arrow-key encodings (spec §4.6).
func (it *Interpreter) CursorKeysApplicationMode() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.cursorKeysApplication
}

// KeypadApplicationMode reports whether DECKPAM is active.
func (it *Interpreter) KeypadApplicationMode() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.keypadApplication
}

// BracketedPasteMode reports whether bracketed-paste mode (2004) is set.
func (it *Interpreter) BracketedPasteMode() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.bracketedPaste
}

// FocusReportingMode reports whether focus reporting (1004) is set.
func (it *Interpreter) FocusReportingMode() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.focusReporting
}

// PointerTracking reports the active pointer-tracking mode and encoding.
func (it *Interpreter) PointerTracking() (PointerTrackingMode, PointerEncoding) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.pointerMode, it.pointerEncoding
}

// C1TransmissionMode reports the active C1 transmission mode, for response
// byte framing outside the interpreter (spec §6).
func (it *Interpreter) C1TransmissionMode() C1Transmission {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.c1Transmission
}

// SetC1TransmissionMode updates the interpreter's C1 transmission mode,
// keeping it in sync with a parser whose own mode was changed via a DECSET
// the host routed elsewhere (spec §4.5).
func (it *Interpreter) SetC1TransmissionMode(mode C1Transmission) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.c1Transmission = mode
}
