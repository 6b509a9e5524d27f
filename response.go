package vtcore

// csiIntroducer returns the CSI introducer bytes for the given transmission
// mode: the single byte 0x9B in 8-bit mode, or "ESC [" in 7-bit mode (spec
// §6, "External interfaces").
func csiIntroducer(mode C1Transmission) []byte {
	if mode == C1Transmission8Bit {
		return []byte{0x9B}
	}
	return []byte{0x1B, '['}
}

// dcsIntroducer/dcsTerminator return the DCS framing bytes for the given
// transmission mode (spec §6).
func dcsIntroducer(mode C1Transmission) []byte {
	if mode == C1Transmission8Bit {
		return []byte{0x90}
	}
	return []byte{0x1B, 'P'}
}

func dcsTerminator(mode C1Transmission) []byte {
	if mode == C1Transmission8Bit {
		return []byte{0x9C}
	}
	return []byte{0x1B, '\\'}
}

// buildDCSResponse frames a DCS reply payload with introducer and
// string-terminator bytes per c1Transmission.
func buildDCSResponse(mode C1Transmission, payload string) []byte {
	out := dcsIntroducer(mode)
	out = append(out, payload...)
	out = append(out, dcsTerminator(mode)...)
	return out
}

// buildResponse concatenates the CSI introducer (per c1Transmission) with
// the response payload and final byte. Grounded on the teacher's hand-rolled
// itoa (color.go) kept here for byte-level response formatting instead of
// pulling in fmt.Sprintf on this hot path.
func buildResponse(mode C1Transmission, payload string) []byte {
	out := csiIntroducer(mode)
	out = append(out, payload...)
	return out
}

// cursorPositionReport formats the "row;columnR" CPR response with 1-based
// coordinates (spec §6).
func cursorPositionReport(mode C1Transmission, row, column int) []byte {
	return buildResponse(mode, itoa(row+1)+";"+itoa(column+1)+"R")
}

// deviceStatusOK formats the "0n" DSR-OK response (spec §4.5, "n: device
// status; 5n -> 0n").
func deviceStatusOK(mode C1Transmission) []byte {
	return buildResponse(mode, "0n")
}

// primaryDA formats the primary Device Attributes response using the
// capability-provided payload (spec §4.5, "c (DA) ... emit response with
// the capability-provided byte sequence").
func primaryDA(mode C1Transmission, payload string) []byte {
	return buildResponse(mode, payload)
}

// secondaryDA formats the secondary Device Attributes (">c") response.
func secondaryDA(mode C1Transmission, payload string) []byte {
	return buildResponse(mode, payload)
}
