package vtcore

// DEC private (CSI ? Ps h/l) and ANSI (CSI Ps h/l) mode handling, grounded
// on the teacher's parser.go executeCSI 'h'/'l' case (which only recognized
// a handful of private modes and silently dropped the rest) extended to the
// full set spec §4.5 names: 1 (DECCKM), 3 (DECCOLM, resizes columns to
// 132/80 and clears the display), 5 (DECSCNM), 6 (DECOM), 7 (DECAWM), 25
// (DECTCEM), 66 (C1 transmission: h->7-bit, l->8-bit), 1000/1002/1003
// (pointer tracking), 1005/1006 (pointer encoding), 1004 (focus reporting),
// 2004 (bracketed paste), and ANSI mode 4 (IRM, insert mode).
func (it *Interpreter) setModes(e ParserEvent, enable bool) []TerminalUpdate {
	var out []TerminalUpdate
	for _, mode := range e.Params {
		if e.HasPrivate && e.PrivatePrefix == '?' {
			out = append(out, it.setDECPrivateMode(mode, enable)...)
		} else {
			out = append(out, it.setANSIMode(mode, enable)...)
		}
	}
	return out
}

func (it *Interpreter) setANSIMode(mode int, enable bool) []TerminalUpdate {
	switch mode {
	case 4: // IRM
		it.insertMode = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeInsert, ModeValue: enable}}
	}
	return nil
}

func (it *Interpreter) setDECPrivateMode(mode int, enable bool) []TerminalUpdate {
	switch mode {
	case 1: // DECCKM
		it.cursorKeysApplication = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeCursorKeysApplication, ModeValue: enable}}
	case 3: // DECCOLM
		columns := 80
		if enable {
			columns = 132
		}
		it.homeCursor()
		out := []TerminalUpdate{it.resize(it.rows, columns)}
		return append(out, it.eraseDisplay(2)...)
	case 5: // DECSCNM
		it.reverseVideo = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeReverseVideo, ModeValue: enable}}
	case 6: // DECOM
		it.originMode = enable
		it.homeCursor()
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeOrigin, ModeValue: enable}, it.cursorUpdate()}
	case 7: // DECAWM
		it.autoWrap = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeAutoWrap, ModeValue: enable}}
	case 25: // DECTCEM
		it.cursorVisible = enable
		return []TerminalUpdate{{Kind: UpdateCursorVisibility, CursorVisible: enable}}
	case 66: // C1 transmission: h->7-bit, l->8-bit (spec §4.5). Keypad
		// application mode is DECKPAM/DECKPNM (ESC =/>, interpreter_exec.go),
		// not a DEC private mode, so it has no case here.
		it.c1Transmission = C1Transmission8Bit
		if enable {
			it.c1Transmission = C1Transmission7Bit
		}
		return []TerminalUpdate{{Kind: UpdateC1Transmission, C1Transmission: it.c1Transmission}}
	case 1000:
		it.setPointerMode(enable, PointerTrackingNormal)
		return nil
	case 1002:
		it.setPointerMode(enable, PointerTrackingButton)
		return nil
	case 1003:
		it.setPointerMode(enable, PointerTrackingAny)
		return nil
	case 1004:
		it.focusReporting = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeFocusReporting, ModeValue: enable}}
	case 1005:
		if enable {
			it.pointerEncoding = PointerEncodingUTF8
		} else if it.pointerEncoding == PointerEncodingUTF8 {
			it.pointerEncoding = PointerEncodingDefault
		}
		return nil
	case 1006:
		if enable {
			it.pointerEncoding = PointerEncodingSGR
		} else if it.pointerEncoding == PointerEncodingSGR {
			it.pointerEncoding = PointerEncodingDefault
		}
		return nil
	case 2004:
		it.bracketedPaste = enable
		return []TerminalUpdate{{Kind: UpdateMode, Mode: ModeBracketedPaste, ModeValue: enable}}
	}
	return nil
}

func (it *Interpreter) setPointerMode(enable bool, mode PointerTrackingMode) {
	if enable {
		it.pointerMode = mode
	} else if it.pointerMode == mode {
		it.pointerMode = PointerTrackingOff
	}
}
