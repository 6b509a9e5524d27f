package runtime

import (
	"strconv"

	"github.com/vtcore/vtcore"
)

// Pointer/wheel report encoding, grounded on the xterm mouse-protocol
// conventions spec §4.6 names directly ("encode per encoding (default <=223,
// utf8 multi-byte, sgr textual)"). The teacher has no pointer-tracking
// support at all (pty-backed terminal widget, no mouse protocol), so this is
// new code following the xterm wire format rather than adapted teacher code.

const pointerButtonMotionFlag = 32

func pointerButtonCode(btn PointerButton, action PointerAction, mods KeyEvent) int {
	code := 0
	switch btn {
	case ButtonLeft:
		code = 0
	case ButtonMiddle:
		code = 1
	case ButtonRight:
		code = 2
	case ButtonNone:
		code = 3
	}
	if action == PointerRelease && btn != ButtonNone {
		code = 3
	}
	if mods.Shift {
		code += 4
	}
	if mods.Alt {
		code += 8
	}
	if mods.Ctrl {
		code += 16
	}
	if action == PointerMove {
		code += pointerButtonMotionFlag
	}
	return code
}

func (f *Facade) dispatchPointer(e HostEvent) []vtcore.TerminalUpdate {
	mode, encoding := f.interp.PointerTracking()
	if mode == vtcore.PointerTrackingOff {
		return nil
	}
	if e.PointerAction == PointerMove {
		switch mode {
		case vtcore.PointerTrackingX10:
			return nil
		case vtcore.PointerTrackingButton:
			if e.PointerButton == ButtonNone {
				return nil
			}
		case vtcore.PointerTrackingNormal:
			if e.PointerButton == ButtonNone {
				return nil
			}
		}
	}
	code := pointerButtonCode(e.PointerButton, e.PointerAction, e.Modifiers)
	return f.responseOrNil(encodePointerReport(encoding, code, e.PointerColumn, e.PointerRow, e.PointerAction == PointerRelease))
}

func (f *Facade) dispatchWheel(e HostEvent) []vtcore.TerminalUpdate {
	mode, encoding := f.interp.PointerTracking()
	if mode == vtcore.PointerTrackingOff {
		return nil
	}
	code := 64
	if e.WheelDelta < 0 {
		code = 65
	}
	if e.Modifiers.Shift {
		code += 4
	}
	if e.Modifiers.Alt {
		code += 8
	}
	if e.Modifiers.Ctrl {
		code += 16
	}
	return f.responseOrNil(encodePointerReport(encoding, code, e.PointerColumn, e.PointerRow, false))
}

// encodePointerReport formats one mouse report for the given encoding.
// Coordinates are 0-based cell positions; release is only meaningful for
// SGR (which distinguishes 'M'/'m').
func encodePointerReport(encoding vtcore.PointerEncoding, code, col, row int, release bool) []byte {
	switch encoding {
	case vtcore.PointerEncodingSGR:
		final := byte('M')
		if release {
			final = 'm'
		}
		s := "\x1b[<" + strconv.Itoa(code) + ";" + strconv.Itoa(col+1) + ";" + strconv.Itoa(row+1) + string(final)
		return []byte(s)
	case vtcore.PointerEncodingUTF8:
		out := []byte{0x1b, '[', 'M'}
		out = appendPointerRune(out, code+32)
		out = appendPointerRune(out, col+33)
		out = appendPointerRune(out, row+33)
		return out
	default:
		out := []byte{0x1b, '[', 'M'}
		out = append(out, clampPointerByte(code+32), clampPointerByte(col+33), clampPointerByte(row+33))
		return out
	}
}

func clampPointerByte(v int) byte {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return byte(v)
}

func appendPointerRune(b []byte, v int) []byte {
	if v < 0x80 {
		return append(b, byte(v))
	}
	return append(b, []byte(string(rune(v)))...)
}
