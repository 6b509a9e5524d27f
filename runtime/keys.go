package runtime

// Key translation, grounded on the teacher's cli/input.go keyToBytes/
// keyToBytesMap, generalized to consult cursor-keys/keypad application mode
// (spec §4.6, "translate to bytes using cursor-keys and keypad application
// modes; Ctrl+letter -> 0x01..0x1A; Alt prefixes ESC; Arrow keys -> CSI A..D
// or SS3 A..D depending on application mode").

var navKeyBytes = map[string][]byte{
	"Enter":     {13},
	"Tab":       {9},
	"Backspace": {127},
	"Escape":    {27},
	"Home":      {0x1b, '[', 'H'},
	"End":       {0x1b, '[', 'F'},
	"Insert":    {0x1b, '[', '2', '~'},
	"Delete":    {0x1b, '[', '3', '~'},
	"PageUp":    {0x1b, '[', '5', '~'},
	"PageDown":  {0x1b, '[', '6', '~'},
	"F1":        {0x1b, 'O', 'P'},
	"F2":        {0x1b, 'O', 'Q'},
	"F3":        {0x1b, 'O', 'R'},
	"F4":        {0x1b, 'O', 'S'},
	"F5":        {0x1b, '[', '1', '5', '~'},
	"F6":        {0x1b, '[', '1', '7', '~'},
	"F7":        {0x1b, '[', '1', '8', '~'},
	"F8":        {0x1b, '[', '1', '9', '~'},
	"F9":        {0x1b, '[', '2', '0', '~'},
	"F10":       {0x1b, '[', '2', '1', '~'},
	"F11":       {0x1b, '[', '2', '3', '~'},
	"F12":       {0x1b, '[', '2', '4', '~'},
}

var arrowFinal = map[string]byte{
	"Up": 'A', "Down": 'B', "Right": 'C', "Left": 'D',
}

// translateKey converts a KeyEvent to the bytes that should be sent to the
// child process.
func (f *Facade) translateKey(k KeyEvent) []byte {
	if final, ok := arrowFinal[k.Name]; ok {
		introducer := byte('[')
		if f.interp.CursorKeysApplicationMode() && !k.Ctrl && !k.Alt && !k.Shift {
			introducer = 'O'
		}
		out := []byte{0x1b, introducer, final}
		return withAlt(out, k.Alt && introducer == '[')
	}

	if b, ok := navKeyBytes[k.Name]; ok {
		return withAlt(b, k.Alt)
	}

	if len([]rune(k.Name)) == 1 {
		r := []rune(k.Name)[0]
		if k.Ctrl {
			if c := ctrlByte(r); c >= 0 {
				return withAlt([]byte{byte(c)}, k.Alt)
			}
		}
		return withAlt([]byte(string(r)), k.Alt)
	}

	return nil
}

func ctrlByte(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	case r == '@':
		return 0
	case r == '[':
		return 27
	case r == '\\':
		return 28
	case r == ']':
		return 29
	case r == '^':
		return 30
	case r == '_':
		return 31
	}
	return -1
}

func withAlt(b []byte, alt bool) []byte {
	if !alt {
		return b
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, 0x1b)
	return append(out, b...)
}
