package vtcore

import "strings"

// OSC dispatch, grounded on the teacher's parser.go OSC handling for title
// (0/2) and generalized to palette (4) and clipboard (52), which the
// teacher never implemented. Every OSC always emits the generic `osc`
// update; recognized identifiers additionally emit their specific update
// (spec §4.5, "Always emit an osc update; specific identifiers
// additionally emit title, palette, or clipboard").
func (it *Interpreter) handleOSCDispatch(raw []byte) []TerminalUpdate {
	s := string(raw)
	ident, payload, _ := strings.Cut(s, ";")

	out := []TerminalUpdate{{Kind: UpdateOSC, OSCIdent: ident, OSCPayload: payload}}
	switch ident {
	case "0", "2":
		it.title = payload
		out = append(out, TerminalUpdate{Kind: UpdateTitle, Title: payload})
	case "4":
		out = append(out, it.setPalette(payload)...)
	case "52":
		out = append(out, it.setClipboard(payload)...)
	}
	return out
}

// setPalette handles "OSC 4 ; index ; spec" (spec §4.5, "4: set palette
// entry"), accepting both "#RRGGBB" and "rgb:RRRR/GGGG/BBBB" forms.
func (it *Interpreter) setPalette(payload string) []TerminalUpdate {
	idxStr, spec, ok := strings.Cut(payload, ";")
	if !ok {
		return nil
	}
	idx := 0
	for _, r := range idxStr {
		if r < '0' || r > '9' {
			return nil
		}
		idx = idx*10 + int(r-'0')
	}

	var c Color
	var parsed bool
	if strings.HasPrefix(spec, "#") {
		c, parsed = ParseHexColor(spec)
	} else if strings.HasPrefix(spec, "rgb:") {
		c, parsed = ParseXParseColorSpec(spec)
	}
	if !parsed {
		return nil
	}
	return []TerminalUpdate{{Kind: UpdatePalette, PaletteIndex: idx, PaletteColor: c}}
}

// setClipboard handles "OSC 52 ; selection ; base64data" (spec §4.5, "52:
// clipboard"). The base64 payload is forwarded unvalidated; decoding is a
// host/runtime concern.
func (it *Interpreter) setClipboard(payload string) []TerminalUpdate {
	selStr, data, ok := strings.Cut(payload, ";")
	if !ok || len(selStr) == 0 {
		return nil
	}
	entry := ClipboardEntry{Selection: selStr[0], Data: data}
	it.clipboard = entry
	return []TerminalUpdate{{Kind: UpdateClipboard, Clipboard: entry}}
}
