package vtcore

// decSpecialGraphics maps the DEC Special Graphics charset (designated via
// ESC ( 0 / ESC ) 0 / etc., spec §4.5 "designate G0-G3") onto its Unicode
// line-drawing/symbol equivalents, grounded on the pack's line-drawing table
// (javanhut-RavenTerminal's src/parser/parser.go decLineDrawing), covering
// positions 0x60-0x7E; other positions pass through unchanged.
var decSpecialGraphics = map[rune]rune{
	'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌', 'd': '␍', 'e': '␊',
	'f': '°', 'g': '±', 'h': '␤', 'i': '␋',
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺', 'p': '⎻',
	'q': '─', 'r': '⎼', 's': '⎽', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
	'x': '│', 'y': '≤', 'z': '≥', '{': 'π', '|': '≠', '}': '£', '~': '·',
}

// nrcsTables holds the handful of National Replacement Character Set
// overrides (over US-ASCII) for the positions each NRCS variant redefines,
// grounded on the ECMA-43/DEC NRCS tables (positions 0x23, 0x40, 0x5B-0x5E,
// 0x60, 0x7B-0x7E vary by national variant).
var nrcsTables = map[Charset]map[byte]rune{
	CharsetNRCSGerman: {
		0x40: '§', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Ü',
		0x7b: 'ä', 0x7c: 'ö', 0x7d: 'ü', 0x7e: 'ß',
	},
	CharsetNRCSFrench: {
		0x23: '£', 0x40: 'à', 0x5b: '°', 0x5c: 'ç',
		0x5d: '§', 0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: '¨',
	},
	CharsetNRCSFrenchCanadian: {
		0x40: 'à', 0x5b: 'â', 0x5c: 'ç', 0x5d: 'ê', 0x5e: 'î',
		0x60: 'ô', 0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: 'û',
	},
	CharsetNRCSSpanish: {
		0x23: '£', 0x40: '§', 0x5b: '¡', 0x5c: 'Ñ', 0x5d: '¿',
		0x7b: '°', 0x7c: 'ñ', 0x7d: 'ç',
	},
	CharsetNRCSItalian: {
		0x23: '£', 0x40: '§', 0x5b: '°', 0x5c: 'ç', 0x5d: 'é',
		0x7b: 'à', 0x7c: 'ò', 0x7d: 'è', 0x7e: 'ì',
	},
	CharsetNRCSSwedish: {
		0x40: 'É', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
	},
	CharsetNRCSSwiss: {
		0x23: 'ù', 0x40: 'à', 0x5b: 'é', 0x5c: 'ç', 0x5d: 'ê',
		0x5e: 'î', 0x60: 'è', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'ü', 0x7e: 'û',
	},
	CharsetNRCSNorwegianDanish: {
		0x40: 'Ä', 0x5b: 'Æ', 0x5c: 'Ø', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'ä', 0x7b: 'æ', 0x7c: 'ø', 0x7d: 'å', 0x7e: 'ü',
	},
	CharsetNRCSPortuguese: {
		0x5b: 'Ã', 0x5c: 'Ç', 0x5d: 'Õ', 0x7b: 'ã', 0x7c: 'ç', 0x7d: 'õ',
	},
	CharsetNRCSDutch: {
		0x23: '£', 0x40: '¾', 0x5b: 'ĳ', 0x5c: '½', 0x5d: '|',
		0x7b: '¨', 0x7c: 'ƒ', 0x7d: '¼', 0x7e: '´',
	},
	CharsetNRCSFinnish: {
		0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
	},
}

// charsetFromDesignator maps an ESC ( / ) / * / + final byte to a Charset
// (spec §4.5, "designate G0-G3 with charset identifiers").
func charsetFromDesignator(b byte) (Charset, bool) {
	switch b {
	case '0':
		return CharsetDECSpecial, true
	case 'A':
		return CharsetUK, true
	case 'B':
		return CharsetUSASCII, true
	case '4':
		return CharsetNRCSDutch, true
	case 'C', '5':
		return CharsetNRCSFinnish, true
	case 'R':
		return CharsetNRCSFrench, true
	case 'Q':
		return CharsetNRCSFrenchCanadian, true
	case 'K':
		return CharsetNRCSGerman, true
	case 'Y':
		return CharsetNRCSItalian, true
	case 'E', '6':
		return CharsetNRCSNorwegianDanish, true
	case 'Z':
		return CharsetNRCSSpanish, true
	case 'H', '7':
		return CharsetNRCSSwedish, true
	case '=':
		return CharsetNRCSSwiss, true
	}
	return CharsetUSASCII, false
}

// translateCharset maps a decoded code point through the given charset,
// per spec §4.5 printing step 1 ("translate via charset table"). Bytes
// outside the charset's redefined range pass through unchanged (US-ASCII
// passthrough).
func translateCharset(cs Charset, r rune) rune {
	if r > 0x7F {
		return r
	}
	switch cs {
	case CharsetDECSpecial:
		if mapped, ok := decSpecialGraphics[r]; ok {
			return mapped
		}
	case CharsetUK:
		if r == 0x23 {
			return '£'
		}
	case CharsetUSASCII:
		// passthrough
	default:
		if table, ok := nrcsTables[cs]; ok {
			if mapped, ok := table[byte(r)]; ok {
				return mapped
			}
		}
	}
	return r
}
