package vtcore

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

const replacementChar = '�'

// utf8Decoder streams UTF-8 print runs into grapheme clusters, buffering a
// partial multibyte sequence across Write calls (spec §4.4). Grounded on the
// teacher's inline utf8Buf/utf8Need handling in parser.go's processByte,
// generalized into a standalone type and driven by graphemes.FromString
// (github.com/clipperhouse/uax29/v2/graphemes) instead of the teacher's
// hand-rolled combining-mark table.
type utf8Decoder struct {
	pending []byte // bytes of an incomplete multibyte sequence
}

// decodedRune is one grapheme cluster's base scalar plus its display width,
// resolved via github.com/mattn/go-runewidth (spec §3, "Terminal cell": one
// grapheme scalar per cell).
type decodedRune struct {
	R     rune
	Width int
}

// Decode consumes a Print byte run, returning one decodedRune per grapheme
// cluster. Invalid continuation bytes yield U+FFFD (spec §4.4); a partial
// sequence at the end of input is buffered for the next call.
func (d *utf8Decoder) Decode(b []byte) []decodedRune {
	buf := b
	if len(d.pending) > 0 {
		buf = append(append([]byte(nil), d.pending...), b...)
		d.pending = nil
	}

	var runes []rune
	i := 0
	for i < len(buf) {
		r, size, ok := decodeUTF8Rune(buf[i:])
		if !ok {
			if size < 0 {
				// Incomplete sequence at the tail: buffer it for the next
				// Write call (spec §4.4, "buffered between events/writes").
				d.pending = append(d.pending, buf[i:]...)
				break
			}
			runes = append(runes, replacementChar)
			i += size
			continue
		}
		runes = append(runes, r)
		i += size
	}

	if len(runes) == 0 {
		return nil
	}
	return clusterGraphemes(runes)
}

// FlushPending discards a buffered partial multibyte sequence and reports
// whether one was pending; it emits nothing itself. The interpreter does
// not call it, so a partial sequence left by one Print run stays buffered
// across any control events that follow and is decoded together with the
// next Print run.
func (d *utf8Decoder) FlushPending() bool {
	if len(d.pending) == 0 {
		return false
	}
	d.pending = d.pending[:0]
	return true
}

// clusterGraphemes groups decoded code points into grapheme clusters via
// graphemes.FromString and returns one decodedRune per cluster, using the
// cluster's base (first) scalar as the cell's character and
// runewidth.RuneWidth for its display width.
func clusterGraphemes(runes []rune) []decodedRune {
	iter := graphemes.FromString(string(runes))
	out := make([]decodedRune, 0, len(runes))
	for iter.Next() {
		cluster := []rune(iter.Value())
		if len(cluster) == 0 {
			continue
		}
		base := cluster[0]
		out = append(out, decodedRune{R: base, Width: runewidth.RuneWidth(base)})
	}
	return out
}

// decodeUTF8Rune decodes one UTF-8 rune from the front of b. ok is false on
// a malformed sequence (size is the number of bytes to skip, i.e. 1) or on
// an incomplete trailing sequence (size is negative, signaling "buffer the
// rest").
func decodeUTF8Rune(b []byte) (r rune, size int, ok bool) {
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return rune(c0), 1, true
	case c0&0xE0 == 0xC0:
		return decodeMultibyte(b, c0&0x1F, 2, 0x80)
	case c0&0xF0 == 0xE0:
		return decodeMultibyte(b, c0&0x0F, 3, 0x800)
	case c0&0xF8 == 0xF0:
		return decodeMultibyte(b, c0&0x07, 4, 0x10000)
	default:
		return replacementChar, 1, false
	}
}

func decodeMultibyte(b []byte, lead byte, n int, minVal rune) (rune, int, bool) {
	if len(b) < n {
		return 0, -1, false
	}
	v := rune(lead)
	for i := 1; i < n; i++ {
		c := b[i]
		if c&0xC0 != 0x80 {
			return replacementChar, 1, false
		}
		v = v<<6 | rune(c&0x3F)
	}
	if v < minVal || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return replacementChar, 1, false
	}
	return v, n, true
}
