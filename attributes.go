package vtcore

// ApplySGR updates a attributes by folding params through it left-to-right
// per the SGR machine (spec §4.5, "SGR machine"). Unknown params are
// skipped without aborting the rest of the list.
func (a Attributes) ApplySGR(params []int, seps []ParamSeparator) Attributes {
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			a = DefaultAttributes()
		case p == 1:
			a.Bold = true
		case p == 2:
			a.Faint = true
		case p == 3:
			a.Italic = true
		case p == 4:
			a.Underline = UnderlineSingle
		case p == 5:
			a.Blink = BlinkSlow
		case p == 6:
			a.Blink = BlinkRapid
		case p == 7:
			a.Inverse = true
		case p == 8:
			a.Hidden = true
		case p == 9:
			a.Strikethrough = true
		case p == 21:
			a.Underline = UnderlineDouble
		case p == 22:
			a.Bold, a.Faint = false, false
		case p == 23:
			a.Italic = false
		case p == 24:
			a.Underline = UnderlineNone
		case p == 25:
			a.Blink = BlinkNone
		case p == 27:
			a.Inverse = false
		case p == 28:
			a.Hidden = false
		case p == 29:
			a.Strikethrough = false
		case p >= 30 && p <= 37:
			a.Foreground = ANSIColor(p - 30)
		case p == 38:
			var c Color
			var consumed int
			c, consumed = parseSGRColor(params[i:], seps[i:])
			if consumed > 0 {
				a.Foreground = c
				i += consumed
				continue
			}
		case p == 39:
			a.Foreground = DefaultForeground
		case p >= 40 && p <= 47:
			a.Background = ANSIColor(p - 40)
		case p == 48:
			var c Color
			var consumed int
			c, consumed = parseSGRColor(params[i:], seps[i:])
			if consumed > 0 {
				a.Background = c
				i += consumed
				continue
			}
		case p == 49:
			a.Background = DefaultBackground
		case p >= 90 && p <= 97:
			a.Foreground = ANSIBrightColor(p - 90)
		case p >= 100 && p <= 107:
			a.Background = ANSIBrightColor(p - 100)
		}
		i++
	}
	return a
}

// parseSGRColor parses the "38;5;n", "38;2;r;g;b" extended-color forms
// (and their colon-separated subparameter equivalents, including the
// "38:2::r:g:b" form with an empty colorspace field) starting at params[0]
// (which must be 38 or 48). It returns the resolved color and how many
// entries of params were consumed, or consumed=0 if malformed.
func parseSGRColor(params []int, seps []ParamSeparator) (Color, int) {
	if len(params) < 2 {
		return Color{}, 0
	}
	switch params[1] {
	case 5:
		if len(params) < 3 {
			return Color{}, 0
		}
		return Palette256Color(params[2]), 3
	case 2:
		// Colon form may carry an extra empty colorspace-ID field right
		// after the "2" (e.g. "38:2::r:g:b"); semicolon form never does.
		idx := 2
		if len(seps) > 2 && seps[2] == SepColon && len(params) > idx+3 {
			idx++
		}
		if len(params) < idx+3 {
			return Color{}, 0
		}
		return RGBColor(params[idx], params[idx+1], params[idx+2]), idx + 3
	}
	return Color{}, 0
}
