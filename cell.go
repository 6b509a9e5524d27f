package vtcore

// UnderlineStyle distinguishes the underline renderings an SGR sequence can
// select (spec §3, "Terminal attributes": underline ∈ {none, single,
// double}).
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
)

// BlinkStyle distinguishes the blink renderings an SGR sequence can select
// (spec §3: blink ∈ {none, slow, rapid}).
type BlinkStyle uint8

const (
	BlinkNone BlinkStyle = iota
	BlinkSlow
	BlinkRapid
)

// Attributes is the value record of active text attributes (spec §3,
// "Terminal attributes"). It is cheap to copy; cells and the interpreter's
// active-attribute slot each hold one by value.
type Attributes struct {
	Bold          bool
	Faint         bool
	Italic        bool
	Underline     UnderlineStyle
	Blink         BlinkStyle
	Inverse       bool
	Hidden        bool
	Strikethrough bool
	Foreground    Color
	Background    Color
}

// DefaultAttributes returns the reset (SGR 0) attribute value.
func DefaultAttributes() Attributes {
	return Attributes{Foreground: DefaultForeground, Background: DefaultBackground}
}

// Cell is a single terminal grid cell: one grapheme scalar, its attributes,
// and the DECSCA protected flag (spec §3, "Terminal cell").
type Cell struct {
	Char      rune
	Attrs     Attributes
	Protected bool
}

// EmptyCell returns a blank cell carrying the given active attributes,
// matching the "write the cell with a clone of active attributes" rule
// used when rows are extended or erased (spec §4.5).
func EmptyCell(attrs Attributes) Cell {
	return Cell{Char: ' ', Attrs: attrs}
}
