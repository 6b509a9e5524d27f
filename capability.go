package vtcore

// C1Transmission selects whether C1 control bytes/introducers are
// transmitted as single 8-bit bytes or as 7-bit ESC-prefixed sequences
// (spec §3, §4.2 setC1TransmissionMode).
type C1Transmission uint8

const (
	C1Transmission7Bit C1Transmission = iota
	C1Transmission8Bit
)

// Spec identifies a VT hardware generation the capability resolver can
// target (spec §4.3).
type Spec string

const (
	SpecVT100 Spec = "vt100"
	SpecVT220 Spec = "vt220"
	SpecVT320 Spec = "vt320"
	SpecVT420 Spec = "vt420"
	SpecVT520 Spec = "vt520"
	SpecVT525 Spec = "vt525"
)

// Emulator names a terminal-emulator overlay applied on top of a Spec.
type Emulator string

const (
	EmulatorNone   Emulator = ""
	EmulatorXterm  Emulator = "xterm"
	EmulatorKitty  Emulator = "kitty"
	EmulatorVT     Emulator = "vt"
)

// C1Handling selects how 0x80-0x9F bytes are interpreted in Ground state
// (spec §4.2).
type C1Handling uint8

const (
	C1HandlingSpec C1Handling = iota
	C1HandlingEscaped
	C1HandlingExecute
	C1HandlingIgnore
)

// StringLimits caps OSC/DCS/SOS-PM-APC accumulator sizes in bytes (spec §4.2).
type StringLimits struct {
	OSC      int
	DCS      int
	SosPmApc int
}

// ParserOptions configures a Parser (spec §4.2, "Configuration").
type ParserOptions struct {
	C1Handling             C1Handling
	AcceptEightBitControls bool
	StringLimits           StringLimits
	MaxCSIParams           int
	MaxCSIIntermediates    int
	MaxCSIParamValue       int
	DCSFlushThreshold      int
}

// TerminalFeatures is the resolved capability record consumed by the
// interpreter (spec §4.3).
type TerminalFeatures struct {
	Rows, Columns int

	ANSIColor          bool
	PaletteColor       bool
	TrueColor          bool
	DECPrivateModes    bool
	SosPmApc           bool
	ScrollRegions      bool
	OriginMode         bool
	AutoWrap           bool
	CursorVisibleCap   bool
	TabStops           bool
	C1TransmissionMode C1Transmission
	C1Toggle           bool
	PrimaryDA          string
	SecondaryDA        string
	NRCS               bool
	BracketedPaste     bool
	PointerTracking    bool
	Answerback         string
}

// CapabilityRequest is the input to ResolveCapabilities.
type CapabilityRequest struct {
	Spec     Spec
	Emulator Emulator
	Options  *ParserOptions // explicit overrides: C1Handling and AcceptEightBitControls always apply; zero numeric fields and zero string limits mean "unset"
}

func defaultParserOptions() ParserOptions {
	return ParserOptions{
		C1Handling:             C1HandlingSpec,
		AcceptEightBitControls: true,
		StringLimits: StringLimits{
			OSC:      4096,
			DCS:      4096,
			SosPmApc: 4096,
		},
		MaxCSIParams:        16,
		MaxCSIIntermediates: 4,
		MaxCSIParamValue:    65535,
		DCSFlushThreshold:   1024,
	}
}

// specDefaults returns the TerminalFeatures baseline for a Spec, before any
// emulator overlay or explicit option is applied.
func specDefaults(s Spec) TerminalFeatures {
	f := TerminalFeatures{
		Rows:               24,
		Columns:            80,
		ANSIColor:          true,
		DECPrivateModes:    true,
		SosPmApc:           true,
		ScrollRegions:      true,
		OriginMode:         true,
		AutoWrap:           true,
		CursorVisibleCap:   true,
		TabStops:           true,
		C1TransmissionMode: C1Transmission7Bit,
		C1Toggle:           true,
		NRCS:               true,
		PrimaryDA:          "?1;2c",
		SecondaryDA:        ">1;0;0c",
	}
	switch s {
	case SpecVT100:
		f.PaletteColor = false
		f.TrueColor = false
		f.NRCS = false
		f.PrimaryDA = "?1;0c"
		f.SecondaryDA = ">0;0;0c"
	case SpecVT220, "":
		f.PaletteColor = false
		f.TrueColor = false
		f.PrimaryDA = "?62;1;2;6;7;8;9c"
		f.SecondaryDA = ">1;10;0c"
	case SpecVT320:
		f.PaletteColor = false
		f.PrimaryDA = "?63;1;2;6;7;8;9c"
		f.SecondaryDA = ">24;10;0c"
	case SpecVT420:
		f.PaletteColor = true
		f.PrimaryDA = "?64;1;2;6;7;8;9;15;18;21c"
		f.SecondaryDA = ">41;10;0c"
	case SpecVT520, SpecVT525:
		f.PaletteColor = true
		f.TrueColor = s == SpecVT525
		f.PrimaryDA = "?65;1;2;6;7;8;9;15;18;21;22c"
		f.SecondaryDA = ">65;10;0c"
	}
	return f
}

// applyEmulatorOverlay raises limits and enables features for a known
// emulator, per spec §4.3: "Emulator overlays ... may raise stringLimits,
// force acceptEightBitControls, and enable features."
func applyEmulatorOverlay(f *TerminalFeatures, o *ParserOptions, e Emulator) {
	switch e {
	case EmulatorXterm:
		f.PaletteColor = true
		f.TrueColor = true
		f.BracketedPaste = true
		f.PointerTracking = true
		o.StringLimits.OSC = max(o.StringLimits.OSC, 16384)
		o.StringLimits.DCS = max(o.StringLimits.DCS, 16384)
	case EmulatorKitty:
		f.PaletteColor = true
		f.TrueColor = true
		f.BracketedPaste = true
		f.PointerTracking = true
		o.AcceptEightBitControls = false
		o.StringLimits.OSC = max(o.StringLimits.OSC, 1<<20)
		o.StringLimits.DCS = max(o.StringLimits.DCS, 1<<20)
	case EmulatorVT:
		// VT hardware overlay: no change beyond the spec defaults.
	}
}

// mergeStringLimits merges overrides key-by-key over a base, per spec §4.3:
// "Per-string limits are merged key-by-key."
func mergeStringLimits(base StringLimits, override *StringLimits) StringLimits {
	if override == nil {
		return base
	}
	out := base
	if override.OSC != 0 {
		out.OSC = override.OSC
	}
	if override.DCS != 0 {
		out.DCS = override.DCS
	}
	if override.SosPmApc != 0 {
		out.SosPmApc = override.SosPmApc
	}
	return out
}

// ResolveCapabilities resolves a {spec?, emulator?, options overrides} request
// into a ParserOptions and a TerminalFeatures record (spec §4.3). Spec
// defaults to vt220 when unspecified. Explicit options override overlay and
// spec.
func ResolveCapabilities(req CapabilityRequest) (ParserOptions, TerminalFeatures) {
	spec := req.Spec
	if spec == "" {
		spec = SpecVT220
	}

	opts := defaultParserOptions()
	features := specDefaults(spec)

	applyEmulatorOverlay(&features, &opts, req.Emulator)

	if req.Options != nil {
		o := req.Options
		opts.C1Handling = o.C1Handling
		opts.AcceptEightBitControls = o.AcceptEightBitControls
		opts.StringLimits = mergeStringLimits(opts.StringLimits, &o.StringLimits)
		if o.MaxCSIParams != 0 {
			opts.MaxCSIParams = o.MaxCSIParams
		}
		if o.MaxCSIIntermediates != 0 {
			opts.MaxCSIIntermediates = o.MaxCSIIntermediates
		}
		if o.MaxCSIParamValue != 0 {
			opts.MaxCSIParamValue = o.MaxCSIParamValue
		}
		if o.DCSFlushThreshold != 0 {
			opts.DCSFlushThreshold = o.DCSFlushThreshold
		}
	}

	return opts, features
}
