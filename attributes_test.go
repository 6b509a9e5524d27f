package vtcore

import "testing"

func TestApplySGRBoldAndColor(t *testing.T) {
	a := DefaultAttributes()
	a = a.ApplySGR([]int{31, 1}, []ParamSeparator{SepSemicolon, SepSemicolon})
	if !a.Bold {
		t.Fatalf("expected bold set")
	}
	if a.Foreground != ANSIColor(1) {
		t.Fatalf("got fg %+v", a.Foreground)
	}
}

func TestApplySGRResetToDefaults(t *testing.T) {
	a := DefaultAttributes().ApplySGR([]int{31, 1}, []ParamSeparator{SepSemicolon, SepSemicolon})
	a = a.ApplySGR([]int{0}, []ParamSeparator{SepSemicolon})
	if a != DefaultAttributes() {
		t.Fatalf("expected reset attributes, got %+v", a)
	}
}

func TestApplySGRPalette256Semicolon(t *testing.T) {
	a := DefaultAttributes().ApplySGR([]int{38, 5, 200}, []ParamSeparator{SepSemicolon, SepSemicolon, SepSemicolon})
	if a.Foreground != Palette256Color(200) {
		t.Fatalf("got %+v", a.Foreground)
	}
}

func TestApplySGRTrueColorSemicolon(t *testing.T) {
	a := DefaultAttributes().ApplySGR([]int{48, 2, 10, 20, 30}, []ParamSeparator{
		SepSemicolon, SepSemicolon, SepSemicolon, SepSemicolon, SepSemicolon,
	})
	if a.Background != RGBColor(10, 20, 30) {
		t.Fatalf("got %+v", a.Background)
	}
}

func TestApplySGRTrueColorColonWithEmptyColorspace(t *testing.T) {
	params := []int{38, 2, 0, 10, 20, 30}
	seps := []ParamSeparator{SepColon, SepColon, SepColon, SepColon, SepColon, SepColon}
	a := DefaultAttributes().ApplySGR(params, seps)
	if a.Foreground != RGBColor(10, 20, 30) {
		t.Fatalf("got %+v", a.Foreground)
	}
}

func TestApplySGRUnknownParamSkipped(t *testing.T) {
	a := DefaultAttributes().ApplySGR([]int{117, 1}, []ParamSeparator{SepSemicolon, SepSemicolon})
	if !a.Bold {
		t.Fatalf("unknown param should not abort rest of list")
	}
}

func TestApplySGRBrightColors(t *testing.T) {
	a := DefaultAttributes().ApplySGR([]int{95, 103}, []ParamSeparator{SepSemicolon, SepSemicolon})
	if a.Foreground != ANSIBrightColor(5) || a.Background != ANSIBrightColor(3) {
		t.Fatalf("got %+v / %+v", a.Foreground, a.Background)
	}
}
