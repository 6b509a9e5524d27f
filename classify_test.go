package vtcore

import "testing"

func TestClassifyRuleTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := Classify(byte(b))
		want := classifyByte(byte(b))
		if got != want {
			t.Fatalf("Classify(%#x) = %v, want %v", b, got, want)
		}
		if got == ClassNone {
			t.Fatalf("Classify(%#x) produced no class bits", b)
		}
	}
}

func TestClassifyKnownBytes(t *testing.T) {
	tests := []struct {
		b    byte
		want ClassSet
	}{
		{0x1B, ClassC0Control | ClassEscape},
		{0x07, ClassC0Control | ClassStringTerminator},
		{0x00, ClassC0Control},
		{0x7F, ClassDelete},
		{0x9B, ClassC1Control},
		{0x9C, ClassC1Control | ClassStringTerminator},
		{' ', ClassIntermediate | ClassPrintable},
		{'0', ClassParameter | ClassPrintable},
		{'A', ClassFinal | ClassPrintable},
		{'~', ClassFinal | ClassPrintable},
		{'z', ClassFinal | ClassPrintable},
	}
	for _, tt := range tests {
		if got := Classify(tt.b); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestClassifyOnlyKnownBitsSet(t *testing.T) {
	known := ClassC0Control | ClassC1Control | ClassPrintable | ClassEscape |
		ClassParameter | ClassIntermediate | ClassFinal | ClassDelete | ClassStringTerminator
	for b := 0; b < 256; b++ {
		if got := Classify(byte(b)); got&^known != 0 {
			t.Errorf("Classify(%#x) set unknown bits: %v", b, got)
		}
	}
}
