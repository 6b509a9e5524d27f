package runtime

import (
	"testing"

	"github.com/vtcore/vtcore"
)

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	return New(vtcore.CapabilityRequest{Spec: vtcore.SpecVT220}, 24, 80, nil)
}

func TestFacadeWriteUpdatesGrid(t *testing.T) {
	f := newTestFacade(t)
	f.Write("hi")
	snap := f.Snapshot()
	if snap.Buffer[0][0].Char != 'h' || snap.Buffer[0][1].Char != 'i' {
		t.Fatalf("unexpected grid: %q %q", snap.Buffer[0][0].Char, snap.Buffer[0][1].Char)
	}
}

func TestFacadeKeyArrowDefaultsToCSI(t *testing.T) {
	f := newTestFacade(t)
	updates := f.DispatchEvent(HostEvent{Kind: HostKey, Key: KeyEvent{Name: "Up"}})
	if len(updates) != 1 || updates[0].Kind != vtcore.UpdateResponse {
		t.Fatalf("got %+v", updates)
	}
	if string(updates[0].ResponseBytes) != "\x1b[A" {
		t.Fatalf("got %q, want ESC [ A", updates[0].ResponseBytes)
	}
}

func TestFacadeKeyArrowUsesSS3InCursorKeysApplicationMode(t *testing.T) {
	f := newTestFacade(t)
	// DECSET 1 (DECCKM)
	f.Write("\x1b[?1h")
	updates := f.DispatchEvent(HostEvent{Kind: HostKey, Key: KeyEvent{Name: "Up"}})
	if len(updates) != 1 || string(updates[0].ResponseBytes) != "\x1bOA" {
		t.Fatalf("got %+v", updates)
	}
}

func TestFacadeCtrlLetterTranslation(t *testing.T) {
	f := newTestFacade(t)
	updates := f.DispatchEvent(HostEvent{Kind: HostKey, Key: KeyEvent{Name: "a", Ctrl: true}})
	if len(updates) != 1 || len(updates[0].ResponseBytes) != 1 || updates[0].ResponseBytes[0] != 1 {
		t.Fatalf("got %+v, want single byte 0x01", updates)
	}
}

func TestFacadePasteWrapsWhenBracketedPasteEnabled(t *testing.T) {
	f := newTestFacade(t)
	f.Write("\x1b[?2004h")
	updates := f.DispatchEvent(HostEvent{Kind: HostPaste, Text: "hi"})
	if len(updates) != 1 {
		t.Fatalf("got %+v", updates)
	}
	want := "\x1b[200~hi\x1b[201~"
	if string(updates[0].ResponseBytes) != want {
		t.Fatalf("got %q, want %q", updates[0].ResponseBytes, want)
	}
}

func TestFacadePasteNotWrappedWhenDisabled(t *testing.T) {
	f := newTestFacade(t)
	updates := f.DispatchEvent(HostEvent{Kind: HostPaste, Text: "hi"})
	if len(updates) != 1 || string(updates[0].ResponseBytes) != "hi" {
		t.Fatalf("got %+v", updates)
	}
}

func TestFacadeFocusReportOnlyWhenEnabled(t *testing.T) {
	f := newTestFacade(t)
	if updates := f.DispatchEvent(HostEvent{Kind: HostFocus}); updates != nil {
		t.Fatalf("expected no report before enabling, got %+v", updates)
	}
	f.Write("\x1b[?1004h")
	updates := f.DispatchEvent(HostEvent{Kind: HostFocus})
	if len(updates) != 1 || string(updates[0].ResponseBytes) != "\x1b[I" {
		t.Fatalf("got %+v", updates)
	}
}
