package handler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/routelog/routelog/core"
)

// fullChain wires the four standard handlers in the canonical order:
// fatal, file, console, catch-all.
func fullChain(t *testing.T, console *bytes.Buffer) (*Chain, string) {
	t.Helper()

	target := filepath.Join(t.TempDir(), "error.txt")
	fileHandler, err := NewFileHandler(FileConfig{Filename: target})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	chain, err := NewChain(
		NewFatalHandler(),
		fileHandler,
		NewConsoleHandler(ConsoleConfig{Writer: console}),
		NewCatchAllHandler(),
	)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	return chain, target
}

func TestChain_WarningClaimedByConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	chain, target := fullChain(t, &console)
	defer chain.Close()

	handled, err := chain.Dispatch(core.New(core.Warning, "real warning"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !handled {
		t.Fatal("Dispatch() handled = false, want true")
	}

	if console.String() != "real warning\n" {
		t.Errorf("console output = %q, want %q", console.String(), "real warning\n")
	}

	// No file I/O: the eagerly created target stays empty.
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("target file = %q, want empty", data)
	}
}

func TestChain_ErrorClaimedByFileOnly(t *testing.T) {
	var console bytes.Buffer
	chain, target := fullChain(t, &console)
	defer chain.Close()

	handled, err := chain.Dispatch(core.New(core.Error, "some_error"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !handled {
		t.Fatal("Dispatch() handled = false, want true")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "some_error\n" {
		t.Errorf("target file = %q, want %q", data, "some_error\n")
	}

	if console.Len() != 0 {
		t.Errorf("console output = %q, want empty", console.String())
	}
}

func TestChain_FatalAlwaysRaises(t *testing.T) {
	var console bytes.Buffer
	chain, target := fullChain(t, &console)
	defer chain.Close()

	handled, err := chain.Dispatch(core.New(core.FatalError, "fatal error"))
	if !handled {
		t.Fatal("Dispatch() handled = false, want true")
	}
	if err == nil {
		t.Fatal("Dispatch() error = nil, want TerminalError")
	}
	if err.Error() != "fatal error" {
		t.Errorf("error = %q, want %q (message text verbatim)", err.Error(), "fatal error")
	}

	var terminal *TerminalError
	if !errors.As(err, &terminal) {
		t.Fatalf("error is %T, want *TerminalError", err)
	}
	if terminal.Severity != core.FatalError {
		t.Errorf("TerminalError.Severity = %v, want %v", terminal.Severity, core.FatalError)
	}

	// No other handler's side effect occurred.
	if console.Len() != 0 {
		t.Errorf("console output = %q, want empty", console.String())
	}
	if data, _ := os.ReadFile(target); len(data) != 0 {
		t.Errorf("target file = %q, want empty", data)
	}
}

func TestChain_UnclassifiedRaisesWithPrefix(t *testing.T) {
	var console bytes.Buffer
	chain, _ := fullChain(t, &console)
	defer chain.Close()

	_, err := chain.Dispatch(core.New(core.Unclassified, "some unknown message"))
	if err == nil {
		t.Fatal("Dispatch() error = nil, want TerminalError")
	}

	want := "Unprocessed message: some unknown message"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	var terminal *TerminalError
	if !errors.As(err, &terminal) {
		t.Fatalf("error is %T, want *TerminalError", err)
	}
	if terminal.Text != "some unknown message" {
		t.Errorf("TerminalError.Text = %q, want original text", terminal.Text)
	}
}

func TestChain_SilentDropWithoutCatchAll(t *testing.T) {
	var console bytes.Buffer

	chain, err := NewChain(
		NewFatalHandler(),
		NewConsoleHandler(ConsoleConfig{Writer: &console}),
	)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	defer chain.Close()

	handled, err := chain.Dispatch(core.New(core.Unclassified, "nobody home"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v, want nil (silent drop)", err)
	}
	if handled {
		t.Error("Dispatch() handled = true, want false")
	}
	if console.Len() != 0 {
		t.Errorf("console output = %q, want empty", console.String())
	}

	if got := chain.Stats().DroppedTotal; got != 1 {
		t.Errorf("Stats().DroppedTotal = %d, want 1", got)
	}
}

func TestChain_DispatchIsIdempotentFree(t *testing.T) {
	var console bytes.Buffer
	chain, _ := fullChain(t, &console)
	defer chain.Close()

	msg := core.New(core.Warning, "twice")
	for i := 0; i < 2; i++ {
		if _, err := chain.Dispatch(msg); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
	}

	if console.String() != "twice\ntwice\n" {
		t.Errorf("console output = %q, want the write duplicated", console.String())
	}
}

func TestChain_FirstMatchWinsOnDuplicateSeverity(t *testing.T) {
	first := NewMemoryHandler(core.Warning)
	second := NewMemoryHandler(core.Warning)

	chain, err := NewChain(first, second)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	defer chain.Close()

	if _, err := chain.Dispatch(core.New(core.Warning, "who gets it")); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if len(first.Messages()) != 1 {
		t.Errorf("first handler recorded %d messages, want 1", len(first.Messages()))
	}
	if len(second.Messages()) != 0 {
		t.Errorf("second handler recorded %d messages, want 0", len(second.Messages()))
	}
}

func TestChain_EmitErrorDoesNotForward(t *testing.T) {
	tap := NewMemoryHandler(core.Error)
	failing := NewFunc(core.Error, func(*core.Message) error {
		return errors.New("sink unavailable")
	})

	chain, err := NewChain(failing, tap)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	defer chain.Close()

	handled, err := chain.Dispatch(core.New(core.Error, "doomed"))
	if !handled {
		t.Error("Dispatch() handled = false, want true (message was claimed)")
	}
	if err == nil || err.Error() != "sink unavailable" {
		t.Errorf("Dispatch() error = %v, want the handler's error", err)
	}
	if len(tap.Messages()) != 0 {
		t.Error("later handler received a message that was already claimed")
	}
}

func TestChain_NilMessageDropped(t *testing.T) {
	chain, err := NewChain(NewFatalHandler())
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	defer chain.Close()

	handled, err := chain.Dispatch(nil)
	if handled || err != nil {
		t.Errorf("Dispatch(nil) = (%v, %v), want (false, nil)", handled, err)
	}
}

func TestNewChain_RejectsNilHandler(t *testing.T) {
	if _, err := NewChain(NewFatalHandler(), nil); err == nil {
		t.Error("NewChain() with nil handler: error = nil, want non-nil")
	}
}

func TestNewChain_RejectsDuplicateInstance(t *testing.T) {
	h := NewFatalHandler()
	if _, err := NewChain(h, h); err == nil {
		t.Error("NewChain() with duplicate instance: error = nil, want non-nil")
	}
}

func TestChain_Handlers(t *testing.T) {
	fatal := NewFatalHandler()
	catchAll := NewCatchAllHandler()

	chain, err := NewChain(fatal, catchAll)
	if err != nil {
		t.Fatalf("NewChain() error = %v", err)
	}
	defer chain.Close()

	got := chain.Handlers()
	if len(got) != 2 || got[0] != Handler(fatal) || got[1] != Handler(catchAll) {
		t.Errorf("Handlers() = %v, want [fatal catchAll] in order", got)
	}

	// Mutating the copy must not affect dispatch order.
	got[0] = catchAll
	if chain.Handlers()[0] != Handler(fatal) {
		t.Error("Handlers() returned the chain's backing slice")
	}
}

func TestChain_Stats(t *testing.T) {
	var console bytes.Buffer
	chain, _ := fullChain(t, &console)
	defer chain.Close()

	chain.Dispatch(core.New(core.Warning, "w"))
	chain.Dispatch(core.New(core.Warning, "w"))
	chain.Dispatch(core.New(core.Error, "e"))
	chain.Dispatch(core.New(core.FatalError, "f"))
	chain.Dispatch(core.New(core.Unclassified, "u"))

	snap := chain.Stats()
	if snap.Claimed[core.Warning] != 2 {
		t.Errorf("Claimed[Warning] = %d, want 2", snap.Claimed[core.Warning])
	}
	if snap.Claimed[core.Error] != 1 {
		t.Errorf("Claimed[Error] = %d, want 1", snap.Claimed[core.Error])
	}
	if snap.Claimed[core.FatalError] != 1 {
		t.Errorf("Claimed[FatalError] = %d, want 1", snap.Claimed[core.FatalError])
	}
	if snap.Claimed[core.Unclassified] != 1 {
		t.Errorf("Claimed[Unclassified] = %d, want 1", snap.Claimed[core.Unclassified])
	}
	if snap.DroppedTotal != 0 {
		t.Errorf("DroppedTotal = %d, want 0", snap.DroppedTotal)
	}
}
