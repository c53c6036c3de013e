package command

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"ben/internal/vars"
)

func newTestRegistry() (*Registry, *vars.Store, *bytes.Buffer) {
	vs := vars.New()
	out := &bytes.Buffer{}
	return New(vs, out), vs, out
}

func TestDispatch(t *testing.T) {
	reg, _, _ := newTestRegistry()
	var got []string
	reg.Register("echo", func(args []string) int {
		got = append([]string(nil), args...)
		return 7
	})

	status := reg.Dispatch([]string{"echo", "a", "b"})
	if status != 7 {
		t.Errorf("status = %d, want 7", status)
	}
	if len(got) != 3 || got[0] != "echo" || got[1] != "a" || got[2] != "b" {
		t.Errorf("handler args = %v", got)
	}
}

func TestDispatchUnknown(t *testing.T) {
	reg, _, out := newTestRegistry()
	if status := reg.Dispatch([]string{"nope"}); status != StatusUnknown {
		t.Errorf("status = %d, want %d", status, StatusUnknown)
	}
	if !strings.Contains(out.String(), "ben: nope: command not found") {
		t.Errorf("output = %q", out.String())
	}
}

func TestDispatchEmpty(t *testing.T) {
	reg, _, _ := newTestRegistry()
	if status := reg.Dispatch(nil); status != StatusUnknown {
		t.Errorf("status = %d, want %d", status, StatusUnknown)
	}
}

func TestDispatchSuggestion(t *testing.T) {
	reg, _, out := newTestRegistry()
	reg.Register("print", func([]string) int { return 0 })
	reg.Dispatch([]string{"prnt"})
	if !strings.Contains(out.String(), "Did you mean `print'?") {
		t.Errorf("output = %q, want a print suggestion", out.String())
	}
}

func TestDispatchAutoShell(t *testing.T) {
	reg, vs, _ := newTestRegistry()
	var got []string
	reg.Register("command", func(args []string) int {
		got = append([]string(nil), args...)
		return 0
	})

	vs.Set("AUTO_SHELL", "1")
	if status := reg.Dispatch([]string{"ls", "-l"}); status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	want := []string{"command", "ls", "-l"}
	if len(got) != len(want) {
		t.Fatalf("passthrough args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("passthrough args = %v, want %v", got, want)
			break
		}
	}

	// Off again: back to the not-found path.
	vs.Set("AUTO_SHELL", "0")
	got = nil
	if status := reg.Dispatch([]string{"ls"}); status != StatusUnknown {
		t.Errorf("status = %d, want %d", status, StatusUnknown)
	}
	if got != nil {
		t.Errorf("passthrough ran with AUTO_SHELL=0: %v", got)
	}
}

func TestDispatchPanicIsBug(t *testing.T) {
	reg, _, out := newTestRegistry()
	reg.Register("boom", func([]string) int { panic("kaboom") })
	if status := reg.Dispatch([]string{"boom"}); status != StatusUnknown {
		t.Errorf("status = %d, want %d", status, StatusUnknown)
	}
	if !strings.Contains(out.String(), "BUG: kaboom") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRegisterRedefinitionWarning(t *testing.T) {
	reg, _, out := newTestRegistry()
	reg.Register("x", func([]string) int { return 0 })
	reg.Register("x", func([]string) int { return 1 })
	if !strings.Contains(out.String(), "Warning: x got redefined.") {
		t.Errorf("output = %q", out.String())
	}
	if status := reg.Dispatch([]string{"x"}); status != 1 {
		t.Errorf("status = %d, want the later registration to win", status)
	}
}

func TestHelp(t *testing.T) {
	reg, _, out := newTestRegistry()
	reg.Register("plain", func([]string) int { return 0 })
	reg.RegisterHelp("doc", func([]string) int { return 0 }, func(name string, w io.Writer) {
		fmt.Fprintln(w, "doc: does things")
	})

	reg.Help("plain")
	if !strings.Contains(out.String(), "Help for plain is not provided.") {
		t.Errorf("output = %q", out.String())
	}
	out.Reset()
	reg.Help("doc")
	if out.String() != "doc: does things\n" {
		t.Errorf("output = %q", out.String())
	}
	out.Reset()
	if status := reg.Help("ghost"); status != StatusUnknown {
		t.Errorf("status = %d, want %d", status, StatusUnknown)
	}
}
