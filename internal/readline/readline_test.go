package readline

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"ben/internal/history"
)

func newPlainEditor(input string) (*Editor, *bytes.Buffer) {
	out := &bytes.Buffer{}
	e := &Editor{
		history: &history.Manager{},
		out:     out,
		reader:  bufio.NewReader(strings.NewReader(input)),
	}
	return e, out
}

func TestReadPlain(t *testing.T) {
	e, out := newPlainEditor("load a.bin\nxd\n")

	line, err := e.readPlain("ben> ")
	if err != nil || line != "load a.bin" {
		t.Errorf("readPlain = (%q, %v)", line, err)
	}
	if out.String() != "ben> " {
		t.Errorf("prompt = %q", out.String())
	}

	line, err = e.readPlain("ben> ")
	if err != nil || line != "xd" {
		t.Errorf("readPlain = (%q, %v)", line, err)
	}
}

func TestReadPlainEOF(t *testing.T) {
	// A final line without a newline is still delivered; the next read
	// reports EOF.
	e, _ := newPlainEditor("last")
	line, err := e.readPlain("> ")
	if err != nil || line != "last" {
		t.Errorf("readPlain = (%q, %v)", line, err)
	}
	if _, err := e.readPlain("> "); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestTrimEOL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a\n", "a"},
		{"a\r\n", "a"},
		{"a", "a"},
		{"\r\n", ""},
	}
	for _, tt := range tests {
		if got := trimEOL(tt.in); got != tt.want {
			t.Errorf("trimEOL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
