// Package readline reads input lines for the interactive session. When
// stdin is a terminal it provides a raw-mode line editor with cursor
// movement and history navigation; otherwise it degrades to buffered reads.
package readline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"ben/internal/history"
)

type Editor struct {
	history *history.Manager
	in      *os.File
	out     io.Writer
	reader  *bufio.Reader
}

func New(hist *history.Manager) *Editor {
	return &Editor{
		history: hist,
		in:      os.Stdin,
		out:     os.Stdout,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// ReadLine prompts and reads one line. io.EOF means end of input (^D on an
// empty line, or the input source running out).
func (e *Editor) ReadLine(prompt string) (string, error) {
	fd := int(e.in.Fd())
	if !term.IsTerminal(fd) {
		return e.readPlain(prompt)
	}
	return e.readRaw(fd, prompt)
}

func (e *Editor) readPlain(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	line, err := e.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func (e *Editor) readRaw(fd int, prompt string) (string, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return e.readPlain(prompt)
	}
	defer term.Restore(fd, oldState)

	var line []rune
	pos := 0
	draft := ""
	browsing := false

	redraw := func() {
		fmt.Fprintf(e.out, "\r\x1b[K%s%s", prompt, string(line))
		if back := len(line) - pos; back > 0 {
			fmt.Fprintf(e.out, "\x1b[%dD", back)
		}
	}
	redraw()

	for {
		r, _, err := e.reader.ReadRune()
		if err != nil {
			fmt.Fprint(e.out, "\r\n")
			if err == io.EOF && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}

		switch r {
		case '\r', '\n':
			fmt.Fprint(e.out, "\r\n")
			e.history.Reset()
			return string(line), nil

		case 0x03: // ^C discards the line
			fmt.Fprint(e.out, "^C\r\n")
			e.history.Reset()
			return "", nil

		case 0x04: // ^D: EOF on an empty line, delete otherwise
			if len(line) == 0 {
				fmt.Fprint(e.out, "\r\n")
				return "", io.EOF
			}
			if pos < len(line) {
				line = append(line[:pos], line[pos+1:]...)
			}

		case 0x7f, 0x08: // backspace
			if pos > 0 {
				line = append(line[:pos-1], line[pos:]...)
				pos--
			}

		case 0x01: // ^A
			pos = 0
		case 0x05: // ^E
			pos = len(line)
		case 0x0b: // ^K
			line = line[:pos]
		case 0x15: // ^U
			line = append([]rune(nil), line[pos:]...)
			pos = 0
		case 0x0c: // ^L
			fmt.Fprint(e.out, "\x1b[2J\x1b[H")

		case 0x1b:
			line, pos, browsing, draft = e.escape(line, pos, browsing, draft)

		default:
			if r >= 0x20 {
				line = append(line[:pos], append([]rune{r}, line[pos:]...)...)
				pos++
				browsing = false
			}
		}
		redraw()
	}
}

// escape handles an ANSI escape sequence: arrows, home/end and delete.
func (e *Editor) escape(line []rune, pos int, browsing bool, draft string) ([]rune, int, bool, string) {
	b, err := e.reader.ReadByte()
	if err != nil || b != '[' {
		return line, pos, browsing, draft
	}
	b, err = e.reader.ReadByte()
	if err != nil {
		return line, pos, browsing, draft
	}

	switch b {
	case 'A': // up
		if !browsing {
			draft = string(line)
			browsing = true
		}
		if prev, ok := e.history.Previous(); ok {
			line = []rune(prev)
			pos = len(line)
		}
	case 'B': // down
		if browsing {
			if next, ok := e.history.Next(); ok {
				line = []rune(next)
			} else {
				line = []rune(draft)
				browsing = false
			}
			pos = len(line)
		}
	case 'C':
		if pos < len(line) {
			pos++
		}
	case 'D':
		if pos > 0 {
			pos--
		}
	case 'H':
		pos = 0
	case 'F':
		pos = len(line)
	case '3':
		if b, err := e.reader.ReadByte(); err == nil && b == '~' {
			if pos < len(line) {
				line = append(line[:pos], line[pos+1:]...)
			}
		}
	}
	return line, pos, browsing, draft
}
