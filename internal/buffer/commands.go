package buffer

import (
	"fmt"
	"io"

	"ben/internal/command"
)

// Init registers the buffer commands: load, lsbuf, default, seek, goto and
// cursor.
func Init(reg *command.Registry, store *Store, w io.Writer) {
	c := &commands{store: store, w: w}

	reg.RegisterHelp("load", c.load, func(name string, w io.Writer) {
		fmt.Fprintf(w, "usage: load FILE\n")
	})
	reg.Register("lsbuf", c.lsbuf)
	reg.RegisterHelp("default", c.defaultBuf, func(name string, w io.Writer) {
		fmt.Fprint(w, "usage: default BUF\nQuery or change default buffer.\n")
	})
	reg.RegisterHelp("seek", c.seek, func(name string, w io.Writer) {
		fmt.Fprint(w, `usage: seek COUNT [BUF] [BASE]
If BASE is omitted, seeks COUNT bytes relative to current cursor.
Both positive and negative COUNT is allowed.
Negative BASE means BASE bytes from the end of the buffer.
`)
	})
	reg.RegisterHelp("goto", c.cursorGoto, func(name string, w io.Writer) {
		fmt.Fprint(w, "usage: goto ADDR [BUF]\nMove BUF's cursor to ADDR.\n")
	})
	reg.RegisterHelp("cursor", c.cursor, func(name string, w io.Writer) {
		fmt.Fprint(w, "usage: cursor [bin|oct|dec|hex] [BUF]\nQuery cursor position. Default format is hex.\n")
	})
}

type commands struct {
	store *Store
	w     io.Writer
}

func (c *commands) load(args []string) int {
	m := NewMatcher(args, c.store)
	name, err := m.String()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "load: %v\n", err)
		return 1
	}

	if _, err := c.store.Load(name); err != nil {
		fmt.Fprintf(c.w, "Failed to load: %v\n", err)
		return 1
	}
	c.store.List(c.w)
	return 0
}

func (c *commands) lsbuf(args []string) int {
	if len(args) >= 2 {
		fmt.Fprintf(c.w, "lsbuf: Too many arguments.\n")
		return 1
	}
	c.store.List(c.w)
	return 0
}

func (c *commands) defaultBuf(args []string) int {
	if len(args) < 2 {
		if i, ok := c.store.DefaultIndex(); ok {
			fmt.Fprintf(c.w, "%%%d\n", i)
		} else {
			fmt.Fprintf(c.w, "Default file not set.\n")
		}
		return 0
	}

	m := NewMatcher(args, c.store)
	_, err := m.File()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "default: %v\n", err)
		return 1
	}
	return 0
}

func (c *commands) seek(args []string) int {
	m := NewMatcher(args, c.store)
	count, err := m.Diff()
	if err != nil {
		fmt.Fprintf(c.w, "seek: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err != nil {
		fmt.Fprintf(c.w, "seek: %v\n", err)
		return 1
	}
	n, err := m.DiffDefault(f.Cursor)
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "seek: %v\n", err)
		return 1
	}

	var base int
	if n >= 0 {
		if n >= len(f.Data) {
			fmt.Fprintf(c.w, "BASE exceeds buffer.\n")
			return 1
		}
		base = n
	} else {
		if -n >= len(f.Data) {
			fmt.Fprintf(c.w, "BASE exceeds buffer.\n")
			return 1
		}
		base = len(f.Data) + n
	}

	if count >= 0 {
		if base+count >= len(f.Data) {
			fmt.Fprintf(c.w, "Cursor exceeds buffer.\n")
			return 1
		}
	} else {
		if -count >= base {
			fmt.Fprintf(c.w, "Cursor exceeds buffer.\n")
			return 1
		}
	}
	f.Cursor = base + count
	return 0
}

func (c *commands) cursorGoto(args []string) int {
	m := NewMatcher(args, c.store)
	addr, err := m.Size()
	if err != nil {
		fmt.Fprintf(c.w, "goto: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "goto: %v\n", err)
		return 1
	}

	if addr >= len(f.Data) {
		fmt.Fprintf(c.w, "goto: ADDR exceeds buffer.\n")
		return 1
	}
	f.Cursor = addr
	return 0
}

func (c *commands) cursor(args []string) int {
	const (
		styleBin = iota
		styleOct
		styleDec
		styleHex
	)
	m := NewMatcher(args, c.store)
	style, err := m.SelectDefault([]string{"bin", "oct", "dec", "hex"}, styleHex)
	if err != nil {
		fmt.Fprintf(c.w, "cursor: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "cursor: %v\n", err)
		return 1
	}

	switch style {
	case styleBin:
		fmt.Fprintf(c.w, "%064b\n", f.Cursor)
	case styleOct:
		fmt.Fprintf(c.w, "%o\n", f.Cursor)
	case styleDec:
		fmt.Fprintf(c.w, "%d\n", f.Cursor)
	default:
		fmt.Fprintf(c.w, "%x\n", f.Cursor)
	}
	return 0
}
