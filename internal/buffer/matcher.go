package buffer

import (
	"errors"
	"strconv"
)

// Matcher errors surfaced in command diagnostics.
var (
	ErrMissingArg    = errors.New("Mandatory argument omitted.")
	ErrBadValue      = errors.New("Arg value is not allowed.")
	ErrExpectInteger = errors.New("Expect integer value.")
	ErrOutOfRange    = errors.New("Argument is out of range.")
	ErrBadBuffer     = errors.New("Invalid buffer representation.")
	ErrNoBuffer      = errors.New("Buffer not found.")
	ErrNoDefault     = errors.New("No default buffer selected.")
	ErrTooManyArgs   = errors.New("Too many arguments.")
)

// Matcher consumes a command's argument list left to right, starting after
// the command name. Numeric arguments accept 0x/0o/0b prefixes.
type Matcher struct {
	args  []string
	pos   int
	store *Store
}

func NewMatcher(args []string, store *Store) *Matcher {
	return &Matcher{args: args, pos: 1, store: store}
}

// String consumes a mandatory string argument.
func (m *Matcher) String() (string, error) {
	if m.pos < len(m.args) {
		arg := m.args[m.pos]
		m.pos++
		return arg, nil
	}
	return "", ErrMissingArg
}

// StringDefault consumes an optional string argument.
func (m *Matcher) StringDefault(def string) string {
	if m.pos < len(m.args) {
		arg := m.args[m.pos]
		m.pos++
		return arg
	}
	return def
}

// Select consumes a mandatory argument that must equal one of items and
// returns its index.
func (m *Matcher) Select(items []string) (int, error) {
	if m.pos >= len(m.args) {
		return 0, ErrMissingArg
	}
	arg := m.args[m.pos]
	m.pos++
	for i, item := range items {
		if item == arg {
			return i, nil
		}
	}
	return 0, ErrBadValue
}

// SelectDefault is Select with a default index. An argument that matches no
// item is not consumed; it stays for the next matcher and def is returned.
func (m *Matcher) SelectDefault(items []string, def int) (int, error) {
	if m.pos >= len(m.args) {
		return def, nil
	}
	arg := m.args[m.pos]
	for i, item := range items {
		if item == arg {
			m.pos++
			return i, nil
		}
	}
	return def, nil
}

// Size consumes a mandatory unsigned integer argument.
func (m *Matcher) Size() (int, error) {
	if m.pos >= len(m.args) {
		return 0, ErrMissingArg
	}
	return m.parseSize()
}

// SizeDefault consumes an optional unsigned integer argument. A non-numeric
// argument is not consumed and def is returned; a numeric argument that
// overflows is still an error.
func (m *Matcher) SizeDefault(def int) (int, error) {
	if m.pos >= len(m.args) {
		return def, nil
	}
	v, err := m.parseSize()
	if err == ErrExpectInteger {
		return def, nil
	}
	return v, err
}

func (m *Matcher) parseSize() (int, error) {
	v, err := strconv.ParseUint(m.args[m.pos], 0, 63)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrExpectInteger
	}
	m.pos++
	return int(v), nil
}

// Diff consumes a mandatory signed integer argument.
func (m *Matcher) Diff() (int, error) {
	if m.pos >= len(m.args) {
		return 0, ErrMissingArg
	}
	return m.parseDiff()
}

// DiffDefault consumes an optional signed integer argument, with the same
// fall-through rule as SizeDefault.
func (m *Matcher) DiffDefault(def int) (int, error) {
	if m.pos >= len(m.args) {
		return def, nil
	}
	v, err := m.parseDiff()
	if err == ErrExpectInteger {
		return def, nil
	}
	return v, err
}

func (m *Matcher) parseDiff() (int, error) {
	v, err := strconv.ParseInt(m.args[m.pos], 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrExpectInteger
	}
	m.pos++
	return int(v), nil
}

// File consumes a mandatory %N buffer argument, selecting that buffer.
func (m *Matcher) File() (*Buffer, error) {
	if m.pos >= len(m.args) {
		return nil, ErrMissingArg
	}
	arg := m.args[m.pos]
	m.pos++
	if len(arg) < 2 || arg[0] != '%' || !allDigits(arg[1:]) {
		return nil, ErrBadBuffer
	}
	b := m.store.Get(arg)
	if b == nil {
		return nil, ErrNoBuffer
	}
	return b, nil
}

// FileOrDefault consumes an optional %N buffer argument; with one present it
// selects (and returns) that buffer, otherwise it returns the current
// default. An argument not of the %N form is not consumed.
func (m *Matcher) FileOrDefault() (*Buffer, error) {
	if m.pos < len(m.args) {
		arg := m.args[m.pos]
		if len(arg) >= 2 && arg[0] == '%' && allDigits(arg[1:]) {
			m.pos++
			b := m.store.Get(arg)
			if b == nil {
				return nil, ErrNoBuffer
			}
			return b, nil
		}
	}
	b := m.store.Get("")
	if b == nil {
		return nil, ErrNoDefault
	}
	return b, nil
}

// Rest consumes and returns all remaining arguments.
func (m *Matcher) Rest() []string {
	rest := append([]string(nil), m.args[m.pos:]...)
	m.pos = len(m.args)
	return rest
}

// MustNotRemain fails when unconsumed arguments remain.
func (m *Matcher) MustNotRemain() error {
	if m.pos != len(m.args) {
		return ErrTooManyArgs
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
