// Package vars holds the interpreter's variable store. Values are plain
// strings; a handful of well-known names (PROMPT, PRE_COMMAND, POST_COMMAND,
// AUTO_SHELL) double as the session's configuration surface.
package vars

import (
	"strconv"
	"strings"
)

type Store struct {
	vars map[string]string
}

func New() *Store {
	return &Store{
		vars: make(map[string]string),
	}
}

// Get returns the value bound to name, or the empty string when unset.
// Undefined variables are never an error.
func (s *Store) Get(name string) string {
	return s.vars[name]
}

// Set binds name to value, replacing any prior binding.
func (s *Store) Set(name, value string) {
	s.vars[name] = value
}

// SetDefaults installs the variables the session expects to exist.
func (s *Store) SetDefaults() {
	s.Set("PROMPT", "ben> ")
	s.Set("PRE_COMMAND", "")
	s.Set("POST_COMMAND", "xd")
}

// Names returns every bound name, unordered.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	return names
}

// Truthy reports whether expr reads as true: a nonzero leading integer, or
// one of "true", "yes", "on" (case-insensitive).
func Truthy(expr string) bool {
	if n, ok := leadingInt(expr); ok {
		return n != 0
	}
	switch strings.ToLower(expr) {
	case "true", "yes", "on":
		return true
	}
	return false
}

// Falsy reports whether expr reads as false. Note that Truthy and Falsy are
// not complements: an unrecognized word is neither.
func Falsy(expr string) bool {
	if n, ok := leadingInt(expr); ok {
		return n == 0
	}
	switch strings.ToLower(expr) {
	case "false", "no", "off":
		return true
	}
	return false
}

// leadingInt parses an optionally signed integer prefix of expr; trailing
// non-digit text is ignored, so "1x" reads as 1.
func leadingInt(expr string) (int, bool) {
	s := strings.TrimSpace(expr)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
