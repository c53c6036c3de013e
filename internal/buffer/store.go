// Package buffer holds the byte buffers under inspection and the argument
// matcher command handlers use to pick them apart.
package buffer

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Buffer is one loaded byte sequence with its cursor.
type Buffer struct {
	Name   string
	Data   []byte
	Cursor int
}

// Store owns the loaded buffers. Buffers are addressed as %N; looking one up
// by number also makes it the default.
type Store struct {
	buffers      []*Buffer
	defaultIndex int
}

func NewStore() *Store {
	return &Store{}
}

// Load reads path into a new buffer and returns its index. The path "-"
// reads stdin and names the buffer *stdin*.
func (s *Store) Load(path string) (int, error) {
	var data []byte
	var err error
	name := path
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		name = "*stdin*"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return -1, err
	}
	return s.Add(name, data), nil
}

// Add appends a buffer and returns its index.
func (s *Store) Add(name string, data []byte) int {
	s.buffers = append(s.buffers, &Buffer{Name: name, Data: data})
	return len(s.buffers) - 1
}

// Get resolves a buffer representation. The empty string means the default
// buffer; "%N" selects buffer N and makes it the default. Returns nil for an
// invalid representation or an out-of-range index.
func (s *Store) Get(repr string) *Buffer {
	if repr == "" {
		if s.defaultIndex < len(s.buffers) {
			return s.buffers[s.defaultIndex]
		}
		return nil
	}

	if len(repr) < 2 || repr[0] != '%' || !allDigits(repr[1:]) {
		return nil
	}
	n, err := strconv.Atoi(repr[1:])
	if err != nil || n >= len(s.buffers) {
		return nil
	}
	s.defaultIndex = n
	return s.buffers[n]
}

// DefaultIndex returns the current default buffer index and whether it names
// a loaded buffer.
func (s *Store) DefaultIndex() (int, bool) {
	return s.defaultIndex, s.defaultIndex < len(s.buffers)
}

// Len returns the number of loaded buffers.
func (s *Store) Len() int {
	return len(s.buffers)
}

// List writes one " %N: name" line per buffer.
func (s *Store) List(w io.Writer) {
	for i, b := range s.buffers {
		fmt.Fprintf(w, " %%%d: %s\n", i, b.Name)
	}
}
