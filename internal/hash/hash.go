// Package hash adds the command that digests a region of a buffer.
package hash

import (
	"fmt"
	"io"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zeebo/blake3"

	"ben/internal/buffer"
	"ben/internal/command"
)

// Init registers the hash command.
func Init(reg *command.Registry, store *buffer.Store, w io.Writer) {
	c := &commands{store: store, w: w}
	reg.RegisterHelp("hash", c.hash, func(name string, w io.Writer) {
		fmt.Fprint(w, `usage: hash [blake3|fnv1a] [LEN [BUF]]
Digest LEN bytes beginning from cursor and print the result in hex.
If LEN is omitted, digests the rest of the buffer.
`)
	})
}

type commands struct {
	store *buffer.Store
	w     io.Writer
}

func (c *commands) hash(args []string) int {
	m := buffer.NewMatcher(args, c.store)
	algo, err := m.SelectDefault([]string{"blake3", "fnv1a"}, 0)
	if err != nil {
		fmt.Fprintf(c.w, "hash: %v\n", err)
		return 1
	}
	length, err := m.SizeDefault(-1)
	if err != nil {
		fmt.Fprintf(c.w, "hash: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "hash: %v\n", err)
		return 1
	}

	remain := len(f.Data) - f.Cursor
	if length < 0 {
		length = remain
	}
	if length > remain {
		fmt.Fprintf(c.w, "hash: LEN exceeds buffer.\n")
		return 1
	}
	region := f.Data[f.Cursor : f.Cursor+length]

	switch algo {
	case 0:
		h := blake3.New()
		h.Write(region)
		fmt.Fprintf(c.w, "%x\n", h.Sum(nil))
	case 1:
		fmt.Fprintf(c.w, "%016x\n", fnv1a.HashBytes64(region))
	}
	return 0
}
