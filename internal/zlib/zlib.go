// Package zlib adds the command that inflates a region of a buffer into a
// new buffer.
package zlib

import (
	"bytes"
	"fmt"
	"io"

	kzlib "github.com/klauspost/compress/zlib"

	"ben/internal/buffer"
	"ben/internal/command"
)

// Init registers the zlib command.
func Init(reg *command.Registry, store *buffer.Store, w io.Writer) {
	c := &commands{store: store, w: w}
	reg.RegisterHelp("zlib", c.zlib, func(name string, w io.Writer) {
		fmt.Fprint(w, `usage: zlib LEN [BUF]
Inflate the LEN bytes at the cursor and add the decompressed
byte array as a new buffer.
`)
	})
}

type commands struct {
	store *buffer.Store
	w     io.Writer
}

func (c *commands) zlib(args []string) int {
	m := buffer.NewMatcher(args, c.store)
	length, err := m.Size()
	if err != nil {
		fmt.Fprintf(c.w, "zlib: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(c.w, "zlib: %v\n", err)
		return 1
	}

	if len(f.Data)-f.Cursor < length {
		fmt.Fprintf(c.w, "zlib: LEN exceeds buffer.\n")
		return 1
	}

	data, err := inflate(f.Data[f.Cursor : f.Cursor+length])
	if err != nil {
		fmt.Fprintf(c.w, "zlib error: %v\n", err)
		return 1
	}

	n := c.store.Add(fmt.Sprintf("%s#z%d", f.Name, f.Cursor), data)
	fmt.Fprintf(c.w, "Added as %%%d\n", n)
	return 0
}

func inflate(compressed []byte) ([]byte, error) {
	r, err := kzlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressed buffer is not complete: %w", err)
	}
	return data, nil
}
