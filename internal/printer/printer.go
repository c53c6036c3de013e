// Package printer interprets bytes at the cursor as scalar values, strings
// or an xxd-style dump.
package printer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"

	"ben/internal/buffer"
	"ben/internal/command"
)

var highlight = color.New(color.Bold, color.ReverseVideo)

// Printer holds the shared byte-order flag the endian command toggles.
type Printer struct {
	store     *buffer.Store
	w         io.Writer
	bigEndian bool
}

// Init registers the print, endian, string and xd commands.
func Init(reg *command.Registry, store *buffer.Store, w io.Writer) *Printer {
	p := &Printer{store: store, w: w}

	reg.RegisterHelp("print", p.print, helpPrint)
	reg.RegisterHelp("endian", p.endian, func(name string, w io.Writer) {
		fmt.Fprint(w, "usage: endian [big|little]\nQuery or set byte order used by print.\n")
	})
	reg.RegisterHelp("string", p.str, func(name string, w io.Writer) {
		fmt.Fprint(w, `usage: string [LEN [BUF]]
Print LEN bytes beginning from cursor as ASCII string.
If LEN is not specified, prints following printable ASCII
characters.
`)
	})
	reg.RegisterHelp("xd", p.xd, func(name string, w io.Writer) {
		fmt.Fprint(w, "usage: xd [BUF]\nDump bytes around cursor like xxd(1).\n")
	})
	return p
}

func helpPrint(name string, w io.Writer) {
	fmt.Fprint(w, `usage: print TYPE [bin|oct|dec|hex] [BUF]
Interpret byte array beginning from cursor position as given TYPE
and print.
You can check and specify byte-order with the endian command.
If BUF is omitted, use previously used buffer.

Possible types:
  char    ASCII character.
  uint8   unsigned int with 8-bit width.
  uint16  unsigned int with 16-bit width.
  uint32  unsigned int with 32-bit width.
  uint64  unsigned int with 64-bit width.
  int8    two's complement 8-bit integer.
  int16   two's complement 16-bit integer.
  int32   two's complement 32-bit integer.
  int64   two's complement 64-bit integer.
  float   IEEE 754 single precision floating point number.
  double  IEEE 754 double precision floating point number.
`)
}

func (p *Printer) byteOrder() binary.ByteOrder {
	if p.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (p *Printer) endian(args []string) int {
	if len(args) < 2 {
		if p.bigEndian {
			fmt.Fprintf(p.w, "big endian\n")
		} else {
			fmt.Fprintf(p.w, "little endian\n")
		}
		return 0
	}

	m := buffer.NewMatcher(args, p.store)
	sel, err := m.Select([]string{"little", "big"})
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(p.w, "endian: %v\n", err)
		return 1
	}
	p.bigEndian = sel == 1
	return 0
}

const (
	styleBin = iota
	styleOct
	styleDec
	styleHex
)

var styleNames = []string{"bin", "oct", "dec", "hex"}

func (p *Printer) printValue(value uint64, bits int, style int) {
	switch style {
	case styleBin:
		fmt.Fprintf(p.w, "%0*b\n", bits, value)
	case styleOct:
		fmt.Fprintf(p.w, "%o\n", value)
	case styleHex:
		fmt.Fprintf(p.w, "%x\n", value)
	}
}

func (p *Printer) print(args []string) int {
	types := []string{
		"char", "uint8", "uint16", "uint32", "uint64",
		"int8", "int16", "int32", "int64", "float", "double",
	}

	if len(args) < 2 {
		helpPrint(args[0], p.w)
		return 1
	}

	m := buffer.NewMatcher(args, p.store)
	typ, err := m.Select(types)
	if err != nil {
		fmt.Fprintf(p.w, "print: %v\n", err)
		return 1
	}
	style, err := m.SelectDefault(styleNames, styleDec)
	if err != nil {
		fmt.Fprintf(p.w, "print: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(p.w, "print: %v\n", err)
		return 1
	}

	width := map[string]int{
		"char": 1, "uint8": 1, "int8": 1,
		"uint16": 2, "int16": 2,
		"uint32": 4, "int32": 4, "float": 4,
		"uint64": 8, "int64": 8, "double": 8,
	}[types[typ]]
	if len(f.Data)-f.Cursor < width {
		fmt.Fprintf(p.w, "print: value exceeds buffer.\n")
		return 1
	}

	region := f.Data[f.Cursor:]
	order := p.byteOrder()

	switch types[typ] {
	case "char":
		p.printChar(region[0])
		fmt.Fprintln(p.w)
	case "uint8":
		p.printUint(uint64(region[0]), 8, style)
	case "uint16":
		p.printUint(uint64(order.Uint16(region)), 16, style)
	case "uint32":
		p.printUint(uint64(order.Uint32(region)), 32, style)
	case "uint64":
		p.printUint(order.Uint64(region), 64, style)
	case "int8":
		p.printInt(int64(int8(region[0])), 8, style)
	case "int16":
		p.printInt(int64(int16(order.Uint16(region))), 16, style)
	case "int32":
		p.printInt(int64(int32(order.Uint32(region))), 32, style)
	case "int64":
		p.printInt(int64(order.Uint64(region)), 64, style)
	case "float":
		p.printFloat(float64(math.Float32frombits(order.Uint32(region))), uint64(order.Uint32(region)), 32, style)
	case "double":
		p.printFloat(math.Float64frombits(order.Uint64(region)), order.Uint64(region), 64, style)
	}
	return 0
}

func (p *Printer) printUint(v uint64, bits, style int) {
	if style == styleDec {
		fmt.Fprintf(p.w, "%d\n", v)
		return
	}
	p.printValue(v, bits, style)
}

// Non-decimal styles print the two's complement bit pattern of the value at
// its declared width.
func (p *Printer) printInt(v int64, bits, style int) {
	if style == styleDec {
		fmt.Fprintf(p.w, "%d\n", v)
		return
	}
	mask := ^uint64(0)
	if bits < 64 {
		mask = (uint64(1) << bits) - 1
	}
	p.printValue(uint64(v)&mask, bits, style)
}

func (p *Printer) printFloat(v float64, raw uint64, bits, style int) {
	if style == styleDec {
		fmt.Fprintf(p.w, "%v\n", v)
		return
	}
	p.printValue(raw, bits, style)
}

func (p *Printer) printChar(c byte) {
	if isPrint(c) {
		fmt.Fprintf(p.w, "%c", c)
	} else {
		fmt.Fprintf(p.w, "\\x%02x", c)
	}
}

func (p *Printer) str(args []string) int {
	m := buffer.NewMatcher(args, p.store)
	length, err := m.SizeDefault(0)
	if err != nil {
		fmt.Fprintf(p.w, "string: %v\n", err)
		return 1
	}
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(p.w, "string: %v\n", err)
		return 1
	}

	if length != 0 {
		for pos := f.Cursor; pos < len(f.Data) && pos < f.Cursor+length; pos++ {
			p.printChar(f.Data[pos])
		}
		fmt.Fprintln(p.w)
		return 0
	}

	any := false
	for pos := f.Cursor; pos < len(f.Data) && isPrint(f.Data[pos]); pos++ {
		p.printChar(f.Data[pos])
		any = true
	}
	if any {
		fmt.Fprintln(p.w)
	}
	return 0
}

// xd dumps a 256-byte window starting at the 16-byte row containing the
// cursor, with the cursor byte highlighted in both the hex and ASCII
// columns.
func (p *Printer) xd(args []string) int {
	m := buffer.NewMatcher(args, p.store)
	f, err := m.FileOrDefault()
	if err == nil {
		err = m.MustNotRemain()
	}
	if err != nil {
		fmt.Fprintf(p.w, "xd: %v\n", err)
		return 1
	}

	begin := f.Cursor &^ 0xf
	end := begin + 0x100
	if end > len(f.Data) {
		end = len(f.Data)
	}

	for row := begin; row < end || row == begin; row += 16 {
		if row >= len(f.Data) {
			break
		}
		fmt.Fprintf(p.w, "%08x: ", row)

		for i := row; i < row+16; i++ {
			if i < len(f.Data) && i < end {
				cell := fmt.Sprintf("%02x", f.Data[i])
				if i == f.Cursor {
					cell = highlight.Sprint(cell)
				}
				fmt.Fprint(p.w, cell)
			} else {
				fmt.Fprint(p.w, "  ")
			}
			if i&0b1 == 1 {
				fmt.Fprint(p.w, " ")
			}
		}

		fmt.Fprint(p.w, " ")
		for i := row; i < row+16 && i < len(f.Data) && i < end; i++ {
			cell := "."
			if isPrint(f.Data[i]) {
				cell = string(f.Data[i])
			}
			if i == f.Cursor {
				cell = highlight.Sprint(cell)
			}
			fmt.Fprint(p.w, cell)
		}
		fmt.Fprintln(p.w)
	}
	return 0
}

func isPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
