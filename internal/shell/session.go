// Package shell runs the interactive session: it wires the variable store,
// command registry and executor together and drives the read-eval loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"

	"ben/internal/buffer"
	"ben/internal/command"
	"ben/internal/exec"
	"ben/internal/hash"
	"ben/internal/history"
	"ben/internal/oscmd"
	"ben/internal/printer"
	"ben/internal/readline"
	"ben/internal/vars"
	"ben/internal/zlib"
)

var errColor = color.New(color.FgRed)

type lineReader interface {
	ReadLine(prompt string) (string, error)
}

type Session struct {
	vars     *vars.Store
	commands *command.Registry
	executor *exec.Executor
	history  *history.Manager
	input    lineReader
	store    *buffer.Store
	exited   *abool.AtomicBool
	out      io.Writer
	errOut   io.Writer
}

func New() *Session {
	return newSession(os.Stdout, os.Stderr, nil)
}

func newSession(out, errOut io.Writer, input lineReader) *Session {
	v := vars.New()
	v.SetDefaults()
	exited := abool.New()
	reg := command.New(v, out)
	store := buffer.NewStore()
	hist := history.New()
	if input == nil {
		input = readline.New(hist)
	}

	s := &Session{
		vars:     v,
		commands: reg,
		executor: exec.New(v, reg, exited),
		history:  hist,
		input:    input,
		store:    store,
		exited:   exited,
		out:      out,
		errOut:   errOut,
	}

	buffer.Init(reg, store, out)
	printer.Init(reg, store, out)
	zlib.Init(reg, store, out)
	hash.Init(reg, store, out)
	oscmd.Init(reg, exited, out)
	return s
}

// Store exposes the buffer store so startup code can preload files.
func (s *Session) Store() *buffer.Store {
	return s.store
}

// Vars exposes the variable store.
func (s *Session) Vars() *vars.Store {
	return s.vars
}

// Run drives the read-eval loop until the exit command or end of input.
func (s *Session) Run() error {
	signal.Ignore(os.Interrupt)

	for !s.exited.IsSet() {
		line, err := s.input.ReadLine(s.vars.Get("PROMPT"))
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		s.cycle(line)
		if s.exited.IsSet() {
			break
		}
		if line != "" {
			s.history.Add(line)
		}
	}

	fmt.Fprintln(s.out, "exit")
	s.history.Save()
	return nil
}

// cycle runs PRE_COMMAND, the user's line, then POST_COMMAND. The first
// tokenize or substitution error aborts the rest of the cycle; state changed
// by statements that already ran stays changed.
func (s *Session) cycle(line string) {
	err := s.executor.ExecuteLine(s.vars.Get("PRE_COMMAND"))
	if err == nil {
		err = s.executor.ExecuteLine(line)
	}
	if err == nil && !s.exited.IsSet() {
		err = s.executor.ExecuteLine(s.vars.Get("POST_COMMAND"))
	}
	if err != nil {
		errColor.Fprintf(s.errOut, "ben: %v\n", err)
	}
}
