// Package command implements the registry the dispatcher hands expanded
// argument lists to. Unknown names return StatusUnknown, optionally after one
// retry through the shell passthrough when AUTO_SHELL is set.
package command

import (
	"fmt"
	"io"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"ben/internal/vars"
)

// StatusUnknown is the sentinel status for an unregistered command name.
const StatusUnknown = 255

// Func handles one command invocation; args[0] is the command name.
type Func func(args []string) int

// HelpFunc prints usage for a command.
type HelpFunc func(name string, w io.Writer)

type entry struct {
	fn   Func
	help HelpFunc
}

type Registry struct {
	commands map[string]entry
	vars     *vars.Store
	out      io.Writer
}

func New(vars *vars.Store, out io.Writer) *Registry {
	return &Registry{
		commands: make(map[string]entry),
		vars:     vars,
		out:      out,
	}
}

// Register binds name to fn with the default help text.
func (r *Registry) Register(name string, fn Func) {
	r.RegisterHelp(name, fn, defaultHelp)
}

// RegisterHelp binds name to fn with an explicit help printer.
func (r *Registry) RegisterHelp(name string, fn Func, help HelpFunc) {
	if _, exists := r.commands[name]; exists {
		fmt.Fprintf(r.out, "Warning: %s got redefined.\n", name)
	}
	r.commands[name] = entry{fn: fn, help: help}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the command named by args[0]. When the name is unregistered
// and the AUTO_SHELL variable is truthy, the argument list is retried once
// prefixed with the shell passthrough command; otherwise a diagnostic (with a
// close-name suggestion where one exists) is printed and StatusUnknown
// returned. A panicking handler is reported as a bug, not propagated.
func (r *Registry) Dispatch(args []string) (status int) {
	if len(args) == 0 {
		return StatusUnknown
	}

	e, ok := r.commands[args[0]]
	if !ok {
		if vars.Truthy(r.vars.Get("AUTO_SHELL")) && args[0] != "command" {
			if fallback, ok := r.commands["command"]; ok {
				return fallback.fn(append([]string{"command"}, args...))
			}
		}
		fmt.Fprintf(r.out, "ben: %s: command not found\n", args[0])
		if s := r.suggest(args[0]); s != "" {
			fmt.Fprintf(r.out, "Did you mean `%s'?\n", s)
		}
		return StatusUnknown
	}

	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(r.out, "BUG: %v\n", p)
			status = StatusUnknown
		}
	}()
	return e.fn(args)
}

// Help prints the help text registered for name.
func (r *Registry) Help(name string) int {
	e, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(r.out, "ben: %s: command not found\n", name)
		return StatusUnknown
	}
	e.help(name, r.out)
	return 0
}

func (r *Registry) suggest(name string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, r.Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func defaultHelp(name string, w io.Writer) {
	fmt.Fprintf(w, "Help for %s is not provided.\n", name)
}
