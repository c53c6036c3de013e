// Package exec walks a parsed statement sequence and runs it against the
// variable store and the command registry.
package exec

import (
	"github.com/tevino/abool/v2"

	"ben/internal/command"
	"ben/internal/parse"
	"ben/internal/vars"
)

// Executor dispatches statement chains. It holds no hidden globals: the
// store, registry and exit flag are handed in explicitly so the core is
// independently testable.
type Executor struct {
	vars     *vars.Store
	commands *command.Registry
	exited   *abool.AtomicBool
}

func New(vars *vars.Store, commands *command.Registry, exited *abool.AtomicBool) *Executor {
	return &Executor{
		vars:     vars,
		commands: commands,
		exited:   exited,
	}
}

// ExecuteLine tokenizes, parses and executes one input line.
func (e *Executor) ExecuteLine(line string) error {
	stmts, err := parse.Parse(line)
	if err != nil {
		return err
	}
	return e.Execute(stmts)
}

// Execute runs the statements in source order. Assignments expand their raw
// value and store it (the name is never expanded). Commands expand every raw
// argument and dispatch; a command's status does not stop the chain. An
// expansion error aborts the rest of the line; the exit signal stops
// scheduling further statements.
func (e *Executor) Execute(stmts []parse.Statement) error {
	for _, stmt := range stmts {
		if e.exited.IsSet() {
			break
		}

		switch stmt.Kind {
		case parse.StmtAssign:
			value, err := parse.Expand(stmt.Assign.RawValue, e.vars.Get)
			if err != nil {
				return err
			}
			e.vars.Set(stmt.Assign.Name, value)

		case parse.StmtCommand:
			args := make([]string, len(stmt.Command.RawArgs))
			for i, raw := range stmt.Command.RawArgs {
				value, err := parse.Expand(raw, e.vars.Get)
				if err != nil {
					return err
				}
				args[i] = value
			}
			e.commands.Dispatch(args)
		}
	}
	return nil
}
