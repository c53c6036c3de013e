// Package oscmd registers the commands that touch the operating system plus
// the small session builtins: echo, exit, command, cd, pwd and help.
package oscmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tevino/abool/v2"

	"ben/internal/command"
)

// Init registers the passthrough commands. The exit command raises exited;
// the surrounding session checks it after each line.
func Init(reg *command.Registry, exited *abool.AtomicBool, w io.Writer) {
	c := &commands{reg: reg, exited: exited, w: w}

	reg.Register("echo", c.echo)
	reg.Register("exit", c.exit)
	reg.RegisterHelp("command", c.command, func(name string, w io.Writer) {
		fmt.Fprintf(w, "usage: command COMMAND [ARG]...\n")
	})
	reg.Register("cd", c.cd)
	reg.Register("pwd", c.pwd)
	reg.RegisterHelp("help", c.help, func(name string, w io.Writer) {
		fmt.Fprintf(w, "usage: help COMMAND\n")
	})
}

type commands struct {
	reg    *command.Registry
	exited *abool.AtomicBool
	w      io.Writer
}

func (c *commands) echo(args []string) int {
	fmt.Fprintln(c.w, strings.Join(args[1:], " "))
	return 0
}

func (c *commands) exit(args []string) int {
	c.exited.Set()
	return 0
}

func (c *commands) command(args []string) int {
	if len(args) < 2 {
		return 0
	}

	cmd := exec.Command(args[1], args[2:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(c.w, "command: %s: %v\n", args[1], err)
		return 1
	}
	return 0
}

func (c *commands) cd(args []string) int {
	if len(args) > 2 {
		fmt.Fprintf(c.w, "cd: Too many arguments.\n")
	}

	var dst string
	if len(args) < 2 {
		dst = os.Getenv("HOME")
		if dst == "" {
			fmt.Fprintf(c.w, "cd: HOME is not set.\n")
			return 1
		}
	} else {
		dst = args[1]
	}

	if err := os.Chdir(dst); err != nil {
		fmt.Fprintf(c.w, "cd: %s: %v\n", dst, err)
	}
	return 0
}

func (c *commands) pwd(args []string) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(c.w, "pwd: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.w, cwd)
	return 0
}

func (c *commands) help(args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(c.w, "usage: help COMMAND\nCommands: %s\n", strings.Join(c.reg.Names(), " "))
		return 0
	}
	return c.reg.Help(args[1])
}
