// ben - interactive binary viewer
// Load files into buffers for analysis, then inspect them through a small
// interactive command line.

package main

import (
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"ben/internal/shell"
)

var (
	version   = "0.3.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	switch longOption(args[1:]) {
	case "--help":
		printUsage()
		return 0
	case "--version":
		printVersion()
		return 0
	}

	opts, optind, err := getopt.Getopts(args, "hv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ben: %v\n", err)
		return 1
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			printUsage()
			return 0
		case 'v':
			printVersion()
			return 0
		}
	}

	session := shell.New()

	fmt.Println("Loading files...")
	for _, path := range args[optind:] {
		fmt.Printf(" - Loading %s...\n", path)
		if _, err := session.Store().Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "ben: failed to load %s: %v\n", path, err)
		}
	}
	session.Store().List(os.Stdout)

	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ben: %v\n", err)
		return 1
	}
	return 0
}

// longOption finds --help or --version among the leading options; the scan
// stops at "--" or the first non-option argument, so a file named
// "--version" after a file argument stays a file.
func longOption(args []string) string {
	for _, arg := range args {
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			return ""
		}
		switch arg {
		case "--help", "--version":
			return arg
		}
	}
	return ""
}

func printUsage() {
	fmt.Print(`usage: ben [OPTION]... [FILE]...
Load FILEs to buffers for analysis then launch interactive
command line.

  -h, --help     Print this message and exit.
  -v, --version  Print version and exit.
`)
}

func printVersion() {
	fmt.Printf("ben %s (built %s, commit %s)\n", version, buildTime, gitCommit)
}
