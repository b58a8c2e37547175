package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/govalues/daxie"
)

const usage = `usage:
  daxie render <amount>...   capitalized numeral of each amount
  daxie minor <major>...     major-unit string to minor units
  daxie major <minor>...     minor units to grouped major-unit string
  daxie group <amount>...    insert thousands separators
  daxie serve [-config path] run the HTTP service
`

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// run executes one command and returns the process exit code.
// Results go to stdout one per line; failures go to stderr and the remaining
// arguments are still processed.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	cmd, args := args[0], args[1:]

	var convert func(string) (string, error)
	switch cmd {
	case "render":
		convert = daxie.Render
	case "minor":
		convert = func(s string) (string, error) {
			m, err := daxie.MajorToMinor(s)
			return strconv.FormatInt(m, 10), err
		}
	case "major":
		convert = func(s string) (string, error) {
			m, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return "", fmt.Errorf("parsing minor units %q: %w", s, err)
			}
			return daxie.MinorToMajor(m), nil
		}
	case "group":
		convert = func(s string) (string, error) {
			return daxie.FormatGrouped(s), nil
		}
	case "serve":
		if err := serve(args, stderr); err != nil {
			fmt.Fprintf(stderr, "daxie: %v\n", err)
			return exitFail
		}
		return exitOK
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "daxie: unknown command %q\n%s", cmd, usage)
		return exitUsage
	}

	if len(args) == 0 {
		fmt.Fprintf(stderr, "daxie %s: no arguments\n%s", cmd, usage)
		return exitUsage
	}
	code := exitOK
	for _, arg := range args {
		out, err := convert(arg)
		if err != nil {
			fmt.Fprintf(stderr, "daxie %s: %v\n", cmd, err)
			code = exitFail
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	return code
}
