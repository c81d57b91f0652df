// Command undersized demonstrates what happens when a program allocates
// less memory than a data type requires. It runs an allocation placement
// probe and an overlapping-views walkthrough; the genuinely out-of-bounds
// demonstration is opt-in because it may crash the process.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/memdemo/undersized/alloc"
	"github.com/memdemo/undersized/demo"
)

// oomExitCode distinguishes allocation failure from every other exit.
const oomExitCode = 93

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("undersized", flag.ContinueOnError)
	fs.SetOutput(stderr)
	giant := fs.Bool("g", false, "also run the extreme overlap demonstration (may crash the process)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	steps := []func(io.Writer) error{demo.Probe, demo.Overlap}
	if *giant {
		steps = append(steps, demo.Extreme)
	}

	for i, step := range steps {
		if i > 0 {
			fmt.Fprintln(stdout, "\n====================================================")
			fmt.Fprintln(stdout)
		}
		if err := step(stdout); err != nil {
			if errors.Is(err, alloc.ErrOutOfMemory) {
				fmt.Fprintln(stderr, "Out of memory.")
				return oomExitCode
			}
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}
