// Program golox runs scripts, or starts an interactive prompt when
// invoked without arguments.
//
// Usage: golox [script]
//
// With a script argument the file is executed and the process exits
// with 0 on success, 65 after a scan/parse error, 66 when the file
// does not exist, 70 after a runtime error and 71 when reading fails.
// Without arguments an interactive session starts; end it with Ctrl-D.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/mkoval/golox"
)

func main() {
	getopt.SetParameters("[script]")
	help := getopt.BoolLong("help", 'h', "print this help message")
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(golox.ExitOK)
	}

	args := getopt.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", os.Args[0])
		os.Exit(golox.ExitUsage)
	}

	runner := golox.NewRunner(os.Stdout, os.Stderr)
	if len(args) == 1 {
		os.Exit(runner.RunFile(args[0]))
	}
	os.Exit(runner.RunPrompt(os.Stdin))
}
