// Command proofexport renders the theorems registered in pkg/theorems to
// on-disk proof transcripts, and verifies that a directory's transcripts
// match the registry. It is the one external interface spec.md describes:
// the kernel itself (pkg/logic) does no I/O and knows nothing of files,
// flags, or logging.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("proofexport", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"export": func() (cli.Command, error) { return &exportCommand{ui: ui}, nil },
		"verify": func() (cli.Command, error) { return &verifyCommand{ui: ui}, nil },
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

const version = "0.1.0"
