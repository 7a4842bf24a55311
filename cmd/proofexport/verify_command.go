package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/gopeano/pkg/logic"
	"github.com/gitrdm/gopeano/pkg/theorems"
)

type verifyCommand struct {
	ui cli.Ui
}

func (c *verifyCommand) Synopsis() string {
	return "Check that a directory's .proof files match the theorem registry"
}

func (c *verifyCommand) Help() string {
	return strings.TrimSpace(`
Usage: proofexport verify [options]

  Re-renders every registered theorem and compares it against
  <root>/<name>.proof, reporting every mismatch: a registered theorem
  with no file, a file with no matching registered theorem, or a file
  whose content has drifted from what the theorem currently proves.

Options:

  -root=PATH         Directory containing transcripts (default: ".")
  -log-level=LEVEL   Log level: trace, debug, info, warn, error (default: "info")
`)
}

func (c *verifyCommand) Run(args []string) int {
	var root, logLevel string

	flags := flag.NewFlagSet("verify", flag.ContinueOnError)
	flags.StringVar(&root, "root", ".", "directory containing transcripts")
	flags.StringVar(&logLevel, "log-level", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "proofexport",
		Level: hclog.LevelFromString(logLevel),
	})

	if err := verifyAll(logger, root); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	c.ui.Output("all transcripts match the registry")
	return 0
}

func verifyAll(logger hclog.Logger, root string) error {
	registry := theorems.Registry()

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading root directory: %w", err)
	}

	onDisk := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".proof" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".proof")
		onDisk[name] = filepath.Join(root, e.Name())
	}

	var result *multierror.Error

	for name, prove := range registry {
		path, found := onDisk[name]
		if !found {
			logger.Error("missing transcript", "theorem", name)
			result = multierror.Append(result, fmt.Errorf("missing transcript for theorem %q", name))
			continue
		}
		delete(onDisk, name)

		want, err := renderTranscript(prove)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("theorem %q no longer proves a valid transcript: %w", name, err))
			continue
		}

		got, err := os.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("reading %s: %w", path, err))
			continue
		}

		if string(got) != want {
			logger.Error("transcript content drift", "theorem", name, "path", path)
			result = multierror.Append(result, fmt.Errorf("%s does not match the current transcript for %q", path, name))
		}
	}

	for name, path := range onDisk {
		logger.Error("extra transcript", "theorem", name, "path", path)
		result = multierror.Append(result, fmt.Errorf("%s has no registered theorem named %q", path, name))
	}

	return result.ErrorOrNil()
}

func renderTranscript(prove func(*logic.ProofBuilder) logic.Formula) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("theorem panicked: %v", r)
		}
	}()

	b := logic.NewProofBuilder(false)
	prove(b)
	b.SimplifyProof()
	if err := logic.CheckProof(b.Proof()); err != nil {
		return "", err
	}
	return b.String(), nil
}
