package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/gitrdm/gopeano/internal/workpool"
	"github.com/gitrdm/gopeano/pkg/logic"
	"github.com/gitrdm/gopeano/pkg/theorems"
)

type exportCommand struct {
	ui cli.Ui
}

func (c *exportCommand) Synopsis() string {
	return "Render every registered theorem to a .proof transcript file"
}

func (c *exportCommand) Help() string {
	return strings.TrimSpace(`
Usage: proofexport export [options]

  Builds a proof for every theorem in pkg/theorems' registry, simplifies
  it, asserts it is valid, and writes <root>/<name>.proof.

Options:

  -root=PATH         Directory to write transcripts into (default: ".")
  -log-level=LEVEL   Log level: trace, debug, info, warn, error (default: "info")
`)
}

func (c *exportCommand) Run(args []string) int {
	var root, logLevel string

	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	flags.StringVar(&root, "root", ".", "directory to write transcripts into")
	flags.StringVar(&logLevel, "log-level", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "proofexport",
		Level: hclog.LevelFromString(logLevel),
	})

	if err := os.MkdirAll(root, 0o755); err != nil {
		c.ui.Error(fmt.Sprintf("creating root directory: %v", err))
		return 1
	}

	registry := theorems.Registry()
	jobs := make([]workpool.Job, 0, len(registry))
	for name, prove := range registry {
		name, prove := name, prove
		jobs = append(jobs, workpool.Job{
			Name: name,
			Run: func() error {
				return exportOne(logger, root, name, prove)
			},
		})
	}

	results := workpool.RunAll(context.Background(), len(jobs), jobs)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("theorem rejected", "theorem", r.Name, "error", r.Err)
			c.ui.Error(fmt.Sprintf("%s: %v", r.Name, r.Err))
		} else {
			c.ui.Output(fmt.Sprintf("wrote %s.proof", r.Name))
		}
	}

	if failed > 0 {
		c.ui.Error(fmt.Sprintf("%d of %d theorems failed to export", failed, len(jobs)))
		return 1
	}
	return 0
}

func exportOne(logger hclog.Logger, root, name string, prove func(*logic.ProofBuilder) logic.Formula) error {
	logger.Debug("exporting theorem", "theorem", name)

	b := logic.NewProofBuilder(false)
	prove(b)
	b.SimplifyProof()

	if err := logic.CheckProof(b.Proof()); err != nil {
		return fmt.Errorf("transcript for %s is invalid: %w", name, err)
	}

	transcript := b.String()
	path := filepath.Join(root, name+".proof")
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Info("wrote transcript", "theorem", name, "path", path, "bytes", len(transcript))
	return nil
}
