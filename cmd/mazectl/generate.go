package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	rows      int
	cols      int
	seed      int64
	escape    bool
	solveSeed int64
	symbols   string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Example: `  mazectl generate --rows 11 --cols 31
  mazectl generate --rows 21 --cols 21 --seed 7 --escape`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			if !cmd.Flags().Changed("solve-seed") {
				opts.solveSeed = opts.seed
			}
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.rows, "rows", 11, "Number of rows, walls included")
	flags.IntVar(&opts.cols, "cols", 21, "Number of columns, walls included")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed of the generator (random when unset)")
	flags.BoolVar(&opts.escape, "escape", false, "Mark the escape route")
	flags.Int64Var(&opts.solveSeed, "solve-seed", 0, "Seed used at crossroads while escaping (defaults to --seed)")
	flags.StringVar(&opts.symbols, "symbols", "# .", "Three characters drawing wall, path and route")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	symbols, err := parseSymbols(opts.symbols)
	if err != nil {
		return err
	}

	m, err := maze.New(opts.rows, opts.cols, rand.New(rand.NewSource(opts.seed)))
	if err != nil {
		return err
	}

	if opts.escape {
		if err := m.Escape(rand.New(rand.NewSource(opts.solveSeed))); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, m.Render(symbols))
	fmt.Fprintf(out, "seed: %d\n", opts.seed)
	if opts.escape {
		fmt.Fprintf(out, "route: %d cells\n", len(m.EscapeRoute()))
	}
	return nil
}

func parseSymbols(s string) (maze.Symbols, error) {
	runes := []rune(s)
	if len(runes) != 3 {
		return maze.Symbols{}, fmt.Errorf("symbols %q: want exactly three characters for wall, path and route", s)
	}
	symbols := maze.Symbols{Wall: runes[0], Path: runes[1], Escape: runes[2]}
	if symbols.Wall == symbols.Path || symbols.Wall == symbols.Escape || symbols.Path == symbols.Escape {
		return maze.Symbols{}, fmt.Errorf("symbols %q: characters must be distinct", s)
	}
	return symbols, nil
}
