package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions are shared by every subcommand.
type globalOptions struct {
	seed     int64
	format   string
	scenario string
}

func (o *globalOptions) rng() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (o *globalOptions) validate() error {
	if o.format != "table" && o.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", o.format)
	}
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "pairctl",
		Short: "Pairing strategy search for team tournaments",
		Long: `pairctl evaluates team pairing rounds offline.

A scenario file lists both rosters and the predicted score of every own player
against every opponent. Use "optimize" for the opening commitment and
"recommend" for decisions inside a round.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.scenario, "scenario", "s", "scenario.yaml", "Scenario YAML file")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")

	cmd.AddCommand(newOptimizeCommand(opts))
	cmd.AddCommand(newRecommendCommand(opts))

	return cmd
}
