package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strategium/pairings/internal/logic"
	"github.com/strategium/pairings/internal/models"
	"github.com/strategium/pairings/internal/pairing"
)

func newOptimizeCommand(opts *globalOptions) *cobra.Command {
	var (
		trials      int
		parallelism int
		top         int
	)
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the best opening defender and attacker pair",
		Long: `Simulates every (defender, attacker pair) commitment of the own roster against
a uniformly random opponent and reports the one with the highest average total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(opts.scenario)
			if err != nil {
				return err
			}
			if trials > 0 {
				s.Trials = trials
			}

			opt := &pairing.Optimizer{Matrix: s.matrix(), Rand: opts.rng(), Parallelism: parallelism}
			res, err := opt.Optimize(cmd.Context(), s.Own, s.Opponent, s.Trials)
			if err != nil {
				return err
			}

			out := logic.OptimizationModel(res)
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printOptimization(cmd.OutOrStdout(), out, top)
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 0, "Trial budget (overrides the scenario)")
	cmd.Flags().IntVarP(&parallelism, "parallel", "p", 1, "Strategies simulated at once")
	cmd.Flags().IntVar(&top, "top", 5, "Strategies listed in table output")

	return cmd
}

func printOptimization(w io.Writer, r *models.OptimizationResult, top int) {
	fmt.Fprintf(w, "Best defender:  %s\n", r.BestDefender)
	fmt.Fprintf(w, "Best attackers: %s\n", strings.Join(r.BestAttackers, " + "))
	fmt.Fprintf(w, "Expected total: %.2f (best %.2f, worst %.2f)\n", r.ExpectedScore, r.BestCaseScore, r.WorstCaseScore)
	fmt.Fprintf(w, "Trials:         %d per strategy, confidence %.2f\n", r.SimulationsRun, r.Confidence)
	if r.Degenerate {
		fmt.Fprintln(w, "Warning: no strategy scores above zero")
	}

	fmt.Fprintln(w, "\nIf they defend with     send")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, opp := range sortedKeys(r.DecisionTree) {
		fmt.Fprintf(tw, "  %s\t%s\n", opp, r.DecisionTree[opp])
	}
	tw.Flush()

	ranked := append([]models.StrategySummary(nil), r.Strategies...)
	sortStrategies(ranked)
	if top > len(ranked) {
		top = len(ranked)
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEFENDER\tATTACKERS\tEXPECTED\tBEST\tWORST")
	for _, s := range ranked[:top] {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\n", s.Defender, strings.Join(s.Attackers, " + "), s.ExpectedScore, s.BestCase, s.WorstCase)
	}
	tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
