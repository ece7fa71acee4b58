package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strategium/pairings/internal/logic"
	"github.com/strategium/pairings/internal/models"
	"github.com/strategium/pairings/internal/pairing"
)

// roundFlags select the unpaired pools and the commitments already made.
type roundFlags struct {
	own               []string
	opponent          []string
	ownDefender       string
	opponentDefender  string
	opponentAttackers []string
	playouts          int
}

func newRecommendCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an in-round decision",
		Long: `Plays out the rest of the round many times with the known commitments fixed
and ranks every legal choice. Unpaired pools default to the scenario rosters.`,
	}

	cmd.AddCommand(newDecisionCommand(opts, "defender", "Pick the next own defender", pairing.DecisionPickDefender))
	cmd.AddCommand(newDecisionCommand(opts, "attackers", "Pick the two attackers to send", pairing.DecisionPickAttackers))
	cmd.AddCommand(newDecisionCommand(opts, "matchup", "Pick which revealed attacker the own defender faces", pairing.DecisionPickDefenderMatchup))

	return cmd
}

func newDecisionCommand(opts *globalOptions, use, short string, decision pairing.DecisionType) *cobra.Command {
	f := &roundFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(opts.scenario)
			if err != nil {
				return err
			}
			own, opponent := s.Own, s.Opponent
			if len(f.own) > 0 {
				own = f.own
			}
			if len(f.opponent) > 0 {
				opponent = f.opponent
			}
			playouts := s.Playouts
			if f.playouts > 0 {
				playouts = f.playouts
			}

			ev := &pairing.Evaluator{Matrix: s.matrix(), Rand: opts.rng(), Playouts: playouts}
			var rec *pairing.Recommendation
			switch decision {
			case pairing.DecisionPickDefender:
				rec, err = ev.PickDefender(own, opponent)
			case pairing.DecisionPickAttackers:
				rec, err = ev.PickAttackers(own, opponent, f.ownDefender, f.opponentDefender)
			case pairing.DecisionPickDefenderMatchup:
				rec, err = ev.PickDefenderMatchup(own, opponent, f.ownDefender, f.opponentAttackers)
			}
			if err != nil {
				return err
			}

			out := logic.RecommendationModel(rec)
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printRecommendation(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&f.own, "own", nil, "Unpaired own players")
	cmd.Flags().StringSliceVar(&f.opponent, "opponent", nil, "Unpaired opponent players")
	cmd.Flags().IntVar(&f.playouts, "playouts", 0, "Playouts per candidate (overrides the scenario)")
	switch decision {
	case pairing.DecisionPickAttackers:
		cmd.Flags().StringVar(&f.ownDefender, "own-defender", "", "Committed own defender")
		cmd.Flags().StringVar(&f.opponentDefender, "opponent-defender", "", "Revealed opponent defender")
		_ = cmd.MarkFlagRequired("own-defender")
		_ = cmd.MarkFlagRequired("opponent-defender")
	case pairing.DecisionPickDefenderMatchup:
		cmd.Flags().StringVar(&f.ownDefender, "own-defender", "", "Committed own defender")
		cmd.Flags().StringSliceVar(&f.opponentAttackers, "opponent-attackers", nil, "Revealed opponent attackers")
		_ = cmd.MarkFlagRequired("own-defender")
		_ = cmd.MarkFlagRequired("opponent-attackers")
	}
	return cmd
}

func printRecommendation(w io.Writer, r *models.RecommendationResponse) {
	switch rec := r.Recommendation.(type) {
	case nil:
		fmt.Fprintln(w, "No legal choice")
	case []string:
		fmt.Fprintf(w, "Recommended: %s\n", strings.Join(rec, " + "))
	default:
		fmt.Fprintf(w, "Recommended: %v\n", rec)
	}
	fmt.Fprintf(w, "Expected total: %.2f\n", r.ExpectedTotalScore)
	if r.Degenerate {
		fmt.Fprintln(w, "Warning: options are tied or never score above zero")
	}

	keys := sortedKeys(r.AllOptions)
	sort.SliceStable(keys, func(i, j int) bool { return r.AllOptions[keys[i]] > r.AllOptions[keys[j]] })
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tEXPECTED")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%.2f\n", k, r.AllOptions[k])
	}
	tw.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortStrategies orders by expected total, best first, keeping enumeration
// order among ties.
func sortStrategies(s []models.StrategySummary) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].ExpectedScore > s[j].ExpectedScore })
}
