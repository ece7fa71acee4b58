package pairing

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTrialBudget is the nominal number of trials for one search.
	DefaultTrialBudget = 10000

	// TrialDivisor spreads the trial budget across strategies. It is tuned
	// against DefaultTrialBudget and is not the strategy count (30 for a
	// 5-player roster); changing it changes the statistical output.
	TrialDivisor = 60

	// minRosterSize is one defender plus a two-player attacker pool.
	minRosterSize = 3
)

// Strategy is an own commitment: a defender and the two attackers offered
// against the opponent's defender.
type Strategy struct {
	Defender  string
	Attackers [2]string
}

// StrategyResult summarises the trial totals collected for one strategy.
type StrategyResult struct {
	Strategy
	Trials  int
	Average float64
	Max     float64
	Min     float64
}

// OptimizationResult is the outcome of a strategy search.
type OptimizationResult struct {
	Best StrategyResult
	// Confidence is the share of the nominal trial budget spent on Best.
	Confidence float64
	// ResponseTable maps a revealed opponent defender to the winning
	// attacker that scores better against them.
	ResponseTable map[string]string
	TrialsRun     int
	Elapsed       time.Duration
	// Strategies holds every evaluated strategy in enumeration order.
	Strategies []StrategyResult
	// Degenerate is set when no strategy averages above zero.
	Degenerate bool
}

// Optimizer searches own commitments against a uniformly random opponent.
type Optimizer struct {
	Matrix ScoreMatrix
	Rand   *rand.Rand
	// Parallelism bounds how many strategies are simulated at once. Values
	// below 2 run sequentially. Results do not depend on it.
	Parallelism int
}

// Optimize evaluates every (defender, attacker pair) of own against opponent
// and returns the strategy with the highest average total. Ties go to the
// strategy enumerated first.
func (o *Optimizer) Optimize(ctx context.Context, own, opponent []string, budget int) (*OptimizationResult, error) {
	start := time.Now()

	if err := validateRosters(own, opponent); err != nil {
		return nil, err
	}
	if budget <= 0 {
		return nil, fmt.Errorf("%w: trial budget must be positive, got %d", ErrInvalidRequest, budget)
	}

	strategies := Strategies(own)
	trials := budget / TrialDivisor
	if trials < 1 {
		trials = 1
	}

	// Seeds are drawn up front so the outcome for a fixed generator does not
	// depend on scheduling.
	rng := orDefault(o.Rand)
	seeds := make([]int64, len(strategies))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]StrategyResult, len(strategies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, o.Parallelism))
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			res, err := o.runStrategy(gctx, rand.New(rand.NewSource(seeds[i])), s, own, opponent, trials)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for i := range results {
		if results[i].Average > results[best].Average {
			best = i
		}
	}
	winner := results[best]

	return &OptimizationResult{
		Best:          winner,
		Confidence:    float64(winner.Trials) / float64(budget),
		ResponseTable: o.responseTable(winner.Attackers, opponent),
		TrialsRun:     winner.Trials,
		Elapsed:       time.Since(start),
		Strategies:    results,
		Degenerate:    winner.Average <= 0,
	}, nil
}

func (o *Optimizer) runStrategy(ctx context.Context, rng *rand.Rand, s Strategy, own, opponent []string, trials int) (StrategyResult, error) {
	res := StrategyResult{Strategy: s, Trials: trials}
	var sum float64
	for i := 0; i < trials; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		oppDefender := pick(rng, opponent)
		oppAttackers := sample(rng, without(opponent, oppDefender), 2)
		out := Simulate(rng, o.Matrix, Round{
			OwnPool:           own,
			OpponentPool:      opponent,
			OwnDefender:       s.Defender,
			OpponentDefender:  oppDefender,
			OwnAttackers:      s.Attackers,
			OpponentAttackers: [2]string{oppAttackers[0], oppAttackers[1]},
		})

		sum += out.Total
		if i == 0 || out.Total > res.Max {
			res.Max = out.Total
		}
		if i == 0 || out.Total < res.Min {
			res.Min = out.Total
		}
	}
	res.Average = sum / float64(trials)
	return res, nil
}

// responseTable picks, for each possible opponent defender, the attacker of
// the pair with the better direct score. It is a single lookup per attacker;
// no round is simulated. Ties keep the first attacker.
func (o *Optimizer) responseTable(attackers [2]string, opponent []string) map[string]string {
	table := make(map[string]string, len(opponent))
	for _, opp := range opponent {
		choice := attackers[0]
		if o.Matrix.Score(attackers[1], opp) > o.Matrix.Score(attackers[0], opp) {
			choice = attackers[1]
		}
		table[opp] = choice
	}
	return table
}

// Strategies enumerates every defender with every pair of the remaining
// players, in roster order.
func Strategies(roster []string) []Strategy {
	var out []Strategy
	for _, def := range roster {
		rest := without(roster, def)
		for i := 0; i < len(rest); i++ {
			for j := i + 1; j < len(rest); j++ {
				out = append(out, Strategy{Defender: def, Attackers: [2]string{rest[i], rest[j]}})
			}
		}
	}
	return out
}

func validateRosters(own, opponent []string) error {
	switch {
	case len(own) < minRosterSize || len(opponent) < minRosterSize:
		return fmt.Errorf("%w: rosters need at least %d players, got %d and %d",
			ErrInvalidRequest, minRosterSize, len(own), len(opponent))
	case len(own) != len(opponent):
		return fmt.Errorf("%w: roster sizes differ (%d vs %d)", ErrInvalidRequest, len(own), len(opponent))
	case hasDuplicates(own) || hasDuplicates(opponent):
		return fmt.Errorf("%w: roster contains a duplicate player", ErrInvalidRequest)
	}
	return nil
}

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
