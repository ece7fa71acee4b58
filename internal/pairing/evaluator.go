package pairing

import (
	"fmt"
	"math/rand"
	"strings"
)

// DecisionType names the question a recommendation answers.
type DecisionType string

const (
	DecisionPickDefender        DecisionType = "pick_defender"
	DecisionPickAttackers       DecisionType = "pick_attackers"
	DecisionPickDefenderMatchup DecisionType = "pick_defender_matchup"
)

// DefaultPlayouts is the number of playouts run per candidate.
const DefaultPlayouts = 500

// Option is one scored candidate choice.
type Option struct {
	Key     string
	Choice  []string
	Average float64
}

// Recommendation is the outcome of one decision evaluation.
type Recommendation struct {
	Decision    DecisionType
	Recommended []string
	Expected    float64
	// Options holds one entry per legal candidate, in enumeration order.
	Options []Option
	// Degenerate is set when there was nothing to choose from, every
	// candidate tied, or the best average never rose above zero. The
	// arg-max is still reported.
	Degenerate bool
}

// Evaluator answers the in-round decisions by playing out the rest of the
// round many times with the known commitments fixed.
type Evaluator struct {
	Matrix   ScoreMatrix
	Rand     *rand.Rand
	Playouts int
}

// PickDefender ranks each unpaired own player as the next defender.
func (e *Evaluator) PickDefender(own, opponent []string) (*Recommendation, error) {
	if err := validatePools(own, opponent); err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(own))
	for _, def := range own {
		def := def
		candidates = append(candidates, candidate{
			key:    def,
			choice: []string{def},
			setup: func(_ *rand.Rand, p *playout) {
				p.forced = def
			},
		})
	}
	return e.evaluate(DecisionPickDefender, candidates, own, opponent, false), nil
}

// PickAttackers ranks each pair of own players as the attackers to send at
// the revealed opponent defender.
func (e *Evaluator) PickAttackers(own, opponent []string, ownDefender, opponentDefender string) (*Recommendation, error) {
	if ownDefender == "" || opponentDefender == "" {
		return nil, fmt.Errorf("%w: pick_attackers needs both committed defenders", ErrInvalidRequest)
	}
	if err := validatePools(own, opponent); err != nil {
		return nil, err
	}
	if !contains(own, ownDefender) {
		return nil, fmt.Errorf("%w: defender %q is not in the own pool", ErrInvalidRequest, ownDefender)
	}
	if !contains(opponent, opponentDefender) {
		return nil, fmt.Errorf("%w: defender %q is not in the opponent pool", ErrInvalidRequest, opponentDefender)
	}

	var candidates []candidate
	for _, pair := range pairsOf(without(own, ownDefender)) {
		pair := pair
		candidates = append(candidates, candidate{
			key:    strings.Join(pair, " + "),
			choice: pair,
			setup: func(rng *rand.Rand, p *playout) {
				oppAttacker := pick(rng, sample(rng, without(p.opp, opponentDefender), 2))
				ownAttacker := pick(rng, pair)
				p.duel(ownAttacker, opponentDefender)
				p.duel(ownDefender, oppAttacker)
				p.own = without(p.own, ownDefender, ownAttacker)
				p.opp = without(p.opp, opponentDefender, oppAttacker)
			},
		})
	}
	return e.evaluate(DecisionPickAttackers, candidates, own, opponent, true), nil
}

// PickDefenderMatchup ranks which revealed opponent attacker the committed own
// defender should face.
func (e *Evaluator) PickDefenderMatchup(own, opponent []string, ownDefender string, opponentAttackers []string) (*Recommendation, error) {
	if ownDefender == "" || len(opponentAttackers) == 0 {
		return nil, fmt.Errorf("%w: pick_defender_matchup needs an own defender and revealed attackers", ErrInvalidRequest)
	}
	if err := validatePools(own, opponent); err != nil {
		return nil, err
	}
	if !contains(own, ownDefender) {
		return nil, fmt.Errorf("%w: defender %q is not in the own pool", ErrInvalidRequest, ownDefender)
	}
	if hasDuplicates(opponentAttackers) {
		return nil, fmt.Errorf("%w: revealed attackers contain a duplicate", ErrInvalidRequest)
	}

	candidates := make([]candidate, 0, len(opponentAttackers))
	for _, attacker := range opponentAttackers {
		attacker := attacker
		if !contains(opponent, attacker) {
			return nil, fmt.Errorf("%w: attacker %q is not in the opponent pool", ErrInvalidRequest, attacker)
		}
		candidates = append(candidates, candidate{
			key:    attacker,
			choice: []string{attacker},
			setup: func(_ *rand.Rand, p *playout) {
				p.duel(ownDefender, attacker)
				p.own = without(p.own, ownDefender)
				p.opp = without(p.opp, attacker)
			},
		})
	}
	return e.evaluate(DecisionPickDefenderMatchup, candidates, own, opponent, true), nil
}

// candidate is one legal choice; setup applies its commitment to a fresh
// playout before the rest of the round is drained.
type candidate struct {
	key    string
	choice []string
	setup  func(rng *rand.Rand, p *playout)
}

func (e *Evaluator) evaluate(decision DecisionType, candidates []candidate, own, opponent []string, finalDuel bool) *Recommendation {
	rng := orDefault(e.Rand)
	playouts := e.Playouts
	if playouts <= 0 {
		playouts = DefaultPlayouts
	}

	rec := &Recommendation{Decision: decision, Options: make([]Option, 0, len(candidates))}
	for _, c := range candidates {
		var sum float64
		for i := 0; i < playouts; i++ {
			p := &playout{
				matrix: e.Matrix,
				own:    append([]string(nil), own...),
				opp:    append([]string(nil), opponent...),
			}
			c.setup(rng, p)
			p.drain(rng, finalDuel)
			sum += p.total
		}
		rec.Options = append(rec.Options, Option{Key: c.key, Choice: c.choice, Average: sum / float64(playouts)})
	}

	if len(rec.Options) == 0 {
		rec.Degenerate = true
		return rec
	}

	best := 0
	tied := true
	for i, o := range rec.Options {
		if o.Average != rec.Options[0].Average {
			tied = false
		}
		if o.Average > rec.Options[best].Average {
			best = i
		}
	}
	rec.Recommended = rec.Options[best].Choice
	rec.Expected = rec.Options[best].Average
	rec.Degenerate = rec.Expected <= 0 || (tied && len(rec.Options) > 1)
	return rec
}

// playout is the mutable state of one partial-round simulation.
type playout struct {
	matrix ScoreMatrix
	own    []string
	opp    []string
	total  float64
	// forced is the own defender for the first drain step, if any.
	forced string
}

func (p *playout) duel(own, opp string) {
	p.total += p.matrix.Score(own, opp)
}

// drain resolves the remaining pools one defender/attacker exchange at a
// time. With finalDuel set, a single leftover player on each side meets
// directly; otherwise the last defenders go unscored.
func (p *playout) drain(rng *rand.Rand, finalDuel bool) {
	for len(p.own) > 1 && len(p.opp) > 1 {
		ownDef := p.forced
		if ownDef == "" {
			ownDef = pick(rng, p.own)
		}
		p.forced = ""
		oppDef := pick(rng, p.opp)
		p.own = without(p.own, ownDef)
		p.opp = without(p.opp, oppDef)

		ownAtk := pick(rng, sample(rng, p.own, 2))
		oppAtk := pick(rng, sample(rng, p.opp, 2))
		p.duel(ownAtk, oppDef)
		p.duel(ownDef, oppAtk)
		p.own = without(p.own, ownAtk)
		p.opp = without(p.opp, oppAtk)
	}
	if finalDuel && len(p.own) == 1 && len(p.opp) == 1 {
		p.duel(p.own[0], p.opp[0])
	}
}

func validatePools(own, opponent []string) error {
	switch {
	case len(own) == 0 || len(opponent) == 0:
		return fmt.Errorf("%w: unpaired pools must not be empty", ErrInvalidRequest)
	case len(own) != len(opponent):
		return fmt.Errorf("%w: unpaired pool sizes differ (%d vs %d)", ErrInvalidRequest, len(own), len(opponent))
	case hasDuplicates(own) || hasDuplicates(opponent):
		return fmt.Errorf("%w: unpaired pool contains a duplicate player", ErrInvalidRequest)
	}
	return nil
}
