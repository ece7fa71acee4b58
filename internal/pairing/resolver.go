package pairing

import "math/rand"

// Round is the commitment state at the start of a duel round. Pools are the
// whole unpaired rosters; the committed players are still in them and are
// pruned by the resolver.
type Round struct {
	OwnPool           []string
	OpponentPool      []string
	OwnDefender       string
	OpponentDefender  string
	OwnAttackers      [2]string
	OpponentAttackers [2]string
}

// Outcome is one randomized playout of a round.
type Outcome struct {
	Pairings  []Pairing
	Total     float64
	PerPlayer map[string]float64
}

// ResolveRound plays out the hidden choices of a round. Each side sends one of
// its two attackers at the opposing defender, the unsent attackers become the
// next defenders and face each other, and when exactly two players are left on
// each side they are split into a final defender and attacker who cross over.
//
// The coin flips for acting order and final listing order only change the
// order pairings are reported in, never which players meet.
//
// It returns 5 pairings for 5-player pools and 3 when the pools are too small
// for the final step. Inconsistent pools are a caller error.
func ResolveRound(rng *rand.Rand, r Round) []Pairing {
	pairings := make([]Pairing, 0, 5)

	var ownIdx, oppIdx int
	if rng.Float64() < 0.5 {
		ownIdx = rng.Intn(2)
		pairings = append(pairings, Pairing{Own: r.OwnAttackers[ownIdx], Opponent: r.OpponentDefender})
		oppIdx = rng.Intn(2)
		pairings = append(pairings, Pairing{Own: r.OwnDefender, Opponent: r.OpponentAttackers[oppIdx]})
	} else {
		oppIdx = rng.Intn(2)
		pairings = append(pairings, Pairing{Own: r.OwnDefender, Opponent: r.OpponentAttackers[oppIdx]})
		ownIdx = rng.Intn(2)
		pairings = append(pairings, Pairing{Own: r.OwnAttackers[ownIdx], Opponent: r.OpponentDefender})
	}

	ownAttacker, ownNext := r.OwnAttackers[ownIdx], r.OwnAttackers[1-ownIdx]
	oppAttacker, oppNext := r.OpponentAttackers[oppIdx], r.OpponentAttackers[1-oppIdx]
	pairings = append(pairings, Pairing{Own: ownNext, Opponent: oppNext})

	ownLeft := without(r.OwnPool, r.OwnDefender, ownAttacker, ownNext)
	oppLeft := without(r.OpponentPool, r.OpponentDefender, oppAttacker, oppNext)
	if len(ownLeft) != 2 || len(oppLeft) != 2 {
		return pairings
	}

	ownDef := rng.Intn(2)
	oppDef := rng.Intn(2)
	attackerVsDefender := Pairing{Own: ownLeft[1-ownDef], Opponent: oppLeft[oppDef]}
	defenderVsAttacker := Pairing{Own: ownLeft[ownDef], Opponent: oppLeft[1-oppDef]}
	if rng.Float64() < 0.5 {
		pairings = append(pairings, attackerVsDefender, defenderVsAttacker)
	} else {
		pairings = append(pairings, defenderVsAttacker, attackerVsDefender)
	}
	return pairings
}

// Simulate resolves a round and scores it against the matrix.
func Simulate(rng *rand.Rand, m ScoreMatrix, r Round) Outcome {
	pairings := ResolveRound(rng, r)
	out := Outcome{
		Pairings:  pairings,
		PerPlayer: make(map[string]float64, len(pairings)),
	}
	for _, p := range pairings {
		s := m.Score(p.Own, p.Opponent)
		out.PerPlayer[p.Own] = s
		out.Total += s
	}
	return out
}
