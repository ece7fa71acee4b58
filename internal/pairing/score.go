// Package pairing implements the team-tournament pairing engine: round
// resolution, strategy search and the Monte Carlo decision evaluators.
// Nothing in this package performs I/O; randomness is always injected.
package pairing

import (
	"errors"
	"math/rand"
)

// DefaultScore is used when a matrix has no entry for a matchup.
const DefaultScore = 10.0

// ErrInvalidRequest is returned when a call is missing a role its decision
// needs or its rosters are inconsistent. It is raised before any simulation.
var ErrInvalidRequest = errors.New("invalid pairing request")

// ScoreMatrix maps an own player to the predicted score against each opponent.
// Matrices are self-reported and not symmetric.
type ScoreMatrix map[string]map[string]float64

// Score returns the predicted score of own against opponent, or DefaultScore
// when either side of the lookup is missing.
func (m ScoreMatrix) Score(own, opponent string) float64 {
	row, ok := m[own]
	if !ok {
		return DefaultScore
	}
	if v, ok := row[opponent]; ok {
		return v
	}
	return DefaultScore
}

// Pairing is one resolved duel.
type Pairing struct {
	Own      string `json:"own"`
	Opponent string `json:"opponent"`
}

// pick returns a uniformly random element of pool.
func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// sample returns up to n distinct elements of pool in random order.
func sample(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// without returns a copy of pool with every name in drop removed.
func without(pool []string, drop ...string) []string {
	out := make([]string, 0, len(pool))
	for _, p := range pool {
		if !contains(drop, p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(pool []string, name string) bool {
	for _, p := range pool {
		if p == name {
			return true
		}
	}
	return false
}

// pairsOf lists every 2-combination of pool in enumeration order. A pool of one
// yields a single one-element group so callers still have a candidate.
func pairsOf(pool []string) [][]string {
	if len(pool) == 1 {
		return [][]string{{pool[0]}}
	}
	var out [][]string
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			out = append(out, []string{pool[i], pool[j]})
		}
	}
	return out
}

func hasDuplicates(pool []string) bool {
	seen := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}
