package pairing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownRoster = []string{"Laurence", "Byron", "Denis", "Sam", "Euan"}
	oppRoster = []string{"Jack", "John", "James", "Jim", "Joe"}

	sampleMatrix = ScoreMatrix{
		"Laurence": {"Jack": 15, "John": 8, "James": 12, "Jim": 6, "Joe": 11},
		"Byron":    {"Jack": 9, "John": 14, "James": 10, "Jim": 16, "Joe": 7},
		"Denis":    {"Jack": 11, "John": 7, "James": 18, "Jim": 10, "Joe": 13},
		"Sam":      {"Jack": 8, "John": 12, "James": 9, "Jim": 13, "Joe": 15},
		"Euan":     {"Jack": 13, "John": 16, "James": 6, "Jim": 11, "Joe": 9},
	}
)

func fullRound() Round {
	return Round{
		OwnPool:           ownRoster,
		OpponentPool:      oppRoster,
		OwnDefender:       "Denis",
		OpponentDefender:  "Jim",
		OwnAttackers:      [2]string{"Byron", "Sam"},
		OpponentAttackers: [2]string{"John", "Joe"},
	}
}

func TestResolveRound_FullRosterIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		pairings := ResolveRound(rng, fullRound())
		require.Len(t, pairings, 5)

		own := map[string]int{}
		opp := map[string]int{}
		for _, p := range pairings {
			own[p.Own]++
			opp[p.Opponent]++
		}
		for _, name := range ownRoster {
			assert.Equal(t, 1, own[name], "own player %s", name)
		}
		for _, name := range oppRoster {
			assert.Equal(t, 1, opp[name], "opponent player %s", name)
		}
	}
}

func TestResolveRound_CommittedDuels(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		pairings := ResolveRound(rng, fullRound())
		first := pairings[:3]

		var defenderFaced, attackerSent string
		for _, p := range first {
			if p.Own == "Denis" {
				defenderFaced = p.Opponent
			}
			if p.Opponent == "Jim" {
				attackerSent = p.Own
			}
		}
		assert.Contains(t, []string{"John", "Joe"}, defenderFaced)
		assert.Contains(t, []string{"Byron", "Sam"}, attackerSent)

		// The unsent attackers are each side's next defenders and meet.
		next := first[2]
		assert.Contains(t, []string{"Byron", "Sam"}, next.Own)
		assert.NotEqual(t, attackerSent, next.Own)
		assert.Contains(t, []string{"John", "Joe"}, next.Opponent)
		assert.NotEqual(t, defenderFaced, next.Opponent)

		// Final step: Laurence and Euan against Jack and James.
		for _, p := range pairings[3:] {
			assert.Contains(t, []string{"Laurence", "Euan"}, p.Own)
			assert.Contains(t, []string{"Jack", "James"}, p.Opponent)
		}
	}
}

func TestResolveRound_ReducedPoolsSkipFinalStep(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	round := Round{
		OwnPool:           []string{"A", "B", "C"},
		OpponentPool:      []string{"X", "Y", "Z"},
		OwnDefender:       "A",
		OpponentDefender:  "X",
		OwnAttackers:      [2]string{"B", "C"},
		OpponentAttackers: [2]string{"Y", "Z"},
	}

	for i := 0; i < 100; i++ {
		assert.Len(t, ResolveRound(rng, round), 3)
	}
}

func TestSimulate_TotalsAndBreakdown(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	out := Simulate(rng, sampleMatrix, fullRound())

	require.Len(t, out.Pairings, 5)
	require.Len(t, out.PerPlayer, 5)

	var sum float64
	for _, p := range out.Pairings {
		assert.Equal(t, sampleMatrix.Score(p.Own, p.Opponent), out.PerPlayer[p.Own])
		sum += out.PerPlayer[p.Own]
	}
	assert.InDelta(t, sum, out.Total, 1e-9)
}
