package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategium/pairings/internal/models"
)

const strongAScenario = `own: [A, B, C, D, E]
opponent: [V, W, X, Y, Z]
trials: 1200
playouts: 200
matrix:
  A: {V: 20, W: 20, X: 20, Y: 20, Z: 20}
  B: {V: 0, W: 0, X: 0, Y: 0, Z: 0}
  C: {V: 0, W: 0, X: 0, Y: 0, Z: 0}
  D: {V: 0, W: 0, X: 0, Y: 0, Z: 0}
  E: {V: 0, W: 0, X: 0, Y: 0, Z: 0}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func runPairctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOptimize_JSON(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	out, err := runPairctl(t, "optimize", "-s", path, "--seed", "5", "-f", "json")
	require.NoError(t, err)

	var res models.OptimizationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "A", res.BestDefender)
	assert.Equal(t, 20.0, res.ExpectedScore)
	assert.Equal(t, 1200/60, res.SimulationsRun)
	assert.Len(t, res.Strategies, 30)
}

func TestOptimize_SeedIsReproducible(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	first, err := runPairctl(t, "optimize", "-s", path, "--seed", "11", "-f", "json")
	require.NoError(t, err)
	second, err := runPairctl(t, "optimize", "-s", path, "--seed", "11", "-f", "json", "-p", "4")
	require.NoError(t, err)

	var a, b models.OptimizationResult
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	// Elapsed time differs between runs.
	a.ComputationTime, b.ComputationTime = 0, 0
	assert.Equal(t, a, b)
}

func TestOptimize_Table(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	out, err := runPairctl(t, "optimize", "-s", path, "--seed", "3", "--top", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Best defender:  A")
	assert.Contains(t, out, "DEFENDER")
}

func TestRecommend_Defender(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	out, err := runPairctl(t, "recommend", "defender", "-s", path, "--seed", "2", "-f", "json",
		"--own", "B,A,C", "--opponent", "V,W,X")
	require.NoError(t, err)

	var rec models.RecommendationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "pick_defender", rec.DecisionType)
	assert.Equal(t, "A", rec.Recommendation)
	assert.Equal(t, 20.0, rec.ExpectedTotalScore)
	assert.Len(t, rec.AllOptions, 3)
}

func TestRecommend_Attackers(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	out, err := runPairctl(t, "recommend", "attackers", "-s", path, "--seed", "2",
		"--own", "B,A,C,D", "--opponent", "V,W,X,Y", "--own-defender", "B", "--opponent-defender", "V")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended: ")
	assert.Contains(t, out, "OPTION")
}

func TestRecommend_MatchupRequiresFlags(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	_, err := runPairctl(t, "recommend", "matchup", "-s", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRecommend_InvalidPool(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	_, err := runPairctl(t, "recommend", "defender", "-s", path, "--own", "A,B", "--opponent", "V,W,X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sizes differ")
}

func TestUnsupportedFormat(t *testing.T) {
	path := writeScenario(t, strongAScenario)
	_, err := runPairctl(t, "optimize", "-s", path, "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLoadScenario(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := loadScenario(writeScenario(t, "own: [A, B, C]\nopponent: [X, Y, Z]\n"))
		require.NoError(t, err)
		assert.Equal(t, 10000, s.Trials)
		assert.Equal(t, 500, s.Playouts)
		assert.Equal(t, 10.0, s.matrix().Score("A", "X"))
	})

	t.Run("score out of range", func(t *testing.T) {
		_, err := loadScenario(writeScenario(t, "own: [A]\nopponent: [X]\nmatrix:\n  A: {X: 25}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside [0, 20]")
	})

	t.Run("missing roster", func(t *testing.T) {
		_, err := loadScenario(writeScenario(t, "own: [A]\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
