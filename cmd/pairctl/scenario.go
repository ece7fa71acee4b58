package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strategium/pairings/internal/pairing"
)

// scenario is the YAML input shared by every command.
type scenario struct {
	Own      []string                      `yaml:"own"`
	Opponent []string                      `yaml:"opponent"`
	Matrix   map[string]map[string]float64 `yaml:"matrix"`
	Trials   int                           `yaml:"trials,omitempty"`
	Playouts int                           `yaml:"playouts,omitempty"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(s.Own) == 0 || len(s.Opponent) == 0 {
		return nil, fmt.Errorf("scenario %s: own and opponent rosters are required", path)
	}
	for player, row := range s.Matrix {
		for opp, score := range row {
			if score < 0 || score > 20 {
				return nil, fmt.Errorf("scenario %s: %s vs %s scores %v, outside [0, 20]", path, player, opp, score)
			}
		}
	}
	if s.Trials <= 0 {
		s.Trials = pairing.DefaultTrialBudget
	}
	if s.Playouts <= 0 {
		s.Playouts = pairing.DefaultPlayouts
	}
	return &s, nil
}

func (s *scenario) matrix() pairing.ScoreMatrix {
	return pairing.ScoreMatrix(s.Matrix)
}
