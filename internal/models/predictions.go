package models

import "math"

// Round2 rounds to two decimals. Every score leaving the API goes through it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StrategySummary is one evaluated (defender, attackers) commitment
type StrategySummary struct {
	Defender      string   `json:"defender"`
	Attackers     []string `json:"attackers"`
	ExpectedScore float64  `json:"expected_score"`
	BestCase      float64  `json:"best_case_score"`
	WorstCase     float64  `json:"worst_case_score"`
}

// OptimizationResult is the recommended opening commitment for a session.
type OptimizationResult struct {
	BestDefender    string            `json:"best_defender"`
	BestAttackers   []string          `json:"best_attackers"`
	ExpectedScore   float64           `json:"expected_score"`
	BestCaseScore   float64           `json:"best_case_score"`
	WorstCaseScore  float64           `json:"worst_case_score"`
	Confidence      float64           `json:"confidence"`
	DecisionTree    map[string]string `json:"decision_tree"` // opponent defender -> attacker to send
	SimulationsRun  int               `json:"simulations_run"`
	ComputationTime float64           `json:"computation_time"` // seconds
	Degenerate      bool              `json:"degenerate"`
	Strategies      []StrategySummary `json:"strategies"`
}

// IncompleteSubmission reports which roster members still owe a matrix
type IncompleteSubmission struct {
	Error     string   `json:"error"`
	Submitted []string `json:"submitted"`
	Required  []string `json:"required"`
	Missing   []string `json:"missing"`
}

// OptimizeResponse carries either a result or the missing submissions.
type OptimizeResponse struct {
	Complete   bool                  `json:"complete"`
	Result     *OptimizationResult   `json:"result,omitempty"`
	Incomplete *IncompleteSubmission `json:"incomplete,omitempty"`
}

// RecommendationResponse answers one in-round decision. Recommendation is a
// player name, or a list of names for pick_attackers, and null when there
// was no legal candidate.
type RecommendationResponse struct {
	DecisionType       string             `json:"decision_type"`
	Recommendation     interface{}        `json:"recommendation"`
	ExpectedTotalScore float64            `json:"expected_total_score"`
	AllOptions         map[string]float64 `json:"all_options"`
	Degenerate         bool               `json:"degenerate"`
}
