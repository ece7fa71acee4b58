package logic

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/strategium/pairings/internal/models"
	"github.com/strategium/pairings/internal/pairing"
)

type MockSessionService struct {
	GetSessionFunc func(ctx context.Context, code string) (*models.Session, error)
}

func (m *MockSessionService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error) {
	return nil, errors.New("not implemented")
}

func (m *MockSessionService) GetSession(ctx context.Context, code string) (*models.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, code)
	}
	return &models.Session{Code: code, YourTeamID: "own", OpponentTeamID: "opp"}, nil
}

func (m *MockSessionService) GetTournamentSessions(ctx context.Context, tournamentID string) ([]models.Session, error) {
	return nil, nil
}

type MockTournamentService struct {
	Rosters map[string][]string
}

func (m *MockTournamentService) CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	return nil, errors.New("not implemented")
}

func (m *MockTournamentService) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	return nil, nil
}

func (m *MockTournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	return nil, ErrNotFound
}

func (m *MockTournamentService) GetTeamRoster(ctx context.Context, teamID string) ([]string, error) {
	r, ok := m.Rosters[teamID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

type MockMatrixService struct {
	Matrices map[string]map[string]float64
}

func (m *MockMatrixService) SubmitMatrix(ctx context.Context, code string, in *models.MatrixInput) (int, error) {
	return 0, errors.New("not implemented")
}

func (m *MockMatrixService) GetMatrices(ctx context.Context, code string) (map[string]map[string]float64, error) {
	if m.Matrices == nil {
		return map[string]map[string]float64{}, nil
	}
	return m.Matrices, nil
}

// inlineRunner runs tasks on the caller's goroutine with a fixed seed.
type inlineRunner struct {
	seed  int64
	calls int
}

func (r *inlineRunner) Do(ctx context.Context, task func(ctx context.Context, rng *rand.Rand) error) error {
	r.calls++
	return task(ctx, rand.New(rand.NewSource(r.seed)))
}

var (
	testOwn = []string{"A", "B", "C", "D", "E"}
	testOpp = []string{"V", "W", "X", "Y", "Z"}
)

// strongA scores 20 for A against everyone and 0 otherwise.
func strongA() map[string]map[string]float64 {
	m := map[string]map[string]float64{}
	for _, p := range testOwn {
		m[p] = map[string]float64{}
		for _, o := range testOpp {
			if p == "A" {
				m[p][o] = 20
			} else {
				m[p][o] = 0
			}
		}
	}
	return m
}

func newTestPairingService(matrices map[string]map[string]float64, runner SearchRunner) PairingService {
	return NewPairingService(
		&MockSessionService{},
		&MockTournamentService{Rosters: map[string][]string{"own": testOwn, "opp": testOpp}},
		&MockMatrixService{Matrices: matrices},
		runner,
		PairingConfig{TrialBudget: 600, Playouts: 200},
	)
}

func TestOptimize_IncompleteSubmissions(t *testing.T) {
	runner := &inlineRunner{seed: 1}
	matrices := map[string]map[string]float64{
		"C": {"V": 10},
		"A": {"V": 10},
	}
	resp, err := newTestPairingService(matrices, runner).Optimize(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if resp.Complete || resp.Result != nil {
		t.Fatalf("expected an incomplete response, got %+v", resp)
	}
	inc := resp.Incomplete
	if !reflect.DeepEqual(inc.Submitted, []string{"A", "C"}) {
		t.Errorf("submitted = %v", inc.Submitted)
	}
	if !reflect.DeepEqual(inc.Missing, []string{"B", "D", "E"}) {
		t.Errorf("missing = %v", inc.Missing)
	}
	if !reflect.DeepEqual(inc.Required, testOwn) {
		t.Errorf("required = %v", inc.Required)
	}
	if runner.calls != 0 {
		t.Errorf("search should not run for an incomplete session")
	}
}

func TestOptimize_Complete(t *testing.T) {
	runner := &inlineRunner{seed: 7}
	resp, err := newTestPairingService(strongA(), runner).Optimize(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if !resp.Complete || resp.Result == nil {
		t.Fatalf("expected a complete response, got %+v", resp)
	}
	res := resp.Result
	if res.BestDefender != "A" {
		t.Errorf("best defender = %s, want A", res.BestDefender)
	}
	if res.ExpectedScore != 20 {
		t.Errorf("expected score = %v, want 20", res.ExpectedScore)
	}
	if res.SimulationsRun != 600/pairing.TrialDivisor {
		t.Errorf("simulations = %d", res.SimulationsRun)
	}
	if len(res.Strategies) != 30 || len(res.BestAttackers) != 2 {
		t.Errorf("strategies=%d attackers=%v", len(res.Strategies), res.BestAttackers)
	}
	if len(res.DecisionTree) != len(testOpp) {
		t.Errorf("decision tree = %v", res.DecisionTree)
	}
	if runner.calls != 1 {
		t.Errorf("runner calls = %d, want 1", runner.calls)
	}
}

func TestOptimize_SessionNotFound(t *testing.T) {
	svc := NewPairingService(
		&MockSessionService{GetSessionFunc: func(ctx context.Context, code string) (*models.Session, error) {
			return nil, ErrNotFound
		}},
		&MockTournamentService{},
		&MockMatrixService{},
		&inlineRunner{},
		PairingConfig{},
	)
	if _, err := svc.Optimize(context.Background(), "NOPE00"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RecommendationRequest
		want    interface{}
		wantErr bool
	}{
		{
			name: "pick defender",
			req: models.RecommendationRequest{
				DecisionType:         "pick_defender",
				UnpairedYourTeam:     []string{"B", "A", "C"},
				UnpairedOpponentTeam: []string{"V", "W", "X"},
			},
			want: "A",
		},
		{
			name: "pick attackers",
			req: models.RecommendationRequest{
				DecisionType:         "pick_attackers",
				UnpairedYourTeam:     []string{"B", "A", "C", "D"},
				UnpairedOpponentTeam: []string{"V", "W", "X", "Y"},
				YourDefender:         "B",
				OpponentDefender:     "V",
			},
		},
		{
			name: "matchup",
			req: models.RecommendationRequest{
				DecisionType:         "pick_defender_matchup",
				UnpairedYourTeam:     []string{"A", "B", "C"},
				UnpairedOpponentTeam: []string{"V", "W", "X"},
				YourDefender:         "A",
				OpponentAttackers:    []string{"W", "X"},
			},
		},
		{
			name: "attackers without defenders",
			req: models.RecommendationRequest{
				DecisionType:         "pick_attackers",
				UnpairedYourTeam:     []string{"A", "B", "C"},
				UnpairedOpponentTeam: []string{"V", "W", "X"},
			},
			wantErr: true,
		},
		{
			name: "unknown decision",
			req: models.RecommendationRequest{
				DecisionType:         "pick_snacks",
				UnpairedYourTeam:     []string{"A"},
				UnpairedOpponentTeam: []string{"V"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestPairingService(strongA(), &inlineRunner{seed: 3})
			resp, err := svc.Recommend(context.Background(), "ABC123", &tt.req)
			if tt.wantErr {
				if !IsInvalidRequest(err) {
					t.Fatalf("got %v, want an invalid request", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if resp.DecisionType != tt.req.DecisionType {
				t.Errorf("decision type = %s", resp.DecisionType)
			}
			if tt.want != nil && resp.Recommendation != tt.want {
				t.Errorf("recommendation = %v, want %v", resp.Recommendation, tt.want)
			}
			if len(resp.AllOptions) == 0 {
				t.Errorf("expected scored options")
			}
		})
	}
}

func TestRecommend_NoMatrices(t *testing.T) {
	svc := newTestPairingService(nil, &inlineRunner{})
	_, err := svc.Recommend(context.Background(), "ABC123", &models.RecommendationRequest{
		DecisionType:         "pick_defender",
		UnpairedYourTeam:     []string{"A", "B", "C"},
		UnpairedOpponentTeam: []string{"V", "W", "X"},
	})
	if !errors.Is(err, ErrNoMatrices) || !IsInvalidRequest(err) {
		t.Fatalf("got %v, want ErrNoMatrices", err)
	}
}

func TestRecommendationModel_RoundsAndShapes(t *testing.T) {
	rec := &pairing.Recommendation{
		Decision:    pairing.DecisionPickAttackers,
		Recommended: []string{"A", "B"},
		Expected:    31.23456,
		Options: []pairing.Option{
			{Key: "A + B", Choice: []string{"A", "B"}, Average: 31.23456},
			{Key: "A + C", Choice: []string{"A", "C"}, Average: 12.005},
		},
	}
	got := RecommendationModel(rec)
	if got.ExpectedTotalScore != 31.23 {
		t.Errorf("expected = %v", got.ExpectedTotalScore)
	}
	if !reflect.DeepEqual(got.Recommendation, []string{"A", "B"}) {
		t.Errorf("recommendation = %v", got.Recommendation)
	}
	if got.AllOptions["A + B"] != 31.23 {
		t.Errorf("options = %v", got.AllOptions)
	}

	empty := RecommendationModel(&pairing.Recommendation{Decision: pairing.DecisionPickDefender, Degenerate: true})
	if empty.Recommendation != nil || !empty.Degenerate {
		t.Errorf("empty recommendation = %+v", empty)
	}
}
