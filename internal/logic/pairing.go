package logic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/strategium/pairings/internal/models"
	"github.com/strategium/pairings/internal/pairing"
)

// ErrNoMatrices is returned by Recommend before any matrix was submitted.
var ErrNoMatrices = fmt.Errorf("%w: no matrices submitted for this session", pairing.ErrInvalidRequest)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strategium_searches_total",
		Help: "Strategy searches by outcome",
	}, []string{"outcome"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "strategium_search_duration_seconds",
		Help:    "Wall time of a full strategy search",
		Buckets: prometheus.DefBuckets,
	})

	recommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strategium_recommendations_total",
		Help: "In-round recommendations by decision type",
	}, []string{"decision"})

	degenerateResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strategium_degenerate_results_total",
		Help: "Searches and recommendations flagged degenerate",
	})
)

// PairingConfig tunes the searches run on behalf of a session.
type PairingConfig struct {
	TrialBudget int
	Playouts    int
	Parallelism int
}

type pairingService struct {
	sessions    SessionService
	tournaments TournamentService
	matrices    MatrixService
	runner      SearchRunner
	cfg         PairingConfig
}

func NewPairingService(sessions SessionService, tournaments TournamentService, matrices MatrixService, runner SearchRunner, cfg PairingConfig) PairingService {
	if cfg.TrialBudget <= 0 {
		cfg.TrialBudget = pairing.DefaultTrialBudget
	}
	if cfg.Playouts <= 0 {
		cfg.Playouts = pairing.DefaultPlayouts
	}
	return &pairingService{
		sessions:    sessions,
		tournaments: tournaments,
		matrices:    matrices,
		runner:      runner,
		cfg:         cfg,
	}
}

// Optimize runs the full strategy search once every own roster member has
// submitted a matrix. Otherwise it reports who is missing.
func (s *pairingService) Optimize(ctx context.Context, code string) (*models.OptimizeResponse, error) {
	sess, err := s.sessions.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	var own, opponent []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		own, err = s.tournaments.GetTeamRoster(gctx, sess.YourTeamID)
		return err
	})
	g.Go(func() error {
		var err error
		opponent, err = s.tournaments.GetTeamRoster(gctx, sess.OpponentTeamID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matrix, err := s.matrices.GetMatrices(ctx, code)
	if err != nil {
		return nil, err
	}
	if missing := missingPlayers(own, matrix); len(missing) > 0 {
		return &models.OptimizeResponse{
			Incomplete: &models.IncompleteSubmission{
				Error:     "Not all players have submitted matrices",
				Submitted: submittedPlayers(matrix),
				Required:  own,
				Missing:   missing,
			},
		}, nil
	}

	var result *pairing.OptimizationResult
	start := time.Now()
	err = s.runner.Do(ctx, func(ctx context.Context, rng *rand.Rand) error {
		opt := &pairing.Optimizer{
			Matrix:      pairing.ScoreMatrix(matrix),
			Rand:        rng,
			Parallelism: s.cfg.Parallelism,
		}
		var err error
		result, err = opt.Optimize(ctx, own, opponent, s.cfg.TrialBudget)
		return err
	})
	if err != nil {
		searchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	searchDuration.Observe(time.Since(start).Seconds())
	searchesTotal.WithLabelValues("ok").Inc()
	if result.Degenerate {
		degenerateResults.Inc()
	}

	return &models.OptimizeResponse{Complete: true, Result: OptimizationModel(result)}, nil
}

// Recommend answers one in-round decision from the submitted matrices.
func (s *pairingService) Recommend(ctx context.Context, code string, req *models.RecommendationRequest) (*models.RecommendationResponse, error) {
	if _, err := s.sessions.GetSession(ctx, code); err != nil {
		return nil, err
	}
	matrix, err := s.matrices.GetMatrices(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(matrix) == 0 {
		return nil, ErrNoMatrices
	}

	var rec *pairing.Recommendation
	err = s.runner.Do(ctx, func(_ context.Context, rng *rand.Rand) error {
		ev := &pairing.Evaluator{Matrix: pairing.ScoreMatrix(matrix), Rand: rng, Playouts: s.cfg.Playouts}
		var err error
		switch pairing.DecisionType(req.DecisionType) {
		case pairing.DecisionPickDefender:
			rec, err = ev.PickDefender(req.UnpairedYourTeam, req.UnpairedOpponentTeam)
		case pairing.DecisionPickAttackers:
			rec, err = ev.PickAttackers(req.UnpairedYourTeam, req.UnpairedOpponentTeam, req.YourDefender, req.OpponentDefender)
		case pairing.DecisionPickDefenderMatchup:
			rec, err = ev.PickDefenderMatchup(req.UnpairedYourTeam, req.UnpairedOpponentTeam, req.YourDefender, req.OpponentAttackers)
		default:
			err = fmt.Errorf("%w: unknown decision type %q", pairing.ErrInvalidRequest, req.DecisionType)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	recommendationsTotal.WithLabelValues(string(rec.Decision)).Inc()
	if rec.Degenerate {
		degenerateResults.Inc()
	}
	return RecommendationModel(rec), nil
}

// IsInvalidRequest reports whether err stems from a malformed request.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, pairing.ErrInvalidRequest)
}

func missingPlayers(roster []string, matrix map[string]map[string]float64) []string {
	var missing []string
	for _, name := range roster {
		if _, ok := matrix[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func submittedPlayers(matrix map[string]map[string]float64) []string {
	names := make([]string, 0, len(matrix))
	for name := range matrix {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OptimizationModel converts a search result to its API shape, rounding
// every score to two decimals.
func OptimizationModel(r *pairing.OptimizationResult) *models.OptimizationResult {
	out := &models.OptimizationResult{
		BestDefender:    r.Best.Defender,
		BestAttackers:   []string{r.Best.Attackers[0], r.Best.Attackers[1]},
		ExpectedScore:   models.Round2(r.Best.Average),
		BestCaseScore:   models.Round2(r.Best.Max),
		WorstCaseScore:  models.Round2(r.Best.Min),
		Confidence:      models.Round2(r.Confidence),
		DecisionTree:    r.ResponseTable,
		SimulationsRun:  r.TrialsRun,
		ComputationTime: models.Round2(r.Elapsed.Seconds()),
		Degenerate:      r.Degenerate,
		Strategies:      make([]models.StrategySummary, 0, len(r.Strategies)),
	}
	for _, st := range r.Strategies {
		out.Strategies = append(out.Strategies, models.StrategySummary{
			Defender:      st.Defender,
			Attackers:     []string{st.Attackers[0], st.Attackers[1]},
			ExpectedScore: models.Round2(st.Average),
			BestCase:      models.Round2(st.Max),
			WorstCase:     models.Round2(st.Min),
		})
	}
	return out
}

// RecommendationModel converts a recommendation to its API shape. A
// pick_attackers recommendation is a list of names, any other a single name.
func RecommendationModel(r *pairing.Recommendation) *models.RecommendationResponse {
	out := &models.RecommendationResponse{
		DecisionType:       string(r.Decision),
		ExpectedTotalScore: models.Round2(r.Expected),
		AllOptions:         make(map[string]float64, len(r.Options)),
		Degenerate:         r.Degenerate,
	}
	for _, opt := range r.Options {
		out.AllOptions[opt.Key] = models.Round2(opt.Average)
	}
	switch {
	case len(r.Recommended) == 0:
		out.Recommendation = nil
	case r.Decision == pairing.DecisionPickAttackers:
		out.Recommendation = r.Recommended
	default:
		out.Recommendation = r.Recommended[0]
	}
	return out
}
