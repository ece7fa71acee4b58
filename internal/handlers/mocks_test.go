package handlers

import (
	"context"

	"github.com/strategium/pairings/internal/logic"
	"github.com/strategium/pairings/internal/models"
)

// MockTournamentService
type MockTournamentService struct {
	CreateTournamentFunc func(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error)
	GetTournamentsFunc   func(ctx context.Context) ([]models.Tournament, error)
	GetTournamentFunc    func(ctx context.Context, id string) (*models.Tournament, error)
}

func (m *MockTournamentService) CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(ctx, req)
	}
	return &models.Tournament{ID: "t1", Name: req.Name}, nil
}

func (m *MockTournamentService) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	if m.GetTournamentsFunc != nil {
		return m.GetTournamentsFunc(ctx)
	}
	return []models.Tournament{}, nil
}

func (m *MockTournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, id)
	}
	return &models.Tournament{ID: id}, nil
}

func (m *MockTournamentService) GetTeamRoster(ctx context.Context, teamID string) ([]string, error) {
	return nil, nil
}

// MockSessionService
type MockSessionService struct {
	CreateSessionFunc         func(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error)
	GetSessionFunc            func(ctx context.Context, code string) (*models.Session, error)
	GetTournamentSessionsFunc func(ctx context.Context, tournamentID string) ([]models.Session, error)
}

func (m *MockSessionService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req)
	}
	return &models.Session{Code: "ABC123", TournamentID: req.TournamentID, RoundNumber: 1, RoundName: "Round 1"}, nil
}

func (m *MockSessionService) GetSession(ctx context.Context, code string) (*models.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, code)
	}
	return &models.Session{Code: code}, nil
}

func (m *MockSessionService) GetTournamentSessions(ctx context.Context, tournamentID string) ([]models.Session, error) {
	if m.GetTournamentSessionsFunc != nil {
		return m.GetTournamentSessionsFunc(ctx, tournamentID)
	}
	return []models.Session{}, nil
}

// MockMatrixService
type MockMatrixService struct {
	SubmitMatrixFunc func(ctx context.Context, code string, in *models.MatrixInput) (int, error)
	GetMatricesFunc  func(ctx context.Context, code string) (map[string]map[string]float64, error)
}

func (m *MockMatrixService) SubmitMatrix(ctx context.Context, code string, in *models.MatrixInput) (int, error) {
	if m.SubmitMatrixFunc != nil {
		return m.SubmitMatrixFunc(ctx, code, in)
	}
	return 1, nil
}

func (m *MockMatrixService) GetMatrices(ctx context.Context, code string) (map[string]map[string]float64, error) {
	if m.GetMatricesFunc != nil {
		return m.GetMatricesFunc(ctx, code)
	}
	return map[string]map[string]float64{}, nil
}

// MockPairingService
type MockPairingService struct {
	OptimizeFunc  func(ctx context.Context, code string) (*models.OptimizeResponse, error)
	RecommendFunc func(ctx context.Context, code string, req *models.RecommendationRequest) (*models.RecommendationResponse, error)
}

func (m *MockPairingService) Optimize(ctx context.Context, code string) (*models.OptimizeResponse, error) {
	if m.OptimizeFunc != nil {
		return m.OptimizeFunc(ctx, code)
	}
	return &models.OptimizeResponse{Complete: true, Result: &models.OptimizationResult{BestDefender: "A"}}, nil
}

func (m *MockPairingService) Recommend(ctx context.Context, code string, req *models.RecommendationRequest) (*models.RecommendationResponse, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, code, req)
	}
	return &models.RecommendationResponse{DecisionType: req.DecisionType, Recommendation: "A"}, nil
}

type MockSearchQueue struct {
	Depth int
}

func (m *MockSearchQueue) QueueDepth() int { return m.Depth }

var (
	_ logic.TournamentService = (*MockTournamentService)(nil)
	_ logic.SessionService    = (*MockSessionService)(nil)
	_ logic.MatrixService     = (*MockMatrixService)(nil)
	_ logic.PairingService    = (*MockPairingService)(nil)
)
