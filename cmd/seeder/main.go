// Command seeder loads the sample tournament into a running API, opens a
// session and submits every sample matrix.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/strategium/pairings/internal/models"
)

var (
	ownPlayers      = []string{"Laurence", "Byron", "Denis", "Sam", "Euan"}
	opponentPlayers = []string{"Jack", "John", "James", "Jim", "Joe"}

	sampleMatrices = map[string]map[string]float64{
		"Laurence": {"Jack": 15, "John": 8, "James": 12, "Jim": 6, "Joe": 11},
		"Byron":    {"Jack": 9, "John": 14, "James": 10, "Jim": 16, "Joe": 7},
		"Denis":    {"Jack": 11, "John": 7, "James": 18, "Jim": 10, "Joe": 13},
		"Sam":      {"Jack": 8, "John": 12, "James": 9, "Jim": 13, "Joe": 15},
		"Euan":     {"Jack": 13, "John": 16, "James": 6, "Jim": 11, "Joe": 9},
	}
)

type seeder struct {
	baseURL string
	client  *http.Client
	logger  *zap.SugaredLogger
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080/api/v1", "API base URL")
	optimize := flag.Bool("optimize", true, "run the optimizer once the matrices are in")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	s := &seeder{
		baseURL: *apiURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger.Sugar(),
	}
	if err := s.run(*optimize); err != nil {
		s.logger.Errorw("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func (s *seeder) run(optimize bool) error {
	var tournament models.Tournament
	if err := s.post("/tournaments", sampleTournament(), http.StatusCreated, &tournament); err != nil {
		return fmt.Errorf("create tournament: %w", err)
	}
	if len(tournament.Teams) != 2 {
		return fmt.Errorf("expected 2 teams, got %d", len(tournament.Teams))
	}
	s.logger.Infow("Tournament created", "id", tournament.ID, "name", tournament.Name)

	var session models.Session
	if err := s.post("/sessions", models.CreateSessionRequest{
		TournamentID:   tournament.ID,
		YourTeamID:     tournament.Teams[0].ID,
		OpponentTeamID: tournament.Teams[1].ID,
	}, http.StatusCreated, &session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.logger.Infow("Session opened", "code", session.Code, "round", session.RoundName)

	for _, player := range ownPlayers {
		var ack models.MatrixSubmitted
		in := models.MatrixInput{PlayerName: player, Matrix: sampleMatrices[player]}
		if err := s.post("/sessions/"+session.Code+"/matrix", in, http.StatusOK, &ack); err != nil {
			return fmt.Errorf("submit matrix for %s: %w", player, err)
		}
		s.logger.Infow("Matrix submitted", "player", player, "total", ack.TotalSubmitted)
	}

	if !optimize {
		return nil
	}
	var result models.OptimizeResponse
	if err := s.post("/sessions/"+session.Code+"/optimize", nil, http.StatusOK, &result); err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	if !result.Complete {
		return fmt.Errorf("session incomplete, missing %v", result.Incomplete.Missing)
	}
	s.logger.Infow("Optimization finished",
		"defender", result.Result.BestDefender,
		"attackers", result.Result.BestAttackers,
		"expected", result.Result.ExpectedScore,
	)
	return nil
}

func sampleTournament() models.CreateTournamentRequest {
	team := func(name, army, archetype string, players []string) models.CreateTeamRequest {
		t := models.CreateTeamRequest{Name: name}
		for _, p := range players {
			t.Players = append(t.Players, models.CreatePlayerRequest{Name: p, Army: army, Archetype: archetype})
		}
		return t
	}
	return models.CreateTournamentRequest{
		Name: "Test Tournament 2024",
		Teams: []models.CreateTeamRequest{
			team("Fire and Dice Test", "Space Marines", "Balanced", ownPlayers),
			team("Enemy Team 1", "Chaos", "Aggressive", opponentPlayers),
		},
	}
}

func (s *seeder) post(path string, body interface{}, want int, out interface{}) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		return fmt.Errorf("%s: status %s: %s", path, resp.Status, bytes.TrimSpace(raw))
	}
	return json.Unmarshal(raw, out)
}
