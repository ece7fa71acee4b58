package logic

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/strategium/pairings/internal/models"
)

const (
	sessionCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sessionCodeLength   = 6
	maxCodeAttempts     = 10
)

type sessionService struct {
	pg      PgPool
	newCode func() (string, error)
}

func NewSessionService(pg PgPool) SessionService {
	return &sessionService{pg: pg, newCode: generateSessionCode}
}

// CreateSession opens a pairing round between two teams of the same
// tournament and issues it a unique short code.
func (s *sessionService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error) {
	var teams int
	if err := s.pg.QueryRow(ctx,
		`SELECT count(*) FROM teams WHERE tournament_id = $1 AND id IN ($2, $3)`,
		req.TournamentID, req.YourTeamID, req.OpponentTeamID).Scan(&teams); err != nil {
		return nil, fmt.Errorf("lookup teams: %w", err)
	}
	if teams != 2 {
		return nil, fmt.Errorf("teams for tournament %s: %w", req.TournamentID, ErrNotFound)
	}

	sess := &models.Session{
		ID:             uuid.NewString(),
		TournamentID:   req.TournamentID,
		YourTeamID:     req.YourTeamID,
		OpponentTeamID: req.OpponentTeamID,
		RoundNumber:    req.RoundNumber,
		RoundName:      req.RoundName,
	}
	if sess.RoundNumber == 0 {
		sess.RoundNumber = 1
	}
	if sess.RoundName == "" {
		sess.RoundName = "Round " + strconv.Itoa(sess.RoundNumber)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, err
		}
		err = s.pg.QueryRow(ctx, `
			INSERT INTO sessions (id, code, tournament_id, your_team_id, opponent_team_id, round_number, round_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (code) DO NOTHING
			RETURNING created_at
		`, sess.ID, code, sess.TournamentID, sess.YourTeamID, sess.OpponentTeamID, sess.RoundNumber, sess.RoundName).
			Scan(&sess.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			continue // code collision
		}
		if err != nil {
			return nil, fmt.Errorf("insert session: %w", err)
		}
		sess.Code = code
		return sess, nil
	}
	return nil, fmt.Errorf("no free session code after %d attempts", maxCodeAttempts)
}

func (s *sessionService) GetSession(ctx context.Context, code string) (*models.Session, error) {
	sess := &models.Session{}
	err := s.pg.QueryRow(ctx, `
		SELECT id, code, tournament_id, your_team_id, opponent_team_id, round_number, round_name, created_at
		FROM sessions WHERE code = $1
	`, code).Scan(&sess.ID, &sess.Code, &sess.TournamentID, &sess.YourTeamID, &sess.OpponentTeamID,
		&sess.RoundNumber, &sess.RoundName, &sess.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) GetTournamentSessions(ctx context.Context, tournamentID string) ([]models.Session, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, code, tournament_id, your_team_id, opponent_team_id, round_number, round_name, created_at
		FROM sessions WHERE tournament_id = $1
		ORDER BY round_number, created_at
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	list := []models.Session{}
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(&sess.ID, &sess.Code, &sess.TournamentID, &sess.YourTeamID, &sess.OpponentTeamID,
			&sess.RoundNumber, &sess.RoundName, &sess.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, sess)
	}
	return list, rows.Err()
}

func generateSessionCode() (string, error) {
	b := make([]byte, sessionCodeLength)
	limit := big.NewInt(int64(len(sessionCodeAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate session code: %w", err)
		}
		b[i] = sessionCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}
