package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/strategium/pairings/internal/models"
)

// DefaultMatrixTTL bounds how long an idle session keeps its matrices.
const DefaultMatrixTTL = 72 * time.Hour

type matrixService struct {
	redis RedisClient
	ttl   time.Duration
}

// NewMatrixService stores each session's matrices in one Redis hash keyed by
// player name.
func NewMatrixService(redis RedisClient, ttl time.Duration) MatrixService {
	if ttl <= 0 {
		ttl = DefaultMatrixTTL
	}
	return &matrixService{redis: redis, ttl: ttl}
}

func matrixKey(code string) string {
	return "strategium:session:" + code + ":matrices"
}

// SubmitMatrix replaces the player's matrix and returns how many players have
// submitted so far.
func (s *matrixService) SubmitMatrix(ctx context.Context, code string, in *models.MatrixInput) (int, error) {
	payload, err := json.Marshal(in.Matrix)
	if err != nil {
		return 0, fmt.Errorf("encode matrix: %w", err)
	}

	key := matrixKey(code)
	if err := s.redis.HSet(ctx, key, in.PlayerName, payload).Err(); err != nil {
		return 0, fmt.Errorf("store matrix: %w", err)
	}
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("refresh matrix ttl: %w", err)
	}

	n, err := s.redis.HLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("count matrices: %w", err)
	}
	return int(n), nil
}

func (s *matrixService) GetMatrices(ctx context.Context, code string) (map[string]map[string]float64, error) {
	raw, err := s.redis.HGetAll(ctx, matrixKey(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("load matrices: %w", err)
	}

	out := make(map[string]map[string]float64, len(raw))
	for player, payload := range raw {
		var row map[string]float64
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, fmt.Errorf("decode matrix for %s: %w", player, err)
		}
		out[player] = row
	}
	return out, nil
}
