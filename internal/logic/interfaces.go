package logic

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/strategium/pairings/internal/models"
)

// ErrNotFound is returned when a tournament, team or session does not exist.
var ErrNotFound = errors.New("not found")

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HLen(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// SearchRunner executes a CPU-bound search with a generator it owns.
type SearchRunner interface {
	Do(ctx context.Context, task func(ctx context.Context, rng *rand.Rand) error) error
}

type TournamentService interface {
	CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error)
	GetTournaments(ctx context.Context) ([]models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	GetTeamRoster(ctx context.Context, teamID string) ([]string, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.Session, error)
	GetSession(ctx context.Context, code string) (*models.Session, error)
	GetTournamentSessions(ctx context.Context, tournamentID string) ([]models.Session, error)
}

type MatrixService interface {
	SubmitMatrix(ctx context.Context, code string, in *models.MatrixInput) (int, error)
	GetMatrices(ctx context.Context, code string) (map[string]map[string]float64, error)
}

type PairingService interface {
	Optimize(ctx context.Context, code string) (*models.OptimizeResponse, error)
	Recommend(ctx context.Context, code string, req *models.RecommendationRequest) (*models.RecommendationResponse, error)
}
