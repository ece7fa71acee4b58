package handlers

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/strategium/pairings/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// SearchQueue is the part of the worker pool the readiness probe reports on.
type SearchQueue interface {
	QueueDepth() int
}

// Check probes one dependency for readiness.
type Check func(ctx context.Context) error

type Config struct {
	WorkerPool SearchQueue
	Checks     map[string]Check
	Logger     *zap.Logger
	// Services
	Tournament logic.TournamentService
	Session    logic.SessionService
	Matrix     logic.MatrixService
	Pairing    logic.PairingService
}

type Handler struct {
	pool       SearchQueue
	checks     map[string]Check
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	tournament logic.TournamentService
	session    logic.SessionService
	matrix     logic.MatrixService
	pairing    logic.PairingService
}

func New(cfg Config) *Handler {
	v := validator.New()
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		pool:       cfg.WorkerPool,
		checks:     cfg.Checks,
		logger:     cfg.Logger.Sugar(),
		validator:  v,
		tournament: cfg.Tournament,
		session:    cfg.Session,
		matrix:     cfg.Matrix,
		pairing:    cfg.Pairing,
	}
}
