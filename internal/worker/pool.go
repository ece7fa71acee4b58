// Package worker implements the bounded worker pool that runs pairing
// searches off the HTTP goroutines:
// - Load shedding when the queue is full
// - One random generator per worker, never shared
// - Graceful shutdown that drains queued searches

package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	// ErrQueueFull is returned when a search is shed because every worker is
	// busy and the queue has no room.
	ErrQueueFull = errors.New("search queue is full")
	// ErrPoolStopped is returned for searches submitted after Stop.
	ErrPoolStopped = errors.New("worker pool stopped")
)

// Prometheus metrics
var (
	searchesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strategium_pool_searches_submitted_total",
		Help: "Total number of searches accepted by the pool",
	})

	searchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strategium_pool_searches_processed_total",
		Help: "Total number of searches completed by workers",
	})

	searchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strategium_pool_searches_failed_total",
		Help: "Total number of searches that returned an error",
	})

	searchesShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strategium_pool_searches_shed_total",
		Help: "Total number of searches dropped due to load shedding",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "strategium_pool_queue_depth",
		Help: "Current depth of the search queue",
	})

	taskDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "strategium_pool_task_duration_seconds",
		Help:    "Duration of searches run by workers",
		Buckets: prometheus.DefBuckets,
	})
)

// Task is a CPU-bound search. rng belongs to the worker running it.
type Task func(ctx context.Context, rng *rand.Rand) error

// Job represents a unit of work for the worker pool
type Job struct {
	ctx  context.Context
	task Task
	done chan error
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	// Seed seeds worker i's generator with Seed+i. Zero uses the clock.
	Seed   int64
	Logger *zap.Logger
}

// Pool runs searches on a fixed set of workers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop refuses new work, lets the workers drain the queue and waits for them.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.logger.Info("Stopping worker pool...")
	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Worker pool stopped")
}

// Do queues task and waits for its result. It never blocks on a full queue:
// the task is shed with ErrQueueFull instead.
func (p *Pool) Do(ctx context.Context, task func(ctx context.Context, rng *rand.Rand) error) error {
	job := Job{ctx: ctx, task: task, done: make(chan error, 1)}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		p.mu.RUnlock()
		searchesSubmitted.Inc()
	default:
		p.mu.RUnlock()
		searchesShed.Inc()
		p.logger.Warnw("Search shed, queue full", "queueDepth", len(p.jobQueue))
		return ErrQueueFull
	}

	select {
	case err := <-job.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	rng := rand.New(rand.NewSource(p.config.Seed + int64(id)))

	for job := range p.jobQueue {
		// The caller gave up while the job was queued.
		if err := job.ctx.Err(); err != nil {
			job.done <- err
			continue
		}

		start := time.Now()
		err := job.task(job.ctx, rng)
		taskDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			searchesFailed.Inc()
			p.logger.Debugw("Search failed", "worker", id, "error", err)
		} else {
			searchesProcessed.Inc()
		}
		job.done <- err
	}
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
