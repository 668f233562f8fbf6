// Package simulator makes in-process calls behave like a remote service:
// every call waits a fixed latency and may fail with a transient error.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrTransient is returned for injected, retryable failures and call timeouts.
var ErrTransient = errors.New("transient failure")

// DefaultFailureRate is the per-call probability of an injected failure.
const DefaultFailureRate = 0.005

// Op describes one simulated call.
type Op struct {
	Name  string        // e.g. "posts.getReplies"
	Key   any           // call argument, nil for list calls
	Delay time.Duration // unscaled latency
}

func (op Op) String() string {
	if op.Key == nil {
		return op.Name
	}
	return fmt.Sprintf("%s(%v)", op.Name, op.Key)
}

// FailFunc decides whether a call fails. It replaces the random roll when set.
type FailFunc func(op Op) bool

// Simulator injects latency and transient failures.
type Simulator struct {
	failureRate  float64
	latencyScale float64
	timeout      time.Duration
	failFunc     FailFunc
	logger       *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithFailureRate sets the per-call failure probability in [0, 1].
func WithFailureRate(rate float64) Option {
	return func(s *Simulator) { s.failureRate = min(max(rate, 0), 1) }
}

// WithLatencyScale multiplies every delay. 0 disables waiting.
func WithLatencyScale(scale float64) Option {
	return func(s *Simulator) { s.latencyScale = max(scale, 0) }
}

// WithTimeout bounds each call. 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Simulator) { s.timeout = d }
}

// WithSeed makes the failure roll reproducible. 0 seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithFailFunc scripts failures deterministically.
func WithFailFunc(f FailFunc) Option {
	return func(s *Simulator) { s.failFunc = f }
}

// WithLogger sets the logger used for injected failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// New creates a Simulator. Without options it waits the full latency and fails at DefaultFailureRate.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		failureRate:  DefaultFailureRate,
		latencyScale: 1,
		logger:       zap.NewNop(),
	}
	WithSeed(0)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Call waits the op's latency, then returns ErrTransient with the configured probability.
// Cancelling ctx stops the wait and returns the context's error.
func (s *Simulator) Call(ctx context.Context, op Op) error {
	if err := s.wait(ctx, op); err != nil {
		return err
	}
	if s.shouldFail(op) {
		s.logger.Debug("Injected transient failure", zap.Stringer("op", op))
		return fmt.Errorf("%s: %w", op, ErrTransient)
	}
	return nil
}

func (s *Simulator) wait(ctx context.Context, op Op) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	delay := time.Duration(float64(op.Delay) * s.latencyScale)
	if delay <= 0 {
		return nil
	}

	var deadline <-chan time.Time
	if s.timeout > 0 {
		bound := time.NewTimer(s.timeout)
		defer bound.Stop()
		deadline = bound.C
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-deadline:
		return fmt.Errorf("%s timed out after %s: %w", op, s.timeout, ErrTransient)
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func (s *Simulator) shouldFail(op Op) bool {
	if s.failFunc != nil {
		return s.failFunc(op)
	}
	if s.failureRate <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.failureRate
}
