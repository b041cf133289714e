package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrDuplicateChecker rejects a second checker with a taken name.
	ErrDuplicateChecker = errors.New("duplicate health checker")

	// ErrCheckPanicked is reported for a checker that panicked.
	ErrCheckPanicked = errors.New("health check panicked")
)

// HealthChecker is a component that can report on itself for /-/ready.
//
//	func (s *QuoteStore) Name() string { return "quote-store" }
//	func (s *QuoteStore) Check(ctx context.Context) error { return ctx.Err() }
type HealthChecker interface {
	// Name must be unique within a registry; it keys the readiness output.
	Name() string

	// Check returns nil when healthy. It should honour ctx.
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers at start-up and runs them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is healthy or unhealthy.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the outcome of one CheckAll run. Status is unhealthy if
// any single check is.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker. Message holds the error text
// of a failed check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultCheckTimeout bounds a single checker when the caller's context
// has no earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// DefaultHealthRegistry is the HealthRegistry used by the service.
// It is safe for concurrent use.
type DefaultHealthRegistry struct {
	mu           sync.RWMutex
	checkers     []HealthChecker
	checkTimeout time.Duration
}

// RegistryOption configures a DefaultHealthRegistry.
type RegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout sets the per-checker deadline. Zero or negative
// leaves only the caller's context in charge.
func WithCheckTimeout(d time.Duration) RegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.checkTimeout = d
	}
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry(opts ...RegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{checkTimeout: DefaultCheckTimeout}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a checker. Names must be unique.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if slices.ContainsFunc(r.checkers, func(c HealthChecker) bool { return c.Name() == name }) {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every checker concurrently and waits for all of them.
// A failing or panicking checker never cancels its siblings.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	started := time.Now()
	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: started,
	}

	for i, checker := range checkers {
		out.Checks[checker.Name()] = results[i]
		if results[i].Status == HealthStatusUnhealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}

// run times one checker and records its outcome.
func (r *DefaultHealthRegistry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	start := time.Now()
	err := r.check(ctx, checker)

	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}

// check applies the per-check deadline and turns a panic into an error.
func (r *DefaultHealthRegistry) check(ctx context.Context, checker HealthChecker) (err error) {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrCheckPanicked, p)
		}
	}()

	return checker.Check(ctx)
}
