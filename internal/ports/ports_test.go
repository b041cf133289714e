package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcChecker adapts a function to HealthChecker.
type funcChecker struct {
	name  string
	check func(context.Context) error
}

func (f funcChecker) Name() string { return f.name }

func (f funcChecker) Check(ctx context.Context) error { return f.check(ctx) }

func healthy(name string) funcChecker {
	return funcChecker{name: name, check: func(context.Context) error { return nil }}
}

func failing(name, msg string) funcChecker {
	return funcChecker{name: name, check: func(context.Context) error { return errors.New(msg) }}
}

// slow waits for d or the context, whichever comes first.
func slow(name string, d time.Duration) funcChecker {
	return funcChecker{name: name, check: func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
			return nil
		}
	}}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(healthy("quote-store")))

	err := registry.Register(failing("quote-store", "x"))
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-store")

	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantChecks map[string]HealthStatus
		wantMsg    map[string]string
	}{
		{
			name:       "nothing registered",
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{},
		},
		{
			name:       "store healthy",
			checkers:   []HealthChecker{healthy("quote-store"), healthy("metrics")},
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{
				"quote-store": HealthStatusHealthy,
				"metrics":     HealthStatusHealthy,
			},
		},
		{
			name:       "one failure marks the whole result",
			checkers:   []HealthChecker{healthy("quote-store"), failing("metrics", "collector down")},
			wantStatus: HealthStatusUnhealthy,
			wantChecks: map[string]HealthStatus{
				"quote-store": HealthStatusHealthy,
				"metrics":     HealthStatusUnhealthy,
			},
			wantMsg: map[string]string{"metrics": "collector down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.wantChecks))

			for name, status := range tt.wantChecks {
				assert.Equal(t, status, result.Checks[name].Status, name)
				assert.Equal(t, tt.wantMsg[name], result.Checks[name].Message, name)
			}
		})
	}
}

func TestCheckAll_CallerCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(slow("quote-store", 100*time.Millisecond)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["quote-store"].Message, "context canceled")
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	t.Run("per-check deadline", func(t *testing.T) {
		registry := NewHealthRegistry(WithCheckTimeout(10 * time.Millisecond))
		require.NoError(t, registry.Register(slow("quote-store", time.Second)))

		result := registry.CheckAll(context.Background())

		assert.Equal(t, HealthStatusUnhealthy, result.Status)
		assert.Contains(t, result.Checks["quote-store"].Message, "deadline exceeded")
		assert.Less(t, result.Checks["quote-store"].Duration, time.Second)
	})

	t.Run("disabled", func(t *testing.T) {
		registry := NewHealthRegistry(WithCheckTimeout(0))
		require.NoError(t, registry.Register(slow("quote-store", 20*time.Millisecond)))

		assert.Equal(t, HealthStatusHealthy, registry.CheckAll(context.Background()).Status)
	})

	t.Run("default", func(t *testing.T) {
		assert.Equal(t, DefaultCheckTimeout, NewHealthRegistry().checkTimeout)
	})
}

func TestCheckAll_PanicIsUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(funcChecker{name: "broken", check: func(context.Context) error { panic("boom") }}))
	require.NoError(t, registry.Register(healthy("quote-store")))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["quote-store"].Status)
	assert.Contains(t, result.Checks["broken"].Message, ErrCheckPanicked.Error())
	assert.Contains(t, result.Checks["broken"].Message, "boom")
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	registry := NewHealthRegistry()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, registry.Register(slow(name, 50*time.Millisecond)))
	}

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}
