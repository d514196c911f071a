package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s, err := New(Config{Timezone: "UTC"}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New(Config{Timezone: "Mars/Olympus"}, zap.NewNop())
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	s := newTestScheduler(t)
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Add("commodities", "5 * * * *", noop))
	require.NoError(t, s.Add("disabled", "", noop))
	assert.Error(t, s.Add("broken", "not a spec", noop))
	assert.Error(t, s.Add("commodities", "@hourly", noop))

	assert.Equal(t, []string{"commodities"}, s.Jobs())
}

func TestTrigger(t *testing.T) {
	s := newTestScheduler(t)
	var runs atomic.Int32
	require.NoError(t, s.Add("roster", "@daily", func(context.Context) error {
		runs.Add(1)
		return errors.New("logged, not propagated")
	}))

	require.NoError(t, s.Trigger("roster"))
	assert.Equal(t, int32(1), runs.Load())
	assert.Error(t, s.Trigger("unknown"))
}

func TestTrigger_SkipsOverlappingRun(t *testing.T) {
	s := newTestScheduler(t)
	var runs atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	require.NoError(t, s.Add("recipes", "@daily", func(context.Context) error {
		runs.Add(1)
		close(started)
		<-release
		return nil
	}))

	done := make(chan struct{})
	go func() {
		_ = s.Trigger("recipes")
		close(done)
	}()
	<-started

	// The second run overlaps the first and is dropped.
	require.NoError(t, s.Trigger("recipes"))
	assert.Equal(t, int32(1), runs.Load())

	close(release)
	<-done
}

func TestStart_StopsWithContext(t *testing.T) {
	s := newTestScheduler(t)
	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	require.NoError(t, s.Add("characters", "@daily", func(context.Context) error {
		runs.Add(1)
		ran <- struct{}{}
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Start(ctx, true)
		close(stopped)
	}()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("startup run did not happen")
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), runs.Load())
}

func TestRun_SerializesDifferentJobs(t *testing.T) {
	s := newTestScheduler(t)
	var active, peak atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	enter := func() {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
	}

	require.NoError(t, s.Add("roster", "@daily", func(context.Context) error {
		enter()
		defer active.Add(-1)
		close(started)
		<-release
		return nil
	}))
	require.NoError(t, s.Add("characters", "@daily", func(context.Context) error {
		enter()
		defer active.Add(-1)
		return nil
	}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.Trigger("roster")
	}()
	<-started
	go func() {
		defer wg.Done()
		_ = s.Trigger("characters")
	}()

	// characters waits for roster to finish
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), active.Load())
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
}

func TestStart_StartupPassRunsInOrder(t *testing.T) {
	s := newTestScheduler(t)
	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}
	done := make(chan struct{})

	require.NoError(t, s.Add("catalog", "@weekly", record("catalog")))
	require.NoError(t, s.Add("roster", "@daily", record("roster")))
	require.NoError(t, s.Add("characters", "@daily", func(ctx context.Context) error {
		_ = record("characters")(ctx)
		close(done)
		return nil
	}))
	assert.Equal(t, []string{"catalog", "roster", "characters"}, s.Jobs())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx, true)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("startup pass did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"catalog", "roster", "characters"}, order)
}

func TestStart_WaitsForStartupRun(t *testing.T) {
	s := newTestScheduler(t)
	started := make(chan struct{})
	var finished atomic.Bool

	require.NoError(t, s.Add("commodities", "@hourly", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Start(ctx, true)
		close(stopped)
	}()

	<-started
	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.True(t, finished.Load())
}
