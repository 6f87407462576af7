package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPruner struct{ calls atomic.Int32 }

func (p *countingPruner) Prune() int { p.calls.Add(1); return 1 }

type countingSweeper struct{ calls atomic.Int32 }

func (s *countingSweeper) Sweep() int { s.calls.Add(1); return 0 }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_ServesAndStops(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	runner := NewRunner(handler, nil, nil, Config{}, quietLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestRunner_JanitorSweeps(t *testing.T) {
	pruner := &countingPruner{}
	sweeper := &countingSweeper{}
	runner := NewRunner(http.NotFoundHandler(), pruner, sweeper, Config{
		JanitorInterval: 10 * time.Millisecond,
	}, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.janitor(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return pruner.calls.Load() >= 2 && sweeper.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestRunner_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	runner := NewRunner(http.NotFoundHandler(), nil, nil, Config{Addr: ln.Addr().String()}, quietLogger())
	err = runner.Run(context.Background())
	assert.Error(t, err)
}

func TestNewRunner_Defaults(t *testing.T) {
	runner := NewRunner(http.NotFoundHandler(), nil, nil, Config{}, nil)
	require.NotNil(t, runner.logger)
	assert.Equal(t, time.Minute, runner.config.JanitorInterval)
	assert.Equal(t, 30*time.Second, runner.config.ShutdownTimeout)
}
