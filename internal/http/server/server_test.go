package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidemo/internal/config"
	"apidemo/internal/logging"
)

type fakeServer struct {
	name     string
	startErr error
	stop     chan struct{}
	shutdown atomic.Int32
}

func newFake(name string, startErr error) *fakeServer {
	return &fakeServer{name: name, startErr: startErr, stop: make(chan struct{})}
}

func (f *fakeServer) Name() string { return f.name }
func (f *fakeServer) Addr() string { return "fake:" + f.name }

func (f *fakeServer) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stop
	return nil
}

func (f *fakeServer) Shutdown(context.Context) error {
	if f.shutdown.Add(1) == 1 {
		close(f.stop)
	}
	return nil
}

func TestRun_StopsAllOnContextCancel(t *testing.T) {
	a, b := newFake("a", nil), newFake("b", nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, logging.NewNop(), a, b) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(1), a.shutdown.Load())
	assert.Equal(t, int32(1), b.shutdown.Load())
}

func TestRun_StartFailureShutsDownOthers(t *testing.T) {
	boom := errors.New("address already in use")
	healthy, broken := newFake("healthy", nil), newFake("broken", boom)

	err := Run(context.Background(), logging.NewNop(), healthy, broken)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, int32(1), healthy.shutdown.Load())
}

func TestRun_NoServers(t *testing.T) {
	assert.Error(t, Run(context.Background(), logging.NewNop()))
}

func TestHTTPServer_StartAndShutdown(t *testing.T) {
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0, ReadTimeout: time.Second}
	s := NewHTTP("plain", cfg, http.NotFoundHandler())
	assert.Equal(t, "plain", s.Name())
	assert.Equal(t, "127.0.0.1:0", s.Addr())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Shutdown may race the listener coming up; either way Start must return nil.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
