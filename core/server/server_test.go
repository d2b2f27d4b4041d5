package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge/core/server"
)

func waitReady(t *testing.T, srv *server.Server) string {
	t.Helper()
	select {
	case <-srv.Ready():
		return srv.Addr()
	case <-time.After(2 * time.Second):
		t.Fatal("server did not become ready")
		return ""
	}
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(2*time.Second))
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler)() }()

	addr := waitReady(t, srv)
	status, body := get(t, "http://"+addr+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_DrainsInFlightRequests(t *testing.T) {
	t.Parallel()

	var finished atomic.Bool
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		_, _ = w.Write([]byte("done"))
	})

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(2*time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler)() }()

	addr := waitReady(t, srv)

	respCh := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			respCh <- err.Error()
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		respCh <- string(body)
	}()

	<-started
	cancel()

	assert.Equal(t, "done", <-respCh)
	assert.True(t, finished.Load())
	assert.NoError(t, <-done)
}

func TestServer_BindFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := server.New(ln.Addr().String())
	err = srv.Run(context.Background(), http.NotFoundHandler())()

	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrListen)
}

func TestServer_StartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Start(ctx, http.NotFoundHandler()) }()
	waitReady(t, srv)

	err := srv.Start(ctx, http.NotFoundHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	require.NoError(t, srv.Stop())
	assert.ErrorIs(t, srv.Start(ctx, http.NotFoundHandler()), server.ErrServerClosed)
}

func TestServer_StopWhenNotRunning(t *testing.T) {
	t.Parallel()

	assert.NoError(t, server.New("127.0.0.1:0").Stop())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, server.DefaultAddr, srv.Addr())
	})

	t.Run("missing address", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
		assert.Nil(t, srv)
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{Addr: ":0"})
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("tls only with both files", func(t *testing.T) {
		srv, err := server.NewFromConfig(server.Config{Addr: ":0", TLSCertFile: "/nonexistent/cert.pem"})
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("unreadable certificate", func(t *testing.T) {
		_, err := server.NewFromConfig(server.Config{
			Addr:        ":0",
			TLSCertFile: "/nonexistent/cert.pem",
			TLSKeyFile:  "/nonexistent/key.pem",
		})
		assert.True(t, errors.Is(err, server.ErrFailedLoadCert))
	})
}
