package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"frontdoor/config"
	"frontdoor/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageBody = "<h1>served</h1>"

func testConfig(t *testing.T, port string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(pageBody), 0644))

	cfg, err := config.NewConfigBuilder().
		WithHost("127.0.0.1").
		WithPort(port).
		WithTemplateDir(dir).
		Build()
	require.NoError(t, err)
	return cfg
}

func newTestApplication(t *testing.T, port string) *Application {
	t.Helper()
	cfg := testConfig(t, port)
	return NewApplication(cfg, NewLogger(cfg, io.Discard))
}

func TestApplication_ServesIndex(t *testing.T) {
	application := newTestApplication(t, "0")
	require.NoError(t, application.Start())
	defer application.Stop()

	resp, err := http.Get("http://" + application.Addr() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pageBody, string(body))
}

func TestApplication_BindsConfiguredAddress(t *testing.T) {
	application := newTestApplication(t, "0")
	assert.Equal(t, "127.0.0.1:0", application.Addr())

	require.NoError(t, application.Start())
	defer application.Stop()

	host, port, err := net.SplitHostPort(application.Addr())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.NotEqual(t, "0", port)
}

func TestApplication_SecondInstanceFailsToBind(t *testing.T) {
	first := newTestApplication(t, "0")
	require.NoError(t, first.Start())
	defer first.Stop()

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	second := newTestApplication(t, port)
	defer second.Stop()
	err = second.Start()

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.NetworkError))
}

func TestApplication_RunContextStopsOnCancel(t *testing.T) {
	application := newTestApplication(t, "0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.RunContext(ctx) }()

	select {
	case <-application.Started():
	case err := <-done:
		t.Fatalf("RunContext returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("application did not start")
	}
	assert.NotEqual(t, "127.0.0.1:0", application.Addr())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunContext did not return after cancel")
	}
}

func TestApplication_RunContextReportsBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	application := newTestApplication(t, port)
	err = application.RunContext(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.NetworkError))
}

func TestApplication_StopIsIdempotent(t *testing.T) {
	application := newTestApplication(t, "0")
	require.NoError(t, application.Start())

	assert.NoError(t, application.Stop())
	assert.NoError(t, application.Stop())
}
