package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/dag-manager/internal/testutil"
	"github.com/LENAX/dag-manager/pkg/config"
)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "app.db")

	app, err := NewApp(context.Background(), cfg, dsn, "test")
	require.NoError(t, err)
	t.Cleanup(app.Close)

	_, err = app.Pool().DB().Exec(testutil.Schema)
	require.NoError(t, err)
	return app
}

func TestNewApp_MissingDatabaseURL(t *testing.T) {
	_, err := NewApp(context.Background(), config.Default(), "", "test")
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, config.DatabaseURLEnv, cfgErr.Key)
}

func TestNewApp_InvalidCron(t *testing.T) {
	cfg := config.Default()
	cfg.DagManager.Monitor.Enabled = true
	cfg.DagManager.Monitor.PoolStatsCron = "not a cron"

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "app.db")
	_, err := NewApp(context.Background(), cfg, dsn, "test")

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "monitor.pool_stats_cron", cfgErr.Key)
}

func TestApp_HandlesRequests(t *testing.T) {
	cfg := config.Default()
	cfg.DagManager.Monitor.Enabled = true
	app := newTestApp(t, cfg)

	w := request(app.Handler(), http.MethodPost, "/dags", `{"name":"build"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"build"`)

	w = request(app.Handler(), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "sqlite", app.Pool().Dialect().Name())
	assert.Equal(t, ListenAddr, app.Server().Addr())
}

func TestAPIServer_ServeAndShutdown(t *testing.T) {
	app := newTestApp(t, config.Default())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- app.Server().Serve(ln)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/dags", ln.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body))

	require.NoError(t, app.Server().Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
