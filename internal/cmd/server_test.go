package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/server"
)

func TestVersionCmd(t *testing.T) {
	stdout := &bytes.Buffer{}
	cli := &CLI{Stdout: stdout, Stderr: stdout}
	ctx := context.WithValue(context.Background(), ctxKey{}, cli)

	err := Run(ctx, "version")
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(stdout.Bytes(), []byte(internal.FullVersion())))
}

func TestServerCmd_OptionsFromConfigFile(t *testing.T) {
	var actual server.Options
	patchRunServer(t, func(ctx context.Context, srv *server.Server) error {
		actual = srv.Options()
		return nil
	})

	dir := t.TempDir()
	content := `
addr:
  http: "127.0.0.1:0"
  metrics: "127.0.0.1:0"
`
	configFile := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(configFile, []byte(content), 0o600)
	assert.NilError(t, err)

	err = Run(context.Background(), "server",
		"--config-file", configFile,
		"--db-file", filepath.Join(dir, "wf.db"),
		"--session-duration", "3h",
		"--enable-signup=false")
	assert.NilError(t, err)

	assert.Equal(t, actual.Addr.HTTP, "127.0.0.1:0")
	assert.Equal(t, actual.Addr.Metrics, "127.0.0.1:0")
	assert.Equal(t, actual.DBFile, filepath.Join(dir, "wf.db"))
	assert.Equal(t, actual.SessionDuration, 3*time.Hour)
	assert.Equal(t, actual.EnableSignup, false)
}

func TestServerCmd_OptionsFromEnv(t *testing.T) {
	var actual server.Options
	patchRunServer(t, func(ctx context.Context, srv *server.Server) error {
		actual = srv.Options()
		return nil
	})

	dir := t.TempDir()
	// flag values default from WORKFORCE_* variables
	t.Setenv("WORKFORCE_DB_FILE", filepath.Join(dir, "env.db"))
	t.Setenv("WORKFORCE_SESSION_DURATION", "90m")
	// fields without flags are read by the WORKFORCE_SERVER prefix
	t.Setenv("WORKFORCE_SERVER_ADDR_HTTP", "127.0.0.1:0")
	t.Setenv("WORKFORCE_SERVER_ADDR_METRICS", "127.0.0.1:0")

	err := Run(context.Background(), "server")
	assert.NilError(t, err)

	assert.Equal(t, actual.DBFile, filepath.Join(dir, "env.db"))
	assert.Equal(t, actual.SessionDuration, 90*time.Minute)
	assert.Equal(t, actual.Addr.HTTP, "127.0.0.1:0")
}

func patchRunServer(t *testing.T, fn func(context.Context, *server.Server) error) {
	t.Helper()
	orig := runServer
	runServer = fn
	t.Cleanup(func() {
		runServer = orig
	})
}
