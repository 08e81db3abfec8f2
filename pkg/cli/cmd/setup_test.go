package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uelms/dbsetup/pkg/cli/cmd"
	"github.com/uelms/dbsetup/pkg/cli/ui/confirm"
	"github.com/uelms/dbsetup/pkg/cli/ui/errorhandler"
	runtime "github.com/uelms/dbsetup/pkg/di"
	interactiveconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/interactive"
	databaseprovisioner "github.com/uelms/dbsetup/pkg/svc/provisioner/database"
	"github.com/uelms/dbsetup/pkg/utils/logger"
)

var errRefused = errors.New("dial tcp 10.0.0.1:6543: connection refused")

const interactiveAnswers = "db.example.com\n6543\nrailway\nroot\nsecret\n"

type recordingConnector struct {
	err      error
	connects []databaseprovisioner.ConnectOptions
	session  *recordingSession
}

func (c *recordingConnector) Connect(
	_ context.Context,
	opts databaseprovisioner.ConnectOptions,
) (databaseprovisioner.Session, error) {
	c.connects = append(c.connects, opts)

	if c.err != nil {
		return nil, c.err
	}

	c.session = &recordingSession{}

	return c.session, nil
}

type recordingSession struct {
	statements []string
	commits    int
	closes     int
}

func (s *recordingSession) Exec(_ context.Context, statement string) error {
	s.statements = append(s.statements, statement)

	return nil
}

func (s *recordingSession) Commit(context.Context) error {
	s.commits++

	return nil
}

func (s *recordingSession) CountRows(context.Context, string, ...any) (int, error) {
	return 1, nil
}

func (s *recordingSession) Close() error {
	s.closes++

	return nil
}

func newTestRoot(connector *recordingConnector, out *bytes.Buffer, args ...string) *cobra.Command {
	rt := runtime.New(
		runtime.ProvideTimer,
		func(i runtime.Injector) error {
			do.Provide(i, func(runtime.Injector) (*logrus.Logger, error) {
				return logger.Discard(), nil
			})

			return nil
		},
		func(i runtime.Injector) error {
			do.Provide(i, func(runtime.Injector) (databaseprovisioner.Connector, error) {
				return connector, nil
			})

			return nil
		},
	)

	root := cmd.NewRootCmdWithRuntime(rt, "test", "test", "test")
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	return root
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "railway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInteractiveSetupSucceeds(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "interactive", "--no-pause")
	root.SetIn(strings.NewReader(interactiveAnswers))

	require.NoError(t, cmd.Execute(root))

	require.Len(t, connector.connects, 1)
	assert.Equal(t, databaseprovisioner.ConnectOptions{
		Host:     "db.example.com",
		Port:     6543,
		Database: "railway",
		User:     "root",
		Password: "secret",
	}, connector.connects[0])
	assert.Len(t, connector.session.statements, 3)
	assert.Equal(t, 1, connector.session.commits)
	assert.Equal(t, 1, connector.session.closes)

	got := out.String()
	for _, prompt := range interactiveconfigmanager.DefaultPrompts() {
		assert.Contains(t, got, prompt.Label)
	}

	assert.Contains(t, got, "Interactive database setup")
	assert.Contains(t, got, "database setup completed")
	assert.Contains(t, got, "found 1 admin user(s)")
	assert.Contains(t, got, "Username: admin")
	assert.NotContains(t, got, "⏲")
}

func TestInteractiveSetupInputClosed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "interactive", "--no-pause")
	root.SetIn(strings.NewReader("db.example.com\n6543\n"))

	err := cmd.Execute(root)

	require.ErrorIs(t, err, interactiveconfigmanager.ErrInputClosed)
	assert.True(t, errorhandler.IsReported(err))
	assert.Empty(t, connector.connects)
	assert.Contains(t, out.String(), "CONFIGURATION ERROR")
	assert.Contains(t, out.String(), "Check your connection details and try again")
}

func TestInteractiveSetupInvalidPort(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "interactive", "--no-pause")
	root.SetIn(strings.NewReader("db.example.com\nsixty\nrailway\nroot\nsecret\n"))

	err := cmd.Execute(root)

	require.Error(t, err)
	assert.Empty(t, connector.connects)
	assert.Contains(t, out.String(), "CONFIGURATION ERROR")
}

func TestAutoSetupSucceedsWithTiming(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := writeConfig(t, "host: db.example.com\nport: 6543\ndatabase: railway\nuser: root\npassword: secret\n")
	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "--timing", "auto", "--no-pause", "--config", path)

	require.NoError(t, cmd.Execute(root))

	require.Len(t, connector.connects, 1)
	assert.Equal(t, 6543, connector.connects[0].Port)

	got := out.String()
	assert.Contains(t, got, "Automatic database setup")
	assert.Contains(t, got, "using config file")
	assert.Contains(t, got, "database setup completed")
	assert.Contains(t, got, "⏲ current:")
	assert.NotContains(t, got, "secret")
}

func TestAutoSetupPlaceholderNeverConnects(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := writeConfig(t, "host: YOUR_HOST_HERE\nport: 6543\ndatabase: railway\nuser: root\npassword: secret\n")
	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "auto", "--no-pause", "-c", path)

	err := cmd.Execute(root)

	require.Error(t, err)
	assert.True(t, errorhandler.IsReported(err))
	assert.Empty(t, connector.connects)

	got := out.String()
	assert.Contains(t, got, "CONFIGURATION ERROR")
	assert.Contains(t, got, "1. Edit")
	assert.Contains(t, got, path)
	assert.Contains(t, got, "2. Run this command again")
}

func TestAutoSetupFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := writeConfig(t, "host: YOUR_HOST_HERE\nport: 6543\ndatabase: railway\nuser: root\npassword: secret\n")
	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "auto", "--no-pause", "-c", path, "--host", "flag.example.com")

	require.NoError(t, cmd.Execute(root))
	require.Len(t, connector.connects, 1)
	assert.Equal(t, "flag.example.com", connector.connects[0].Host)
}

func TestAutoSetupConnectionFailure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := writeConfig(t, "host: db.example.com\nport: 6543\ndatabase: railway\nuser: root\npassword: secret\n")
	connector := &recordingConnector{err: errRefused}
	root := newTestRoot(connector, &out, "auto", "--no-pause", "--config", path)

	err := cmd.Execute(root)

	require.ErrorIs(t, err, errRefused)
	assert.Len(t, connector.connects, 1)
	assert.Contains(t, out.String(), "DATABASE ERROR")
	assert.Contains(t, out.String(), "connection refused")
}

//nolint:paralleltest // Shares the TTY checker and stdin reader overrides.
func TestSetupPausesOnTerminal(t *testing.T) {
	restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return true })
	defer restoreTTY()

	restoreStdin := confirm.SetStdinReaderForTests(strings.NewReader("\n"))
	defer restoreStdin()

	var out bytes.Buffer

	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "interactive")
	root.SetIn(strings.NewReader(interactiveAnswers))

	require.NoError(t, cmd.Execute(root))
	assert.True(t, strings.HasSuffix(out.String(), confirm.ExitPrompt))
}

func TestInitWritesTemplate(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	output := filepath.Join(t.TempDir(), "conf", "railway.yaml")
	root := newTestRoot(&recordingConnector{}, &out, "init", "--output", output)

	require.NoError(t, cmd.Execute(root))

	//nolint:gosec // G304: path is created by the test (temp directory).
	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "host: YOUR_HOST_HERE")
	assert.Contains(t, out.String(), "created 'railway.yaml'")

	second := newTestRoot(&recordingConnector{}, &bytes.Buffer{}, "init", "-o", output)
	require.Error(t, cmd.Execute(second))

	forced := newTestRoot(&recordingConnector{}, &bytes.Buffer{}, "init", "-o", output, "--force")
	require.NoError(t, cmd.Execute(forced))
}

//nolint:paralleltest // Uses t.Setenv.
func TestAutoSetupMissingConfigFileNeverConnects(t *testing.T) {
	t.Setenv("RAILWAY_HOST", "db.example.com")
	t.Setenv("RAILWAY_PORT", "6543")
	t.Setenv("RAILWAY_DATABASE", "railway")
	t.Setenv("RAILWAY_USER", "root")
	t.Setenv("RAILWAY_PASSWORD", "secret")

	var out bytes.Buffer

	path := filepath.Join(t.TempDir(), "missing.yaml")
	connector := &recordingConnector{}
	root := newTestRoot(connector, &out, "auto", "--no-pause", "--config", path)

	err := cmd.Execute(root)

	require.Error(t, err)
	assert.True(t, errorhandler.IsReported(err))
	assert.Empty(t, connector.connects)
	assert.Contains(t, out.String(), "CONFIGURATION ERROR")
	assert.Contains(t, out.String(), "config file not found")
	assert.Contains(t, out.String(), path)
}

func TestSetupWithoutTimerFails(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	connector := &recordingConnector{}
	rt := runtime.New(func(i runtime.Injector) error {
		do.Provide(i, func(runtime.Injector) (databaseprovisioner.Connector, error) {
			return connector, nil
		})

		return nil
	})

	root := cmd.NewRootCmdWithRuntime(rt, "test", "test", "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(interactiveAnswers))
	root.SetArgs([]string{"interactive", "--no-pause"})

	err := cmd.Execute(root)

	require.ErrorContains(t, err, "resolve timer dependency")
	assert.False(t, errorhandler.IsReported(err))
	assert.Empty(t, connector.connects)
}
