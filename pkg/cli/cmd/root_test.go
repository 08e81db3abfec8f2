package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uelms/dbsetup/pkg/cli/cmd"
	"github.com/uelms/dbsetup/pkg/cli/flags"
	"github.com/uelms/dbsetup/pkg/utils/notify"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

var errRootTest = errors.New("boom")

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	version := "1.2.3"
	commit := "abc123"
	date := "2025-08-17"
	root := cmd.NewRootCmd(version, commit, date)

	expectedVersion := version + " (Built on " + date + " from Git SHA " + commit + ")"
	assert.Equal(t, expectedVersion, root.Version)
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	for _, name := range []string{"auto", "interactive", "init"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetArgs([]string{})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsHelpFlag(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsAutoHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"auto", "--help"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	_ = root.Execute()

	assert.Equal(t, "dbsetup version 1.2.3 (Built on 2025-08-17 from Git SHA abc123)\n", out.String())
}

func TestNewRootCmdPersistentFlagDefaults(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	for _, name := range []string{flags.TimingFlagName, flags.VerboseFlagName, flags.NoPauseFlagName} {
		got, err := root.PersistentFlags().GetBool(name)
		require.NoError(t, err, name)
		assert.False(t, got, "expected %q to default to false", name)
	}

	timeout, err := root.PersistentFlags().GetDuration(flags.ConnectTimeoutFlagName)
	require.NoError(t, err)
	assert.Zero(t, timeout)
}

func TestDefaultRunDoesNotPrintTimingOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := setupRootWithBuffer(&out)

	checkCmd := &cobra.Command{
		Use:  "timing-check",
		RunE: timingCheckRunE(notify.SuccessType, "check complete"),
	}

	root.AddCommand(checkCmd)
	root.SetArgs([]string{"timing-check"})

	_ = root.Execute()

	assert.NotContains(t, out.String(), "⏲")
}

func TestTimingFlagEnablesTimingOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := setupRootWithBuffer(&out)

	checkCmd := &cobra.Command{
		Use:          "timing-check",
		SilenceUsage: true,
		RunE:         timingCheckRunE(notify.SuccessType, "check complete"),
	}

	root.AddCommand(checkCmd)
	root.SetArgs([]string{"--timing", "timing-check"})

	_ = root.Execute()

	got := out.String()
	assert.Contains(t, got, "⏲ current:")
	assert.Contains(t, got, "total:")
}

func TestTimingDoesNotPrintOnError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := setupRootWithBuffer(&out)

	failing := &cobra.Command{
		Use:          "timing-fail",
		SilenceUsage: true,
		RunE:         timingCheckRunE(notify.ErrorType, "boom"),
	}

	root.AddCommand(failing)
	root.SetArgs([]string{"--timing", "timing-fail"})

	_ = root.Execute()

	assert.NotContains(t, out.String(), "⏲")
}

func TestExecuteWithNonexistentCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("test", "test", "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"nonexistent"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), `unknown command "nonexistent" for "dbsetup"`)
}

func TestExecuteWrapperSuccess(t *testing.T) {
	t.Parallel()

	succeeding := newTestCommand("ok", func(_ *cobra.Command, _ []string) error {
		return nil
	})

	rootCmd := cmd.NewRootCmd("test", "test", "test")
	rootCmd.SetArgs([]string{"ok"})
	rootCmd.AddCommand(succeeding)

	require.NoError(t, cmd.Execute(rootCmd))
}

func TestExecuteWrapperError(t *testing.T) {
	t.Parallel()

	failing := newTestCommand("fail", func(_ *cobra.Command, _ []string) error {
		return errRootTest
	})

	rootCmd := cmd.NewRootCmd("test", "test", "test")
	rootCmd.SetArgs([]string{"fail"})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.AddCommand(failing)

	err := cmd.Execute(rootCmd)
	require.ErrorIs(t, err, errRootTest)
	assert.True(t, strings.HasPrefix(err.Error(), "command execution failed"))
}

// newTestCommand creates a cobra.Command for testing with exhaustive field initialization.
func newTestCommand(use string, runE func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:  use,
		RunE: runE,
	}
}

// setupRootWithBuffer creates a root command configured with the provided buffer for output.
func setupRootWithBuffer(out *bytes.Buffer) *cobra.Command {
	root := cmd.NewRootCmd("test", "test", "test")
	root.SetOut(out)
	root.SetErr(out)

	return root
}

// timingCheckRunE returns a RunE that prints one message with the timer when --timing is set.
// When msgType is notify.ErrorType, the returned function will return errRootTest.
func timingCheckRunE(
	msgType notify.MessageType,
	content string,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		tmr := timer.New()
		tmr.Start()

		outputTimer := flags.MaybeTimer(cmd, tmr)

		notify.WriteMessage(notify.Message{
			Type:    msgType,
			Content: content,
			Timer:   outputTimer,
			Writer:  cmd.OutOrStdout(),
		})

		if msgType == notify.ErrorType {
			return errRootTest
		}

		return nil
	}
}
