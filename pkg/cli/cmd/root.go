package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uelms/dbsetup/pkg/cli/flags"
	"github.com/uelms/dbsetup/pkg/cli/ui/errorhandler"
	runtime "github.com/uelms/dbsetup/pkg/di"
)

const rootLongDesc = `dbsetup prepares the University Management System database.

It connects to a MySQL database (typically hosted on Railway), creates the
users and forget_pass tables when they are missing and seeds the default
administrator account. Running it again against the same database is safe.`

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(runtime.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command with the given dependency runtime.
func NewRootCmdWithRuntime(runtimeContainer *runtime.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dbsetup",
		Short:        "Provision the University Management System database",
		Long:         rootLongDesc,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		flags.TimingFlagName,
		false,
		"Show per-activity timing output",
	)
	cmd.PersistentFlags().BoolP(
		flags.VerboseFlagName,
		"v",
		false,
		"Write debug logs to stderr",
	)
	cmd.PersistentFlags().Duration(
		flags.ConnectTimeoutFlagName,
		0,
		"Timeout for connecting and each network round trip (0 waits indefinitely)",
	)
	cmd.PersistentFlags().Bool(
		flags.NoPauseFlagName,
		false,
		"Exit without waiting for Enter",
	)

	cmd.AddCommand(NewAutoCmd(runtimeContainer))
	cmd.AddCommand(NewInteractiveCmd(runtimeContainer))
	cmd.AddCommand(NewInitCmd())

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(
	cmd *cobra.Command,
	_ []string,
) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
