package cmd

import (
	"github.com/spf13/cobra"
	runtime "github.com/uelms/dbsetup/pkg/di"
	interactiveconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/interactive"
)

const interactiveLongDesc = `Provision the database using connection details typed at the prompt.

You are asked for the host, port, database name, user and password in that
order. The password is not echoed when the input is a terminal.`

// NewInteractiveCmd creates the prompt-driven setup command.
func NewInteractiveCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:           "interactive",
		Short:         "Provision the database from details entered at the prompt",
		Long:          interactiveLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := interactiveconfigmanager.NewConfigManager(cmd.InOrStdin(), cmd.OutOrStdout())

			return runSetup(cmd, runtimeContainer, setupRun{
				title:  "Interactive database setup",
				loader: loader,
			})
		},
	}
}
