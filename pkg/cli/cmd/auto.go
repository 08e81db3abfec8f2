package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uelms/dbsetup/pkg/cli/flags"
	runtime "github.com/uelms/dbsetup/pkg/di"
	"github.com/uelms/dbsetup/pkg/fsutil"
	railwayconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/railway"
)

const autoLongDesc = `Provision the database using connection details from a configuration file.

The configuration is resolved in the following priority order:
  1. From --host, --port, --database, --user and --password flags
  2. From RAILWAY_HOST, RAILWAY_PORT, RAILWAY_DATABASE, RAILWAY_USER and RAILWAY_PASSWORD
  3. From the file given with --config
  4. From railway.yaml (or .yml, .json, .toml) in the current directory, then ~/.uelms

Every value must be filled in; values still set to YOUR_..._HERE are rejected
before any connection is made. Run 'dbsetup init' to create the file.`

// NewAutoCmd creates the file-backed setup command.
func NewAutoCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "auto",
		Short:         "Provision the database from a configuration file",
		Long:          autoLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfgManager := railwayconfigmanager.NewCommandConfigManager(cmd, "")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		path, err := fsutil.ExpandHomePath(configFile)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}

		cfgManager.SetConfigFile(path)
		cfgManager.Writer = cmd.OutOrStdout()

		return runSetup(cmd, runtimeContainer, setupRun{
			title:      "Automatic database setup",
			loader:     cfgManager,
			configFile: cfgManager.ConfigFileUsed,
		})
	}

	cmd.Flags().StringVarP(
		&configFile,
		flags.ConfigFlagName,
		"c",
		"",
		"Path to the connection configuration file",
	)

	return cmd
}
