package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	"github.com/uelms/dbsetup/pkg/cli/flags"
	"github.com/uelms/dbsetup/pkg/fsutil"
	railwayconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/railway"
	"github.com/uelms/dbsetup/pkg/io/scaffolder"
)

// NewInitCmd creates the command that writes the configuration template.
func NewInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a connection configuration template",
		Long: `Write a connection configuration template for 'dbsetup auto'.

Every value in the template is a YOUR_..._HERE placeholder that must be
replaced before 'dbsetup auto' will connect.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := fsutil.ExpandHomePath(output)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			scaf := scaffolder.NewScaffolder(*v1alpha1.NewPlaceholderParams(), cmd.OutOrStdout())

			err = scaf.Scaffold(path, force)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(
		&output,
		flags.OutputFlagName,
		"o",
		railwayconfigmanager.DefaultConfigFile,
		"Path of the configuration file to write",
	)
	cmd.Flags().BoolVarP(
		&force,
		flags.ForceFlagName,
		"f",
		false,
		"Overwrite an existing file",
	)

	return cmd
}
