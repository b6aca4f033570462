package cli

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			return config.Dump(cmd.OutOrStdout(), app.Config)
		},
	}
}
