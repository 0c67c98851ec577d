package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/termfab/internal/config"
)

// NewConfigCmd creates the config inspection command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the termfab configuration",
	}
	cmd.AddCommand(newConfigPathCmd(), newConfigSchemaCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			cmd.Println(mgr.GetConfigFile())
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}
