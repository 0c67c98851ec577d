// Package cli implements the termfab command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/termfab/internal/build"
)

var buildInfo build.Info

// SetBuildInfo stores build metadata for the version command.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// NewRootCmd creates the root command. Running it with no subcommand starts
// the workspace TUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termfab",
		Short: "A floating terminal launcher for your workspace",
		Long: `termfab puts a small floating button in your terminal workspace.
Click it (or press enter/space with it focused) to open a terminal view;
drag it to reposition it. The position persists across sessions.`,
		RunE:          runWorkspace,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		NewPositionCmd(),
		NewConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("termfab %s (%s, built %s, %s)\n%s\n",
				buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate,
				buildInfo.GoVersion, build.RepoURL())
		},
	}
}
