package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/pytools"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [alembic args...]",
	Short: "Run alembic from the directory holding alembic.ini",
	Long: `Locate alembic.ini in the current directory or any parent, then run
alembic from that directory with the given arguments. Alembic's output
and exit code pass through unchanged.

Examples:
  skillkit migrate upgrade head
  skillkit migrate revision --autogenerate -m "add users table"
  skillkit migrate current`,
	// Alembic owns all flags after the subcommand name.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
			cmd.Help()
			return
		}

		cwd, err := os.Getwd()
		if err != nil {
			presenter.Error(err, "Failed to determine working directory")
			os.Exit(1)
		}

		code, err := pytools.RunAlembic(cmd.Context(), cwd, args, os.Stdout, os.Stderr)
		if err != nil {
			presenter.Error(err, "Failed to run alembic")
		}
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
