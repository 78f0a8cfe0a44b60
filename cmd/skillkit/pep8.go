package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/pytools"
)

type Pep8Config struct {
	MaxLineLength int
	Select        string
	Ignore        string
}

func NewPep8Config() *Pep8Config {
	return &Pep8Config{
		MaxLineLength: viper.GetInt("pep8.max_line_length"),
		Ignore:        viper.GetString("pep8.ignore"),
	}
}

var pep8Cmd = &cobra.Command{
	Use:   "pep8 [paths...]",
	Short: "Run a PEP8 style check (pycodestyle or flake8)",
	Long: `Run pycodestyle (or flake8 if pycodestyle is not installed) over the
given paths, defaulting to the current directory. The checker's output
and exit code pass through unchanged.

Examples:
  skillkit pep8 app/
  skillkit pep8 --max-line-length 120 app/ tests/`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getPep8ConfigFromFlags(cmd)

		code, err := pytools.RunStyleCheck(cmd.Context(), pytools.StyleCheckOptions{
			Paths:         args,
			MaxLineLength: config.MaxLineLength,
			Select:        config.Select,
			Ignore:        config.Ignore,
			Stdout:        os.Stdout,
			Stderr:        os.Stderr,
		})
		if err != nil {
			presenter.Error(err, "Failed to run style check")
		}
		os.Exit(code)
	},
}

func init() {
	defaults := NewPep8Config()
	pep8Cmd.Flags().Int("max-line-length", defaults.MaxLineLength, "Maximum line length (0 keeps the tool default)")
	pep8Cmd.Flags().String("select", defaults.Select, "Comma-separated error codes to enable")
	pep8Cmd.Flags().String("ignore", defaults.Ignore, "Comma-separated error codes to disable")

	rootCmd.AddCommand(pep8Cmd)
}

func getPep8ConfigFromFlags(cmd *cobra.Command) *Pep8Config {
	config := NewPep8Config()
	if maxLen, err := cmd.Flags().GetInt("max-line-length"); err == nil && maxLen > 0 {
		config.MaxLineLength = maxLen
	}
	if sel, err := cmd.Flags().GetString("select"); err == nil && sel != "" {
		config.Select = sel
	}
	if ignore, err := cmd.Flags().GetString("ignore"); err == nil && ignore != "" {
		config.Ignore = ignore
	}
	return config
}
