package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/lint"
	"github.com/skillkit/skillkit/pkg/presenter"
)

type ValidateConfig struct {
	Format string
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Format: viper.GetString("validate.format"),
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate markdown or TOON documents",
	Long:  `Scan documents for structural problems and report issues as (line, severity, code, message) records.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var validateMdCmd = &cobra.Command{
	Use:   "md [paths...]",
	Short: "Validate markdown documents",
	Long: `Check markdown documents for unclosed code fences, malformed headings,
and ragged tables. Paths may be files or doublestar globs (docs/**/*.md);
with no paths, or with "-", the document is read from stdin.

The exit code is 1 if any error-severity issue is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(cmd, "md", args)
	},
}

var validateToonCmd = &cobra.Command{
	Use:   "toon [paths...]",
	Short: "Validate TOON documents",
	Long: `Check TOON documents for bad indentation, unbalanced quotes, and
declared-vs-actual count mismatches in array headers.

The exit code is 1 if any error-severity issue is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(cmd, "toon", args)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{validateMdCmd, validateToonCmd} {
		cmd.Flags().String("format", "", "Report format (text, json); defaults to validate.format config")
	}
	validateCmd.AddCommand(validateMdCmd)
	validateCmd.AddCommand(validateToonCmd)
	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if format, err := cmd.Flags().GetString("format"); err == nil && format != "" {
		config.Format = format
	}
	return config
}

func runValidate(cmd *cobra.Command, kind string, args []string) {
	ctx := cmd.Context()
	config := getValidateConfigFromFlags(cmd)

	var results []lint.Result

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		result, err := lint.ValidateReader(ctx, kind, os.Stdin)
		if err != nil {
			presenter.Error(err, "Failed to validate input")
			os.Exit(1)
		}
		results = []lint.Result{result}
	} else {
		paths, err := lint.ExpandPaths(args)
		if err != nil {
			presenter.Error(err, "Failed to resolve paths")
			os.Exit(1)
		}
		results, err = lint.ValidateFiles(ctx, kind, paths)
		if err != nil {
			presenter.Error(err, "Failed to validate files")
			os.Exit(1)
		}
	}

	var writeErr error
	switch config.Format {
	case "json":
		writeErr = lint.WriteJSON(os.Stdout, results)
	case "text":
		writeErr = lint.WriteText(os.Stdout, results)
	default:
		presenter.Warning("Unknown format " + config.Format + ", using text")
		writeErr = lint.WriteText(os.Stdout, results)
	}
	if writeErr != nil {
		presenter.Error(writeErr, "Failed to write report")
		os.Exit(1)
	}

	if lint.AnyErrors(results) {
		os.Exit(1)
	}
}
