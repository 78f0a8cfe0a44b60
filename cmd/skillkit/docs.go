package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/docscan"
	"github.com/skillkit/skillkit/pkg/presenter"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate and inspect documentation scaffolds",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var docsInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Generate a documentation scaffold set",
	Long: `Generate README, architecture, API reference, contributing, and
changelog templates into the given directory (default: current directory).

Examples:
  skillkit docs init
  skillkit docs init ./myproject --name myproject`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		runScaffold(cmd, "docs", dir)
	},
}

var docsScanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Map a project's documentation to topics",
	Long: `Scan a project directory (default: current directory) for documentation,
map topics like overview, architecture, ADRs, and API references to their
locations, and flag recommended docs that are missing.

The exit code is 1 when no documentation structure is found.

Examples:
  skillkit docs scan
  skillkit docs scan ./myproject --json
  skillkit docs scan --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		report, err := docscan.Scan(dir)
		if err != nil {
			presenter.Error(err, "Failed to scan project")
			os.Exit(1)
		}

		if jsonOut {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				presenter.Error(err, "Failed to encode report")
				os.Exit(1)
			}
			fmt.Println(string(out))
		} else {
			reportDocScan(report, verbose)
		}

		if !report.HasDocs {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewScaffoldConfig()
	docsInitCmd.Flags().String("name", defaults.Name, "Project name (defaults to the directory name)")
	docsInitCmd.Flags().String("description", defaults.Description, "Project description")
	docsInitCmd.Flags().String("author", defaults.Author, "Project author")
	docsInitCmd.Flags().BoolP("force", "f", defaults.Force, "Overwrite existing files that differ")

	docsScanCmd.Flags().Bool("json", false, "Output the report as JSON")
	docsScanCmd.Flags().BoolP("verbose", "v", false, "List every documentation file found")

	docsCmd.AddCommand(docsInitCmd)
	docsCmd.AddCommand(docsScanCmd)
	rootCmd.AddCommand(docsCmd)
}

func reportDocScan(report *docscan.Report, verbose bool) {
	if !report.HasDocs {
		presenter.Warning("No documentation structure found")
		presenter.Info("Recommended: create a docs/ directory with a README.md index and an architecture.md")
		presenter.Info("Run 'skillkit docs init' to scaffold one")
		return
	}

	presenter.Success("Documentation found")
	if report.DocRoot != "" {
		presenter.Info(fmt.Sprintf("Root: %s/", report.DocRoot))
	}

	presenter.Section("Topics")
	topics := make([]string, 0, len(report.Topics))
	for topic := range report.Topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		paths := report.Topics[topic]
		presenter.Info(topic + ":")
		shown := paths
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, path := range shown {
			presenter.Info("  " + path)
		}
		if len(paths) > 5 {
			presenter.Info(fmt.Sprintf("  ... and %d more", len(paths)-5))
		}
	}

	if len(report.MissingRecommended) > 0 {
		presenter.Separator()
		presenter.Warning("Missing recommended docs:")
		for _, topic := range report.MissingRecommended {
			presenter.Warning("  " + topic)
		}
	}

	if verbose && len(report.AllDocs) > 0 {
		presenter.Separator()
		presenter.Section(fmt.Sprintf("All documentation files (%d)", len(report.AllDocs)))
		for _, doc := range report.AllDocs {
			presenter.Info("  " + doc)
		}
	}
}
