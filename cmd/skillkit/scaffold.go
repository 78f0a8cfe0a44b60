package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/scaffold"
)

type ScaffoldConfig struct {
	Name        string
	Author      string
	Description string
	Force       bool
}

func NewScaffoldConfig() *ScaffoldConfig {
	return &ScaffoldConfig{
		Author: viper.GetString("scaffold.author"),
	}
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate project skeletons",
	Long: `Generate a ready-to-run project skeleton. Existing files are left in
place; differences against the generated content are shown so nothing is
overwritten silently. Use --force to overwrite.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var scaffoldFastAPICmd = &cobra.Command{
	Use:   "fastapi <dir>",
	Short: "Generate a FastAPI project skeleton",
	Long: `Generate a FastAPI project with an application package, API router,
pydantic settings, alembic migration config, and a smoke test.

Examples:
  skillkit scaffold fastapi ./ordersvc
  skillkit scaffold fastapi ./ordersvc --name orders --description "Order service"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScaffold(cmd, "fastapi", args[0])
	},
}

var scaffoldNextJSCmd = &cobra.Command{
	Use:   "nextjs <dir>",
	Short: "Generate a Next.js project skeleton",
	Long: `Generate a Next.js (app router, TypeScript) project skeleton.

Examples:
  skillkit scaffold nextjs ./webshop`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScaffold(cmd, "nextjs", args[0])
	},
}

func init() {
	defaults := NewScaffoldConfig()
	for _, cmd := range []*cobra.Command{scaffoldFastAPICmd, scaffoldNextJSCmd} {
		cmd.Flags().String("name", defaults.Name, "Project name (defaults to the directory name)")
		cmd.Flags().String("description", defaults.Description, "Project description")
		cmd.Flags().String("author", defaults.Author, "Project author")
		cmd.Flags().BoolP("force", "f", defaults.Force, "Overwrite existing files that differ")
	}

	scaffoldCmd.AddCommand(scaffoldFastAPICmd)
	scaffoldCmd.AddCommand(scaffoldNextJSCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

func getScaffoldConfigFromFlags(cmd *cobra.Command) *ScaffoldConfig {
	config := NewScaffoldConfig()
	if name, err := cmd.Flags().GetString("name"); err == nil && name != "" {
		config.Name = name
	}
	if description, err := cmd.Flags().GetString("description"); err == nil && description != "" {
		config.Description = description
	}
	if author, err := cmd.Flags().GetString("author"); err == nil && author != "" {
		config.Author = author
	}
	if force, err := cmd.Flags().GetBool("force"); err == nil {
		config.Force = force
	}
	return config
}

func runScaffold(cmd *cobra.Command, kind, dir string) {
	ctx := cmd.Context()
	config := getScaffoldConfigFromFlags(cmd)

	summary, err := scaffold.Run(ctx, kind, scaffold.Options{
		Dir:         dir,
		Name:        config.Name,
		Author:      config.Author,
		Description: config.Description,
		Force:       config.Force,
	})
	if err != nil {
		presenter.Error(err, "Failed to generate scaffold")
		os.Exit(1)
	}

	reportScaffoldSummary(summary)
}

func reportScaffoldSummary(summary *scaffold.Summary) {
	for _, path := range summary.Written {
		presenter.Success(fmt.Sprintf("Wrote %s", path))
	}
	for _, path := range summary.Skipped {
		if diff, ok := summary.Diffs[path]; ok {
			presenter.Warning(fmt.Sprintf("Skipped %s (differs from generated content, use --force to overwrite)", path))
			presenter.Info(diff)
		}
	}

	presenter.Info(fmt.Sprintf("%d file(s) written, %d skipped", len(summary.Written), len(summary.Skipped)))
}
