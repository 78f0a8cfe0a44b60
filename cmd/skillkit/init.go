package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/presenter"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up skillkit configuration",
	Long:  `Set up skillkit configuration with sensible defaults.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		override, _ := cmd.Flags().GetBool("override")

		presenter.Section("Skillkit Configuration Setup")

		configDir := filepath.Join(os.Getenv("HOME"), ".skillkit")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			presenter.Error(err, "Failed to create config directory")
			logger.G(ctx).WithError(err).WithField("config_dir", configDir).Error("Config directory creation failed")
			return
		}
		logger.G(ctx).WithField("config_dir", configDir).Debug("Config directory created")

		configFile := filepath.Join(configDir, "skillkit-config.yaml")

		// Check if config already exists (unless override is specified)
		if !override {
			if _, err := os.Stat(configFile); err == nil {
				presenter.Warning(fmt.Sprintf("Configuration file already exists at %s", configFile))
				presenter.Info("To overwrite, use the --override flag or remove the file and run 'skillkit init' again")
				return
			}
		}

		configContent := `log_level: warn
log_format: fmt
validate:
    format: text
compress:
    level: medium
scaffold:
    author: ""
pep8:
    max_line_length: 0
    ignore: ""
`

		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			presenter.Error(err, "Failed to write config file")
			logger.G(ctx).WithError(err).WithField("config_file", configFile).Error("Config file write failed")
			return
		}

		if override {
			presenter.Success(fmt.Sprintf("Configuration overwritten at %s", configFile))
		} else {
			presenter.Success(fmt.Sprintf("Configuration saved to %s", configFile))
		}
		presenter.Info("You can modify these settings at any time by editing the config file")
		logger.G(ctx).WithField("config_file", configFile).Info("Configuration file created successfully")

		presenter.Separator()
		presenter.Section("Getting Started")
		presenter.Info("  skillkit skill list                  # List every available skill")
		presenter.Info("  skillkit validate md README.md       # Check a markdown file")
		presenter.Info("  skillkit toon encode data.json       # Convert JSON to TOON")
		presenter.Info("  skillkit scaffold fastapi ./svc      # Scaffold a FastAPI project")
		presenter.Info("  skillkit --help                      # Show all available commands")
	},
}

func init() {
	initCmd.Flags().Bool("override", false, "Overwrite existing configuration file if it exists")
	rootCmd.AddCommand(initCmd)
}
