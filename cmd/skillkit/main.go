package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/config"
	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLKIT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("skillkit-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillkit")
	viper.AddConfigPath(".")

	config.SetDefaults()

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillkit",
	Short: "A toolbox of assistant skills: validators, converters, scaffolders, and report generators",
	Long: `Skillkit bundles the utility skills an AI assistant reaches for during
everyday engineering work: markdown and TOON validation, JSON/TOON
conversion, FastAPI and Next.js scaffolding, documentation templates,
prompt compression, UX-audit reporting, and wrappers for pycodestyle and
alembic.

Every subcommand is a self-contained pipeline: read a file or stdin,
transform, write to stdout or --output, and exit 0 on success or 1 on
failure. Subprocess wrappers propagate the wrapped tool's exit code
unchanged.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
			return err
		}
		logger.SetLogFormat(cfg.LogFormat)

		quiet, _ := cmd.Flags().GetBool("quiet")
		presenter.SetQuiet(quiet)

		log := logger.G(cmd.Context()).WithField("command", cmd.Name())
		cmd.Flags().Visit(func(flag *pflag.Flag) {
			log = log.WithField("flag."+flag.Name, flag.Value.String())
		})
		log.Debug("command invoked")
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	ctx := logger.WithLogger(context.Background(), logger.L)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
