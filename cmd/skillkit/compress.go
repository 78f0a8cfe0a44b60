package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillkit/skillkit/pkg/compress"
	"github.com/skillkit/skillkit/pkg/presenter"
)

type CompressConfig struct {
	Level  string
	Output string
	Stats  bool
}

func NewCompressConfig() *CompressConfig {
	return &CompressConfig{
		Level: viper.GetString("compress.level"),
	}
}

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress prompt text to spend fewer tokens",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var compressPromptCmd = &cobra.Command{
	Use:   "prompt [file]",
	Short: "Compress prompt text",
	Long: `Rewrite prompt text with lexical transformations and print the result.
Levels: light (whitespace only), medium (also filler words and markdown
emphasis), aggressive (also common stopwords).

Examples:
  skillkit compress prompt prompt.txt
  cat prompt.txt | skillkit compress prompt --level aggressive`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getCompressConfigFromFlags(cmd)
		runCompress(argOrStdin(args), config)
	},
}

var compressStatsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Estimate the token count of text without rewriting it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readInput(argOrStdin(args))
		if err != nil {
			presenter.Error(err, "Failed to read input")
			os.Exit(1)
		}
		fmt.Printf("%d chars, ~%d tokens\n", len(content), compress.EstimateTokens(string(content)))
	},
}

func init() {
	defaults := NewCompressConfig()
	compressPromptCmd.Flags().StringP("level", "l", defaults.Level, "Compression level (light, medium, aggressive)")
	compressPromptCmd.Flags().StringP("output", "o", defaults.Output, "Write to file instead of stdout")
	compressPromptCmd.Flags().Bool("stats", defaults.Stats, "Print savings stats to stderr")

	compressCmd.AddCommand(compressPromptCmd)
	compressCmd.AddCommand(compressStatsCmd)
	rootCmd.AddCommand(compressCmd)
}

func getCompressConfigFromFlags(cmd *cobra.Command) *CompressConfig {
	config := NewCompressConfig()
	if level, err := cmd.Flags().GetString("level"); err == nil && level != "" {
		config.Level = level
	}
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	if stats, err := cmd.Flags().GetBool("stats"); err == nil {
		config.Stats = stats
	}
	return config
}

func runCompress(path string, config *CompressConfig) {
	level, err := compress.ParseLevel(config.Level)
	if err != nil {
		presenter.Error(err, "Invalid compression level")
		os.Exit(1)
	}

	content, err := readInput(path)
	if err != nil {
		presenter.Error(err, "Failed to read input")
		os.Exit(1)
	}

	out, stats := compress.Compress(string(content), level)
	if err := writeOutput(config.Output, []byte(out+"\n")); err != nil {
		presenter.Error(err, "Failed to write output")
		os.Exit(1)
	}

	if config.Stats {
		presenter.Info(fmt.Sprintf("%s: %d -> %d tokens (%.1f%% saved)",
			level, stats.OriginalTokens, stats.CompressedTokens, stats.SavedPercent))
	}
}
