package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/uxaudit"
)

type UXAuditConfig struct {
	Output string
	Large  bool
}

func NewUXAuditConfig() *UXAuditConfig {
	return &UXAuditConfig{}
}

var uxauditCmd = &cobra.Command{
	Use:   "uxaudit",
	Short: "UX-audit reporting and WCAG contrast checks",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var uxauditReportCmd = &cobra.Command{
	Use:   "report <findings.yaml>",
	Short: "Render a markdown UX-audit report from a YAML findings file",
	Long: `Render a markdown report from a YAML findings file. Findings carry a
severity (critical, major, minor, info), an optional heuristic and
location, a description, and a recommendation; the report orders them
critical-first with a severity summary table.

Pass "-" to read the findings from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getUXAuditConfigFromFlags(cmd)

		content, err := readInput(args[0])
		if err != nil {
			presenter.Error(err, "Failed to read findings")
			os.Exit(1)
		}
		audit, err := uxaudit.LoadFindings(bytes.NewReader(content))
		if err != nil {
			presenter.Error(err, "Invalid findings file")
			os.Exit(1)
		}
		report, err := uxaudit.RenderReport(audit)
		if err != nil {
			presenter.Error(err, "Failed to render report")
			os.Exit(1)
		}
		if err := writeOutput(config.Output, []byte(report)); err != nil {
			presenter.Error(err, "Failed to write report")
			os.Exit(1)
		}
	},
}

var uxauditContrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Compute the WCAG contrast ratio of a color pair",
	Long: `Compute the WCAG 2.1 contrast ratio between a foreground and background
color and report pass/fail against the AA and AAA thresholds. Colors may
be #rgb, #rrggbb, or rgb(r,g,b).

The exit code is 1 when the pair fails AA for normal text (or for large
text with --large).

Examples:
  skillkit uxaudit contrast "#767676" "#ffffff"
  skillkit uxaudit contrast "rgb(18,18,18)" "#fafafa" --large`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config := getUXAuditConfigFromFlags(cmd)
		runContrast(args[0], args[1], config)
	},
}

func init() {
	uxauditReportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	uxauditContrastCmd.Flags().Bool("large", false, "Judge against the large-text thresholds")

	uxauditCmd.AddCommand(uxauditReportCmd)
	uxauditCmd.AddCommand(uxauditContrastCmd)
	rootCmd.AddCommand(uxauditCmd)
}

func getUXAuditConfigFromFlags(cmd *cobra.Command) *UXAuditConfig {
	config := NewUXAuditConfig()
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	if large, err := cmd.Flags().GetBool("large"); err == nil {
		config.Large = large
	}
	return config
}

func runContrast(fgStr, bgStr string, config *UXAuditConfig) {
	fg, err := uxaudit.ParseColor(fgStr)
	if err != nil {
		presenter.Error(err, "Invalid foreground color")
		os.Exit(1)
	}
	bg, err := uxaudit.ParseColor(bgStr)
	if err != nil {
		presenter.Error(err, "Invalid background color")
		os.Exit(1)
	}

	verdict := uxaudit.Evaluate(fg, bg)
	fmt.Printf("contrast ratio %s on %s: %.2f:1\n", fg, bg, verdict.Ratio)
	fmt.Printf("  AA  normal text: %s\n", passFail(verdict.AANormal))
	fmt.Printf("  AA  large text:  %s\n", passFail(verdict.AALarge))
	fmt.Printf("  AAA normal text: %s\n", passFail(verdict.AAANormal))
	fmt.Printf("  AAA large text:  %s\n", passFail(verdict.AAALarge))

	passed := verdict.AANormal
	if config.Large {
		passed = verdict.AALarge
	}
	if !passed {
		os.Exit(1)
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}
