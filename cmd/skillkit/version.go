package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long: `Print the version information of skillkit. The default output is a single
human-readable line; --json prints a JSON document and --short prints
only the version number.`,
	Run: func(cmd *cobra.Command, _ []string) {
		short, _ := cmd.Flags().GetBool("short")
		asJSON, _ := cmd.Flags().GetBool("json")

		out, err := versionOutput(version.Get(), short, asJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting version info: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the version number")
	versionCmd.Flags().Bool("json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

func versionOutput(info version.Info, short, asJSON bool) (string, error) {
	switch {
	case short:
		return info.Version, nil
	case asJSON:
		return info.JSON()
	default:
		return info.String(), nil
	}
}
