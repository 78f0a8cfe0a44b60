package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillkit/skillkit/pkg/presenter"
	"github.com/skillkit/skillkit/pkg/toon"
)

type ToonConfig struct {
	Output string
	Indent int
	Verify bool
}

func NewToonConfig() *ToonConfig {
	return &ToonConfig{
		Output: "",
		Indent: 2,
	}
}

var toonCmd = &cobra.Command{
	Use:   "toon",
	Short: "Convert between JSON and the TOON format",
	Long: `TOON is a compact indentation-based serialization format used as a
token-efficient alternative to JSON in LLM context. Uniform record arrays
render as a declared-length header followed by comma-separated rows;
scalar arrays render inline.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var toonEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert JSON to TOON",
	Long: `Read a JSON document from the given file (or stdin) and write its TOON
encoding to stdout or --output. With --verify the output is decoded again
and compared against the input before anything is written; a mismatch
exits 1.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getToonConfigFromFlags(cmd)
		if err := toonEncode(argOrStdin(args), config); err != nil {
			presenter.Error(err, "Failed to convert JSON to TOON")
			os.Exit(1)
		}
	},
}

var toonDecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TOON to JSON",
	Long: `Read a TOON document from the given file (or stdin) and write its JSON
decoding to stdout or --output. --indent controls JSON pretty-printing;
0 emits compact output.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getToonConfigFromFlags(cmd)
		if err := toonDecode(argOrStdin(args), config); err != nil {
			presenter.Error(err, "Failed to convert TOON to JSON")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewToonConfig()
	for _, cmd := range []*cobra.Command{toonEncodeCmd, toonDecodeCmd} {
		cmd.Flags().StringP("output", "o", defaults.Output, "Write to file instead of stdout")
	}
	toonEncodeCmd.Flags().Bool("verify", defaults.Verify, "Check that the output decodes back to the input")
	toonDecodeCmd.Flags().Int("indent", defaults.Indent, "JSON indentation width (0 for compact)")

	toonCmd.AddCommand(toonEncodeCmd)
	toonCmd.AddCommand(toonDecodeCmd)
	rootCmd.AddCommand(toonCmd)
}

func getToonConfigFromFlags(cmd *cobra.Command) *ToonConfig {
	config := NewToonConfig()
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	if indent, err := cmd.Flags().GetInt("indent"); err == nil {
		config.Indent = indent
	}
	if verify, err := cmd.Flags().GetBool("verify"); err == nil {
		config.Verify = verify
	}
	return config
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func toonEncode(path string, config *ToonConfig) error {
	content, err := readInput(path)
	if err != nil {
		return err
	}

	// UseNumber keeps integers from turning into exponent notation.
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return errors.Wrap(err, "parsing JSON")
	}

	encoded, err := toon.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encoding TOON")
	}

	if config.Verify {
		if err := toon.VerifyRoundTrip(value); err != nil {
			return errors.Wrap(err, "round-trip verification failed")
		}
	}
	return writeOutput(config.Output, encoded)
}

func toonDecode(path string, config *ToonConfig) error {
	content, err := readInput(path)
	if err != nil {
		return err
	}

	value, err := toon.Unmarshal(content)
	if err != nil {
		return errors.Wrap(err, "parsing TOON")
	}

	var out []byte
	if config.Indent > 0 {
		out, err = json.MarshalIndent(value, "", string(bytes.Repeat([]byte(" "), config.Indent)))
	} else {
		out, err = json.Marshal(value)
	}
	if err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return writeOutput(config.Output, append(out, '\n'))
}
