// Package commands provides the command-line interface for the enigma tool.
//
// It implements commands for:
//   - hashing text and files
//   - classical ciphers
//   - AES and RSA encryption
//   - Base64, hex and XOR encodings
//   - random salts and snowflake IDs
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
)

// preRun returns a PreRunE handler that stores the positional args in cfg.Args
// and validates the named configuration fields.
func preRun(cfg *config.Config, fields ...string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Args = args

		return cfg.Validate(fields...)
	}
}

// run wraps a RunE handler so that --show prints the configuration instead.
func run(cfg *config.Config, fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Show {
			return show(cmd.OutOrStdout(), cfg)
		}

		return fn(cmd)
	}
}

// show prints cfg as YAML. Secret fields are tagged out of the output.
func show(w io.Writer, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	_, err = w.Write(data)

	return err
}

// input joins the positional arguments with spaces, or reads standard input
// when there are none. A single trailing newline from standard input is dropped.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")

	return strings.TrimSuffix(text, "\r"), nil
}

// output writes a result line to the command output.
func output(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
