package commands

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/pkg/salt"
)

// NewSaltCommand creates the salt command and its subcommands.
func NewSaltCommand(cfg *config.Config) *cobra.Command {
	charsets := make([]string, 0, len(salt.Charsets()))
	for _, c := range salt.Charsets() {
		charsets = append(charsets, string(c))
	}

	cmd := &cobra.Command{
		Use:     "salt [flags]",
		Short:   "Print a random string",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, "Length", "Charset"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			s, err := salt.RandomString(rand.Reader, cfg.Length, salt.Charset(cfg.Charset))
			if err != nil {
				return err
			}

			output(cmd, s)

			return nil
		}),
	}

	cmd.Flags().IntP("length", "l", 16, "Number of characters")
	cmd.Flags().StringP("charset", "c", string(salt.Alphanumeric), "Alphabet, one of: "+strings.Join(charsets, ", "))

	cmd.AddCommand(newSaltIntCommand(cfg), newSaltUniqueCommand(cfg))

	return cmd
}

func newSaltIntCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "int [flags]",
		Short:   "Print a random integer from an inclusive range",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			n, err := salt.RandomInt(rand.Reader, cfg.Min, cfg.Max)
			if err != nil {
				return err
			}

			output(cmd, n)

			return nil
		}),
	}

	cmd.Flags().Int("min", 0, "Lower bound")
	cmd.Flags().Int("max", 100, "Upper bound")

	return cmd
}

func newSaltUniqueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unique [flags]",
		Short:   "Print distinct random integers from an inclusive range",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, "Count"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			values, err := salt.UniqueInts(rand.Reader, cfg.Count, cfg.Start, cfg.End, cfg.Exclude...)
			if err != nil {
				return err
			}

			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = fmt.Sprint(v)
			}

			output(cmd, strings.Join(parts, " "))

			return nil
		}),
	}

	cmd.Flags().IntP("count", "n", 6, "Number of values")
	cmd.Flags().Int("start", 1, "Lower bound")
	cmd.Flags().Int("end", 49, "Upper bound")
	cmd.Flags().IntSlice("exclude", nil, "Values to leave out")

	return cmd
}
