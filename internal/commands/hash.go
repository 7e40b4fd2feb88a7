package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/internal/logic"
	"github.com/idelchi/enigma/pkg/hashing"
)

func algorithmUsage() string {
	names := make([]string, 0, len(hashing.Supported()))
	for _, name := range hashing.Supported() {
		names = append(names, string(name))
	}

	return fmt.Sprintf("Hash algorithm, one of: %s", strings.Join(names, ", "))
}

// NewHashCommand creates a new cobra command for the hash subcommand.
func NewHashCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hash [flags] [text...]",
		Short:   "Print the uppercase hex digest of text or standard input",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, "Algorithm"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			text, err := input(cmd, cfg.Args)
			if err != nil {
				return err
			}

			digest, err := hashing.Digest(hashing.Algorithm(cfg.Algorithm), text)
			if err != nil {
				return err
			}

			output(cmd, digest)

			return nil
		}),
	}

	cmd.Flags().StringP("algorithm", "a", string(hashing.SHA256), algorithmUsage())

	return cmd
}

// NewDigestCommand creates a new cobra command for the digest subcommand.
func NewDigestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [flags] paths...",
		Short: "Hash files concurrently",
		Long: `Hash files concurrently and print one "<DIGEST>  <file>" line per file.

Directories are walked recursively. Their files are selected with --include and
--skip globs, where '*' also matches '/'. Files named directly are always hashed.
Globs can also be read from JSON files, which may contain comments.

With --output the lines are written atomically to a checksum file in selection order.`,
		Example: `  enigma digest -a sha1 go.mod go.sum
  enigma digest --include '*.go' --skip '*/testdata/*' .
  enigma digest --skip-from .digestignore.jsonc -o SUMS .`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, "Algorithm", "Parallel", "Args"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			return logic.Digest(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		}),
	}

	cmd.Flags().StringP("algorithm", "a", string(hashing.SHA256), algorithmUsage())
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().Bool("stats", false, "Print statistics to standard error")
	cmd.Flags().StringP("output", "o", "", "Write the checksums to this file instead of standard output")
	cmd.Flags().StringSlice("include", nil, "Only hash walked files matching these globs")
	cmd.Flags().StringSlice("skip", nil, "Do not hash walked files matching these globs")
	cmd.Flags().StringSlice("include-from", nil, "Read include globs from these JSON files")
	cmd.Flags().StringSlice("skip-from", nil, "Read skip globs from these JSON files")

	return cmd
}
