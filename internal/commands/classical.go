package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/pkg/classical"
)

// transform is one direction of a cipher over the command input.
type transform func(text string) (string, error)

// newPairCommand builds a parent command with encrypt and decrypt
// subcommands that read text from the arguments or standard input.
func newPairCommand(cfg *config.Config, use, short string, fields []string, encrypt, decrypt transform) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: short,
	}

	sub := func(use string, aliases []string, short string, fn transform) *cobra.Command {
		return &cobra.Command{
			Use:     use + " [flags] [text...]",
			Aliases: aliases,
			Short:   short,
			Args:    cobra.ArbitraryArgs,
			PreRunE: preRun(cfg, fields...),
			RunE: run(cfg, func(cmd *cobra.Command) error {
				text, err := input(cmd, cfg.Args)
				if err != nil {
					return err
				}

				result, err := fn(text)
				if err != nil {
					return err
				}

				output(cmd, result)

				return nil
			}),
		}
	}

	parent.AddCommand(
		sub("encrypt", []string{"enc"}, "Encrypt text", encrypt),
		sub("decrypt", []string{"dec"}, "Decrypt text", decrypt),
	)

	return parent
}

// NewCaesarCommand creates the caesar command.
func NewCaesarCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "caesar", "Shift every character by a fixed amount", nil,
		func(text string) (string, error) { return classical.EncryptCaesar(text, cfg.Shift) },
		func(text string) (string, error) { return classical.DecryptCaesar(text, cfg.Shift) },
	)

	cmd.PersistentFlags().IntP("shift", "n", 3, "Number of code points to shift by")

	return cmd
}

// NewVigenereCommand creates the vigenere command.
func NewVigenereCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "vigenere", "Polyalphabetic substitution over ASCII letters", []string{"Keyword"},
		func(text string) (string, error) { return classical.EncryptVigenere(text, cfg.Keyword) },
		func(text string) (string, error) { return classical.DecryptVigenere(text, cfg.Keyword) },
	)

	cmd.PersistentFlags().StringP("keyword", "k", "", "Keyword of ASCII letters")

	return cmd
}

// NewFenceCommand creates the fence command.
func NewFenceCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "fence", "Rail fence transposition", []string{"Rails"},
		func(text string) (string, error) { return classical.EncryptFence(text, cfg.Rails) },
		func(text string) (string, error) { return classical.DecryptFence(text, cfg.Rails) },
	)

	cmd.PersistentFlags().IntP("rails", "r", 3, "Number of rails, at least 2 and at most the text length")

	return cmd
}
