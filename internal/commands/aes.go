package commands

import (
	"crypto/rand"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/salt"
	"github.com/idelchi/enigma/pkg/symmetric"
)

// NewAESCommand creates the aes command and its subcommands.
func NewAESCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "aes", "AES-CBC with PKCS#7 padding, hex ciphertext", []string{"Key", "IV"},
		func(text string) (string, error) { return symmetric.EncryptString(text, cfg.Key, cfg.IV) },
		func(text string) (string, error) { return symmetric.DecryptString(text, cfg.Key, cfg.IV) },
	)

	for _, sub := range cmd.Commands() {
		sub.Flags().StringP("key", "k", "", "Key of 16, 24 or 32 bytes")
		sub.Flags().StringP("iv", "i", "", "Initialization vector of 16 bytes")
	}

	cmd.AddCommand(newAESKeygenCommand(cfg), newSealCommand(cfg), newOpenCommand(cfg))

	return cmd
}

func newAESKeygenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keygen [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate a random alphanumeric key and IV",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			if !slices.Contains(symmetric.ValidKeySizes, cfg.Length) {
				return fmt.Errorf("key length must be one of %v, got %d", symmetric.ValidKeySizes, cfg.Length)
			}

			k, err := salt.RandomString(rand.Reader, cfg.Length, salt.Alphanumeric)
			if err != nil {
				return err
			}

			iv, err := salt.RandomString(rand.Reader, symmetric.IVSize, salt.Alphanumeric)
			if err != nil {
				return err
			}

			output(cmd, "key:", k)
			output(cmd, "iv: ", iv)

			return nil
		}),
	}

	cmd.Flags().IntP("length", "l", 32, "Key length in bytes: 16, 24 or 32")

	return cmd
}

func newSealCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "seal [flags] [text...]",
		Short:   "Encrypt and authenticate text with deterministic AES-SIV, Base64 output",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, "SIVKey"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			text, err := input(cmd, cfg.Args)
			if err != nil {
				return err
			}

			sivKey, err := key.FromHex(cfg.SIVKey)
			if err != nil {
				return fmt.Errorf("reading siv key: %w", err)
			}

			sealed, err := symmetric.SealDeterministic([]byte(text), sivKey, []byte(cfg.AssociatedData))
			if err != nil {
				return err
			}

			output(cmd, codec.EncodeBase64Bytes(sealed))

			return nil
		}),
	}

	sivFlags(cmd)

	return cmd
}

func newOpenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [flags] [base64...]",
		Short:   "Verify and decrypt the output of seal",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, "SIVKey"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			text, err := input(cmd, cfg.Args)
			if err != nil {
				return err
			}

			sealed, err := codec.DecodeBase64Bytes(text)
			if err != nil {
				return err
			}

			sivKey, err := key.FromHex(cfg.SIVKey)
			if err != nil {
				return fmt.Errorf("reading siv key: %w", err)
			}

			opened, err := symmetric.OpenDeterministic(sealed, sivKey, []byte(cfg.AssociatedData))
			if err != nil {
				return err
			}

			output(cmd, string(opened))

			return nil
		}),
	}

	sivFlags(cmd)

	return cmd
}

func sivFlags(cmd *cobra.Command) {
	cmd.Flags().String("siv-key", "", "AES-SIV key, 64 bytes hex-encoded (128 characters)")
	cmd.Flags().String("associated-data", "", "Associated data authenticated along with the text")
}
