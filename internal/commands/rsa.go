package commands

import (
	"crypto/rand"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/internal/logic"
	"github.com/idelchi/enigma/pkg/asymmetric"
)

// NewRSACommand creates the rsa command and its subcommands.
func NewRSACommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "RSA key generation and PKCS#1 v1.5 or OAEP encryption",
		Long: `RSA key generation and encryption.

Encrypting with --public-key keeps text confidential to the private-key holder.
Encrypting with --private-key lets anyone holding the public key recover the
text and know who produced it. Decrypt with the other key of the pair.

Key flags take Base64 DER, or @path for a PEM file written by "rsa keygen".`,
	}

	cmd.AddCommand(newRSAKeygenCommand(cfg), newRSAEncryptCommand(cfg), newRSADecryptCommand(cfg))

	return cmd
}

func newRSAKeygenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keygen [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate a key pair",
		Long: `Generate a key pair. Without --out the Base64 keys are printed.
With --out the keys are written as PEM files enigma_rsa.pub and enigma_rsa.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, "Bits"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			slog.Debug("generating rsa key", "bits", cfg.Bits)

			pair, err := asymmetric.GenerateKeyPair(rand.Reader, cfg.Bits)
			if err != nil {
				return err
			}

			if cfg.KeyDir == "" {
				output(cmd, "public: ", pair.PublicKey)
				output(cmd, "private:", pair.PrivateKey)

				return nil
			}

			if err := cfg.Validate("KeyDir"); err != nil {
				return err
			}

			publicPath, privatePath, err := logic.WriteKeyPair(cfg.KeyDir, pair)
			if err != nil {
				return err
			}

			slog.Info("wrote key pair", "public", publicPath, "private", privatePath)

			return nil
		}),
	}

	cmd.Flags().IntP("bits", "b", asymmetric.DefaultBits, "Modulus size in bits, at least 1024")
	cmd.Flags().StringP("out", "o", "", "Directory to write PEM key files to")

	return cmd
}

func keyFlags(cmd *cobra.Command) {
	cmd.Flags().String("public-key", "", "Public key, Base64 SPKI DER or @file.pem")
	cmd.Flags().String("private-key", "", "Private key, Base64 PKCS#8 DER or @file.pem")
	cmd.Flags().Bool("oaep", false, "Use OAEP with SHA-256 instead of PKCS#1 v1.5 (public-key encryption only)")
}

func newRSAEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [text...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text with either key, Base64 output",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, "PublicKey", "PrivateKey"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			text, err := input(cmd, cfg.Args)
			if err != nil {
				return err
			}

			var ciphertext string

			switch {
			case cfg.PublicKey != "" && cfg.OAEP:
				ciphertext, err = withKey(cfg.PublicKey, func(k string) (string, error) {
					return asymmetric.EncryptPublicOAEP(rand.Reader, text, k)
				})
			case cfg.PublicKey != "":
				ciphertext, err = withKey(cfg.PublicKey, func(k string) (string, error) {
					return asymmetric.EncryptPublic(rand.Reader, text, k)
				})
			case cfg.OAEP:
				return errOAEPPrivate
			default:
				ciphertext, err = withKey(cfg.PrivateKey, func(k string) (string, error) {
					return asymmetric.EncryptPrivate(text, k)
				})
			}

			if err != nil {
				return err
			}

			output(cmd, ciphertext)

			return nil
		}),
	}

	keyFlags(cmd)

	return cmd
}

func newRSADecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [base64...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt text produced with the other key of the pair",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, "PublicKey", "PrivateKey"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			text, err := input(cmd, cfg.Args)
			if err != nil {
				return err
			}

			var plaintext string

			switch {
			case cfg.PrivateKey != "" && cfg.OAEP:
				plaintext, err = withKey(cfg.PrivateKey, func(k string) (string, error) {
					return asymmetric.DecryptPrivateOAEP(text, k)
				})
			case cfg.PrivateKey != "":
				plaintext, err = withKey(cfg.PrivateKey, func(k string) (string, error) {
					return asymmetric.DecryptPrivate(text, k)
				})
			case cfg.OAEP:
				return errOAEPPrivate
			default:
				plaintext, err = withKey(cfg.PublicKey, func(k string) (string, error) {
					return asymmetric.DecryptPublic(text, k)
				})
			}

			if err != nil {
				return err
			}

			output(cmd, plaintext)

			return nil
		}),
	}

	keyFlags(cmd)

	return cmd
}

var errOAEPPrivate = errors.New("--oaep applies to public-key encryption and private-key decryption only")

// withKey resolves a key flag value and passes it to fn.
func withKey(value string, fn func(key string) (string, error)) (string, error) {
	k, err := logic.LoadKey(value)
	if err != nil {
		return "", err
	}

	return fn(k)
}
