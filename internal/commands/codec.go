package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/pkg/codec"
	"github.com/idelchi/enigma/pkg/hexxor"
)

// NewBase64Command creates the base64 command.
func NewBase64Command(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "base64", "Standard Base64 with padding", nil,
		func(text string) (string, error) { return codec.EncodeBase64(text), nil },
		codec.DecodeBase64,
	)

	renameSubcommands(cmd, "encode", "decode")

	return cmd
}

// NewHexCommand creates the hex command converting between hex and decimal.
func NewHexCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "hex", "Convert between hexadecimal and decimal integers of any size", nil,
		func(text string) (string, error) {
			n, err := codec.HexToDec(text)
			if err != nil {
				return "", err
			}

			return n.String(), nil
		},
		codec.DecToHex,
	)

	renameSubcommands(cmd, "todec", "fromdec")

	return cmd
}

// NewXorCommand creates the xor command for the single-nibble hex cipher.
func NewXorCommand(cfg *config.Config) *cobra.Command {
	cmd := newPairCommand(cfg, "xor", "Single-nibble XOR over hex digits (obfuscation only, not secure)", nil,
		hexxor.Encrypt,
		hexxor.Decrypt,
	)

	return cmd
}

// renameSubcommands replaces the encrypt/decrypt names of a pair command.
func renameSubcommands(cmd *cobra.Command, forward, backward string) {
	for _, sub := range cmd.Commands() {
		switch sub.Name() {
		case "encrypt":
			sub.Use, sub.Aliases, sub.Short = forward+" [flags] [text...]", nil, "Run "+forward
		case "decrypt":
			sub.Use, sub.Aliases, sub.Short = backward+" [flags] [text...]", nil, "Run "+backward
		}
	}
}
