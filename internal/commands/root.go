package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/internal/logging"
)

// EnvPrefix prefixes the environment variables that back every flag,
// e.g. ENIGMA_PUBLIC_KEY for --public-key.
const EnvPrefix = "ENIGMA"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "enigma [flags] command [flags]"
	root.Short = "Hashing, cipher and encoding toolkit"
	root.Long = `A toolkit of hashes, classical ciphers, AES, RSA, encodings and ID generators.
Every flag can also be set through an environment variable prefixed with ENIGMA_,
for example ENIGMA_KEY for --key.`
	root.SilenceUsage = true

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		slog.SetDefault(logging.New(cmd.ErrOrStderr(), logging.Level(cfg.Verbose, cfg.Quiet)))

		return nil
	}

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	root.AddCommand(
		NewHashCommand(cfg),
		NewDigestCommand(cfg),
		NewCaesarCommand(cfg),
		NewVigenereCommand(cfg),
		NewFenceCommand(cfg),
		NewAESCommand(cfg),
		NewRSACommand(cfg),
		NewBase64Command(cfg),
		NewHexCommand(cfg),
		NewXorCommand(cfg),
		NewSaltCommand(cfg),
		NewSnowflakeCommand(cfg),
	)

	return root
}
