// Command enigma is a toolkit of hashes, ciphers, encodings and ID generators.
package main

import (
	"log/slog"
	"os"

	"github.com/idelchi/enigma/internal/commands"
	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	slog.SetDefault(logging.New(os.Stderr, slog.LevelInfo))

	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		slog.Error("enigma failed", "error", err)
		os.Exit(1)
	}
}
