package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/enigma/internal/config"
	"github.com/idelchi/enigma/pkg/snowflake"
)

// NewSnowflakeCommand creates the snowflake command.
func NewSnowflakeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snowflake [flags]",
		Aliases: []string{"id"},
		Short:   "Print time-ordered 64-bit IDs",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, "Worker", "Datacenter", "Count"),
		RunE: run(cfg, func(cmd *cobra.Command) error {
			g, err := snowflake.New(cfg.Worker, cfg.Datacenter)
			if err != nil {
				return err
			}

			for range cfg.Count {
				id, err := g.Next()
				if err != nil {
					return err
				}

				output(cmd, id)
			}

			return nil
		}),
	}

	cmd.Flags().Int64("worker", 0, "Worker ID, 0 to 31")
	cmd.Flags().Int64("datacenter", 0, "Datacenter ID, 0 to 31")
	cmd.Flags().IntP("count", "n", 1, "Number of IDs")

	return cmd
}
