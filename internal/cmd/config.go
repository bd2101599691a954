package cmd

import (
	"fmt"
	"os"

	"github.com/chriscorrea/orcall/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func createConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved orcall configuration",
		Long: `Show where orcall finds its configuration.

Examples:
  orcall config                        # Show the env file and masked API key
  orcall config --env-file ./dev.env   # Inspect a different env file
  `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.manager.Config()
			out := cmd.OutOrStdout()

			envFile := state.manager.EnvFileUsed()
			if envFile == "" {
				envFile = "(none)"
			}
			fmt.Fprintf(out, "Env file: %s\n", envFile)
			fmt.Fprintf(out, "API key: %s\n", config.MaskKey(cfg.APIKey))
			fmt.Fprintf(out, "API key source: %s\n", keySource(cfg, state.manager.EnvFileUsed()))

			// list the flags given on this invocation
			cmd.Flags().Visit(func(flag *pflag.Flag) {
				fmt.Fprintf(out, "Flag --%s: %s\n", flag.Name, flag.Value.String())
			})

			return nil
		},
	}
}

// keySource names where the resolved credential came from
func keySource(cfg *config.Config, envFile string) string {
	switch {
	case cfg.APIKey == "":
		return "not set"
	case os.Getenv(config.EnvAPIKey) != "":
		return "environment"
	case envFile != "":
		return "env file"
	default:
		return "unknown"
	}
}
