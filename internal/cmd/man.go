package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func createManCommand() *cobra.Command {
	manCmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages for orcall",
		Long:   `This command generates the man pages for the orcall CLI.`,
		Hidden: true, // hide this from the public help output
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return fmt.Errorf("failed to get dir flag: %w", err)
			}

			// Section 1 is for executable programs and shell commands
			header := &doc.GenManHeader{
				Title:   "ORCALL",
				Section: "1",
				Source:  "orcall CLI",
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create man directory: %w", err)
			}

			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}

			state.logger.Info("Man pages generated", "dir", dir)
			fmt.Fprintf(cmd.ErrOrStderr(), "Man pages successfully generated in %s\n", dir)
			return nil
		},
	}

	manCmd.Flags().String("dir", "./man", "Directory to write man pages into")
	return manCmd
}
