package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/chriscorrea/orcall/internal/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// askOne runs a single survey prompt; replaced in tests
var askOne = survey.AskOne

func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Store your OpenRouter API key in a .env file",
		Long: `Interactively store your OpenRouter API key in a dotenv file.

The key is written as OPENROUTER_API_KEY to the file named by --env-file
(default .env in the current directory). An existing file is only replaced
after confirmation; other entries in it are kept unless it cannot be parsed.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tolerateEnvFileErrors: "true"},
		RunE:        runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	// create color functions for consistent styling
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n\n", cyan("Set up orcall"))

	exists, err := fileExists(envFile)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", envFile, err)
	}

	if exists {
		var overwrite bool
		overwritePrompt := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Update %s in it?", envFile, config.EnvAPIKey),
			Default: false,
		}
		if err := askOne(overwritePrompt, &overwrite); err != nil {
			return fmt.Errorf("survey error: %w", err)
		}
		if !overwrite {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", yellow(fmt.Sprintf("Left %s unchanged", envFile)))
			return nil
		}
	}

	var apiKey string
	apiKeyPrompt := &survey.Password{
		Message: "Enter your OpenRouter API key:",
	}
	if err := askOne(apiKeyPrompt, &apiKey, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("survey error: %w", err)
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return config.ErrMissingAPIKey
	}

	if err := state.manager.SaveAPIKey(envFile, apiKey); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", green("Saved API key to"), envFile)
	fmt.Fprintf(cmd.ErrOrStderr(), "Run %s to send a request.\n", cyan("orcall"))
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
