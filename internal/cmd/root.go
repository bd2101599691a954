package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chriscorrea/orcall/internal/app"
	"github.com/chriscorrea/orcall/internal/config"
	"github.com/chriscorrea/orcall/internal/llm/common"
	"github.com/chriscorrea/orcall/internal/llm/openrouter"
	"github.com/chriscorrea/orcall/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// current version (hardcoded for now, could be replaced with build flags)
const version = "0.1.0"

// rootCmdState holds the config manager and logger for the command
type rootCmdState struct {
	manager *config.Manager
	logger  *slog.Logger
}

// state is the global state instance for the root command
var state = &rootCmdState{}

// baseURL is the API root the invoker talks to; tests point it at a local server
var baseURL = openrouter.DefaultBaseURL

// tolerateEnvFileErrors marks commands that must keep working when the env file is unreadable
const tolerateEnvFileErrors = "orcall/tolerate-env-file-errors"

// newRootCommand builds the orcall command tree
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "orcall",
		Version: version,
		Short:   "Send one chat completion request to OpenRouter",
		Long: `orcall reads OPENROUTER_API_KEY from the environment (or a .env file),
sends a single fixed chat completion request to the OpenRouter API and prints
the model that answered together with its reply.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// get the debug flag value and create logger
			debug, err := cmd.Flags().GetBool(config.FlagDebug)
			if err != nil {
				return fmt.Errorf("failed to get debug flag: %w", err)
			}
			state.logger = logger.NewWithWriter(cmd.ErrOrStderr(), debug)

			// instantiate the config manager with logger
			state.manager = config.NewManager().WithLogger(state.logger)

			envFile, err := cmd.Flags().GetString("env-file")
			if err != nil {
				return fmt.Errorf("failed to get env-file flag: %w", err)
			}

			if err := state.manager.Load(envFile); err != nil {
				if cmd.Annotations[tolerateEnvFileErrors] == "" {
					return err
				}
				state.logger.Warn("Ignoring env file", "command", cmd.Name(), "error", err)
			}

			// behavior switches come from flags only
			return state.manager.ApplyFlags(cmd.Flags())
		},

		RunE: runInvoke,
	}

	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Path to a dotenv file holding "+config.EnvAPIKey)
	rootCmd.PersistentFlags().BoolP(config.FlagDebug, "D", false, "Enable detailed debug logging")
	rootCmd.PersistentFlags().BoolP(config.FlagVerbose, "v", false, "Display request parameters in a formatted table")
	rootCmd.PersistentFlags().Bool(config.FlagFailOnError, false, fmt.Sprintf("Exit with code %d when the API call fails", app.ExitAPIFailure))

	rootCmd.AddCommand(
		createInitCommand(),
		createConfigCommand(),
		createVersionCommand(),
		createManCommand(),
	)

	return rootCmd
}

// runInvoke validates the credential and performs the API call
func runInvoke(cmd *cobra.Command, args []string) error {
	cfg := state.manager.Config()
	if err := cfg.Validate(); err != nil {
		state.logger.Debug("No credential resolved, not sending request")
		return err
	}

	client, err := openrouter.New().CreateClient(cfg, state.logger, common.WithBaseURL(baseURL))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	invoker := app.NewApp(client, state.logger, cfg.Verbose).
		WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()).
		WithEndpoint(common.BuildChatCompletionsURL(baseURL))

	if _, err := invoker.Invoke(cmd.Context()); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", red("Failed to complete API call:"), err)
		return &app.InvocationError{Err: err}
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintln(cmd.OutOrStdout(), green("API call completed successfully"))
	return nil
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the orcall version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tolerateEnvFileErrors: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orcall version %s\n", version)
		},
	}
}

// Run executes the command tree with args and returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	state = &rootCmdState{}

	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	// invocation failures have already been reported by the command
	var invocationErr *app.InvocationError
	if err != nil && !errors.As(err, &invocationErr) {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}

	failOnError := false
	if state.manager != nil {
		failOnError = state.manager.Config().FailOnError
	}

	return app.ExitCode(err, failOnError)
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
