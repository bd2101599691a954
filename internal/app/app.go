package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chriscorrea/orcall/internal/llm/common"
	"github.com/chriscorrea/orcall/internal/verbose"
)

const separator = "-----------------------------"

// App is the API invoker: it sends the fixed request once and reports the result
type App struct {
	client   common.LLM
	logger   *slog.Logger
	verbose  bool
	endpoint string
	stdout   io.Writer
	stderr   io.Writer
}

// NewApp creates a new App around an LLM client
func NewApp(client common.LLM, logger *slog.Logger, verbose bool) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		client:  client,
		logger:  logger,
		verbose: verbose,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithOutput redirects the console report
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithEndpoint sets the endpoint shown in verbose output
func (a *App) WithEndpoint(endpoint string) *App {
	a.endpoint = endpoint
	return a
}

// Invoke sends the chat request and prints the model and first choice
// every failure is reported on stderr and returned unchanged; nothing is retried
func (a *App) Invoke(ctx context.Context) (*common.ChatResponse, error) {
	if a.client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	fmt.Fprintln(a.stdout, "Sending request to OpenRouter API...")

	if a.verbose {
		verbose.PrintRequestParameters("OpenRouter", Model, a.endpoint,
			common.NewGenerateOptions(SamplingOptions()...), verbose.DefaultOutputConfig(a.stderr))
	}

	a.logger.Info("Invoking chat completion", "model", Model, "prompt_length", len(Prompt))

	resp, err := a.client.Generate(ctx, Messages(), Model, SamplingOptions()...)
	if err != nil {
		return nil, a.fail(err)
	}

	content, err := resp.Content()
	if err != nil {
		return nil, a.fail(err)
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Response from OpenRouter API:")
	fmt.Fprintln(a.stdout, separator)
	fmt.Fprintln(a.stdout, "Model used:", resp.Model)
	fmt.Fprintln(a.stdout, "Response content:")
	fmt.Fprintln(a.stdout, content)
	fmt.Fprintln(a.stdout, separator)

	return resp, nil
}

// fail reports err with the invocation prefix and hands it back
func (a *App) fail(err error) error {
	a.logger.Error("Chat completion failed", "error", err)
	fmt.Fprintf(a.stderr, "Error calling OpenRouter API: %s\n", err)
	return err
}
