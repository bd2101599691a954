package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/chriscorrea/orcall/internal/app"
	"github.com/chriscorrea/orcall/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{
	"id": "gen-1",
	"model": "perplexity/llama-3.1-sonar-small-128k-online",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "42"}, "finish_reason": "stop"}]
}`

// fakeOpenRouter points the commands at a local server and counts the requests it receives
func fakeOpenRouter(t *testing.T, status int, body string) (*atomic.Int32, *atomic.Value) {
	t.Helper()

	var hits atomic.Int32
	var authHeader atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		authHeader.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	originalBaseURL := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = originalBaseURL })

	return &hits, &authHeader
}

// missingEnvFile returns a dotenv path that does not exist
func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

// unsetAPIKey removes the credential from the environment for the duration of the test
func unsetAPIKey(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	require.NoError(t, os.Unsetenv(config.EnvAPIKey))
}

// writeEnvFile creates a dotenv file in a temp dir and returns its path
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))
	return envFile
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_MissingCredential(t *testing.T) {
	hits, _ := fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "")

	code, stdout, stderr := runCLI("--env-file", missingEnvFile(t))

	assert.Equal(t, app.ExitMissingCredential, code)
	assert.Equal(t, "Error: OPENROUTER_API_KEY not found in environment variables\n", stderr)
	assert.Empty(t, stdout)
	assert.Equal(t, int32(0), hits.Load(), "no request may be sent without a credential")
}

func TestRun_Success(t *testing.T) {
	hits, authHeader := fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	code, stdout, stderr := runCLI("--env-file", missingEnvFile(t))

	assert.Equal(t, app.ExitSuccess, code)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "Bearer sk-or-test", authHeader.Load())

	assert.Contains(t, stdout, "Sending request to OpenRouter API...")
	assert.Contains(t, stdout, "Model used: perplexity/llama-3.1-sonar-small-128k-online\n")
	assert.Contains(t, stdout, "Response content:\n42\n")
	assert.Contains(t, stdout, "API call completed successfully\n")
	assert.Empty(t, stderr)
}

func TestRun_APIError(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantCode    int
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message from body",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"invalid key"}}`,
			wantMessage: "invalid key",
			wantCode:    app.ExitSuccess,
		},
		{
			name:        "status fallback",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "API request failed with status 502",
			wantCode:    app.ExitSuccess,
		},
		{
			name:        "fail on error",
			args:        []string{"--fail-on-error"},
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"invalid key"}}`,
			wantMessage: "invalid key",
			wantCode:    app.ExitAPIFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, _ := fakeOpenRouter(t, tt.status, tt.body)
			t.Setenv(config.EnvAPIKey, "sk-or-test")

			args := append([]string{"--env-file", missingEnvFile(t)}, tt.args...)
			code, stdout, stderr := runCLI(args...)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, int32(1), hits.Load(), "failed calls are not retried")
			assert.Contains(t, stderr, "Error calling OpenRouter API: "+tt.wantMessage+"\n")
			assert.Contains(t, stderr, "Failed to complete API call: "+tt.wantMessage+"\n")
			assert.NotContains(t, stdout, "API call completed successfully")
			assert.NotContains(t, stdout, "Response content:")
		})
	}
}

func TestRun_CredentialFromEnvFile(t *testing.T) {
	_, authHeader := fakeOpenRouter(t, http.StatusOK, successBody)
	unsetAPIKey(t)

	envFile := writeEnvFile(t, "OPENROUTER_API_KEY=sk-or-from-file\n")

	code, _, stderr := runCLI("--env-file", envFile)

	assert.Equal(t, app.ExitSuccess, code, stderr)
	assert.Equal(t, "Bearer sk-or-from-file", authHeader.Load())
}

func TestRun_EmptyEnvironmentKeyIsNotReplacedByEnvFile(t *testing.T) {
	hits, _ := fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "")

	envFile := writeEnvFile(t, "OPENROUTER_API_KEY=sk-or-from-file\n")

	code, _, stderr := runCLI("--env-file", envFile)

	assert.Equal(t, app.ExitMissingCredential, code)
	assert.Equal(t, "Error: OPENROUTER_API_KEY not found in environment variables\n", stderr)
	assert.Equal(t, int32(0), hits.Load())
}

func TestRun_SwitchesInEnvFileAreIgnored(t *testing.T) {
	hits, _ := fakeOpenRouter(t, http.StatusUnauthorized, `{"error":{"message":"invalid key"}}`)
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	envFile := writeEnvFile(t, "FAIL_ON_ERROR=true\nVERBOSE=true\nDEBUG=true\n")

	code, _, stderr := runCLI("--env-file", envFile)

	assert.Equal(t, app.ExitSuccess, code, "only --fail-on-error changes the exit code")
	assert.Equal(t, int32(1), hits.Load())
	assert.Contains(t, stderr, "Failed to complete API call: invalid key\n")
	assert.NotContains(t, stderr, "Repetition Penalty")
	assert.NotContains(t, stderr, "level=DEBUG")
}

func TestRun_Verbose(t *testing.T) {
	fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	code, _, stderr := runCLI("--env-file", missingEnvFile(t), "--verbose")

	assert.Equal(t, app.ExitSuccess, code)
	assert.Contains(t, stderr, "Repetition Penalty")
	assert.Contains(t, stderr, "/chat/completions")
}

func TestRun_DebugLogging(t *testing.T) {
	fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	code, _, stderr := runCLI("--env-file", missingEnvFile(t), "--debug")

	assert.Equal(t, app.ExitSuccess, code)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.NotContains(t, stderr, "sk-or-test", "the raw key must never be logged")
}

func TestRun_UsageErrors(t *testing.T) {
	hits, _ := fakeOpenRouter(t, http.StatusOK, successBody)
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	code, _, stderr := runCLI("--no-such-flag")
	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr, "Error: unknown flag: --no-such-flag")

	code, _, _ = runCLI("--env-file", missingEnvFile(t), "extra-arg")
	assert.Equal(t, app.ExitFailure, code)

	assert.Equal(t, int32(0), hits.Load())
}

func TestRun_MalformedEnvFile(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "sk-or-test")

	// a directory cannot be read as a dotenv file
	code, _, stderr := runCLI("--env-file", t.TempDir())

	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr, "Error: failed to read env file")
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI("version", "--env-file", missingEnvFile(t))

	assert.Equal(t, app.ExitSuccess, code)
	assert.Equal(t, "orcall version "+version+"\n", stdout)

	t.Run("unparseable env file", func(t *testing.T) {
		envFile := writeEnvFile(t, "this line is not a setting\n")

		code, stdout, stderr := runCLI("version", "--env-file", envFile)

		assert.Equal(t, app.ExitSuccess, code, stderr)
		assert.Equal(t, "orcall version "+version+"\n", stdout)
	})
}
