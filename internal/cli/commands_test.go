package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/pushover-cli/internal/cli"
	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/pushover"
	"github.com/hbjs97/pushover-cli/internal/shell"
	"github.com/hbjs97/pushover-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records send calls and returns a fixed result.
type fakeSender struct {
	result   pushover.Result
	creds    []config.Credentials
	requests []pushover.Request
}

func (s *fakeSender) Send(_ context.Context, creds config.Credentials, req pushover.Request) pushover.Result {
	s.creds = append(s.creds, creds)
	s.requests = append(s.requests, req)
	return s.result
}

func delivered() *fakeSender {
	return &fakeSender{result: pushover.Result{Delivered: true, Detail: pushover.DeliveredDetail}}
}

// testApp bundles an App with its fakes and a temporary home directory.
type testApp struct {
	app      *cli.App
	env      *testutil.FakeEnv
	sender   *fakeSender
	prompter *testutil.FakePrompter
	home     string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	home := t.TempDir()
	env := testutil.NewFakeEnv(home).Set("SHELL", "/bin/zsh")
	sender := delivered()
	prompter := &testutil.FakePrompter{}
	return &testApp{
		app:      &cli.App{Env: env, Prompter: prompter, Client: sender},
		env:      env,
		sender:   sender,
		prompter: prompter,
		home:     home,
	}
}

// run executes the root command with args and returns captured stdout.
func (ta *testApp) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := ta.app.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (ta *testApp) writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(ta.home, ".pushover_config")
	testutil.WriteFile(t, path, content)
	return path
}

// --- send ---

func TestSend_FlagCredentials(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "-m", "hello", "-t", "flag-token", "-u", "flag-user", "--title", "hi", "--priority", "-1", "--sound", "siren")
	require.NoError(t, err)

	assert.Contains(t, out, pushover.DeliveredDetail)
	require.Len(t, ta.sender.requests, 1)
	assert.Equal(t, config.Credentials{Token: "flag-token", User: "flag-user"}, ta.sender.creds[0])
	assert.Equal(t, pushover.Request{Message: "hello", Title: "hi", Priority: -1, Sound: "siren"}, ta.sender.requests[0])
}

func TestSend_Precedence(t *testing.T) {
	ta := newTestApp(t)
	ta.writeConfig(t, "PUSHOVER_TOKEN=file-token\nPUSHOVER_USER=file-user\n")
	ta.env.Set("PUSHOVER_TOKEN", "env-token")

	_, err := ta.run(t, "-m", "hello")
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{Token: "env-token", User: "file-user"}, ta.sender.creds[0])

	_, err = ta.run(t, "-m", "hello", "-u", "flag-user")
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{Token: "env-token", User: "flag-user"}, ta.sender.creds[1])
}

func TestSend_CustomConfigPath(t *testing.T) {
	ta := newTestApp(t)
	testutil.WriteFile(t, filepath.Join(ta.home, "creds", "pushover.toml"), "PUSHOVER_TOKEN = \"toml-token\"\nPUSHOVER_USER = \"toml-user\"\n")

	_, err := ta.run(t, "--config", "~/creds/pushover.toml", "-m", "hello")
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{Token: "toml-token", User: "toml-user"}, ta.sender.creds[0])
}

func TestSend_MissingCredentials(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "-m", "hello", "-u", "flag-user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrMissingCredential))
	assert.Contains(t, err.Error(), "pushover config set")
	assert.Contains(t, err.Error(), "PUSHOVER_TOKEN")
	assert.Empty(t, ta.sender.requests)
	assert.Equal(t, cli.ExitFailure, cli.MapExitCode(err))
}

func TestSend_InvalidPriority(t *testing.T) {
	ta := newTestApp(t)

	for _, p := range []string{"3", "-3"} {
		_, err := ta.run(t, "-m", "hello", "-t", "t", "-u", "u", "--priority", p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cli.ErrInvalidPriority), "priority %s", p)
	}
	assert.Empty(t, ta.sender.requests)
}

func TestSend_NotDelivered(t *testing.T) {
	ta := newTestApp(t)
	ta.sender.result = pushover.Result{Detail: "send error: invalid token"}

	out, err := ta.run(t, "-m", "hello", "-t", "t", "-u", "u")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrNotDelivered))
	assert.Contains(t, err.Error(), "invalid token")
	assert.Empty(t, out)
	assert.Equal(t, cli.ExitFailure, cli.MapExitCode(err))
}

func TestSend_MessageRequired(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "-t", "t", "-u", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
	assert.Empty(t, ta.sender.requests)
}

func TestSend_ExplicitSubcommand(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "send", "-m", "hello", "-t", "t", "-u", "u", "--device", "phone")
	require.NoError(t, err)
	require.Len(t, ta.sender.requests, 1)
	assert.Equal(t, "phone", ta.sender.requests[0].Device)
}

func TestSend_UnknownPositionalStillSends(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "notify", "-m", "hello", "-t", "t", "-u", "u")
	require.NoError(t, err)
	assert.Len(t, ta.sender.requests, 1)
}

func TestSend_EndToEndFormBody(t *testing.T) {
	ta := newTestApp(t)
	rec := testutil.NewProviderRecorder(t, http.StatusOK, `{"status":1,"request":"abc"}`)
	ta.app.Client = &pushover.Client{Endpoint: rec.URL, HTTPClient: &http.Client{}}

	out, err := ta.run(t, "-m", "hello", "-t", "t", "-u", "u")
	require.NoError(t, err)
	assert.Contains(t, out, pushover.DeliveredDetail)

	form := rec.LastForm()
	assert.Len(t, form, 4)
	for _, key := range []string{"token", "user", "message", "priority"} {
		assert.Contains(t, form, key)
	}
}

func TestSend_EndToEndAPIError(t *testing.T) {
	ta := newTestApp(t)
	endpoint := testutil.MockProvider(t, testutil.ProviderResponse(http.StatusBadRequest, `{"status":0,"errors":["application token is invalid"]}`))
	ta.app.Client = &pushover.Client{Endpoint: endpoint, HTTPClient: &http.Client{}}

	_, err := ta.run(t, "-m", "hello", "-t", "t", "-u", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send error: application token is invalid")
}

func TestVersionFlag(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "pushover-cli 1.0.0\n", out)
}

// --- config show ---

func TestConfigShow_MasksValues(t *testing.T) {
	ta := newTestApp(t)
	ta.env.Set("PUSHOVER_TOKEN", "azGDORePK8gMaC0QOYAMyEEuzJnyUi")
	ta.writeConfig(t, "# comment\nPUSHOVER_USER=uQiRzpo4DXghDmr9QzzfQu27cmVRsG\n")

	out, err := ta.run(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "shell:   zsh")
	assert.Contains(t, out, filepath.Join(ta.home, ".zshrc"))
	assert.Contains(t, out, "PUSHOVER_TOKEN: azGDOReP...")
	assert.Contains(t, out, "PUSHOVER_USER: (not set)")
	assert.Contains(t, out, "config file (")
	assert.Contains(t, out, "PUSHOVER_USER: uQiRzpo4...")
	assert.NotContains(t, out, "azGDORePK8gMaC0QOYAMyEEuzJnyUi")
	assert.NotContains(t, out, "uQiRzpo4DXghDmr9QzzfQu27cmVRsG")
}

func TestConfigShow_NoConfigFile(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "config", "show", "--shell", "fish")
	require.NoError(t, err)
	assert.Contains(t, out, "shell:   fish")
	assert.Contains(t, out, filepath.Join(ta.home, ".config", "fish", "config.fish"))
	assert.Contains(t, out, "no Pushover block")
	assert.NotContains(t, out, "config file (")
}

// --- config set ---

func TestConfigSet_Flags(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "config", "set", "-t", "tok-123", "-u", "usr-456")
	require.NoError(t, err)

	rc := filepath.Join(ta.home, ".zshrc")
	assert.Contains(t, out, "credentials saved to "+rc)
	assert.Contains(t, out, "source "+rc)
	assert.Empty(t, ta.prompter.Asked)

	content := testutil.ReadFile(t, rc)
	assert.Contains(t, content, `export PUSHOVER_TOKEN="tok-123"`)
	assert.Contains(t, content, `export PUSHOVER_USER="usr-456"`)
}

func TestConfigSet_PromptsForMissing(t *testing.T) {
	ta := newTestApp(t)
	ta.prompter.Answers = []string{"prompted-user"}

	_, err := ta.run(t, "config", "set", "-t", "tok-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"Pushover user key"}, ta.prompter.Asked)
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(ta.home, ".zshrc")), `export PUSHOVER_USER="prompted-user"`)
}

func TestConfigSet_EmptyPromptFails(t *testing.T) {
	ta := newTestApp(t)
	ta.prompter.Answers = []string{"tok", ""}

	_, err := ta.run(t, "config", "set")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrMissingCredential))
	assert.Len(t, ta.prompter.Asked, 2)

	ok, err := shell.NewManager(ta.env).HasBlock("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigSet_PromptError(t *testing.T) {
	ta := newTestApp(t)
	ta.prompter.Err = errors.New("user aborted")

	_, err := ta.run(t, "config", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user aborted")
}

func TestConfigSet_ResetKeepsSingleBlock(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "config", "set", "-t", "old-token", "-u", "old-user")
	require.NoError(t, err)
	_, err = ta.run(t, "config", "set", "-t", "new-token", "-u", "new-user")
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(ta.home, ".zshrc"))
	assert.Equal(t, 1, strings.Count(content, shell.StartMarker))
	assert.Equal(t, 1, strings.Count(content, shell.EndMarker))
	assert.Contains(t, content, "new-token")
	assert.NotContains(t, content, "old-token")
}

func TestConfigSet_ShellFlag(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "config", "set", "-t", "tok", "-u", "usr", "--shell", "fish")
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(ta.home, ".config", "fish", "config.fish"))
	assert.Contains(t, content, `set -gx PUSHOVER_TOKEN "tok"`)
}

func TestConfigSet_File(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "config", "set", "--file", "-t", "tok", "-u", "usr")
	require.NoError(t, err)

	path := filepath.Join(ta.home, ".pushover_config")
	assert.Contains(t, out, path)
	assert.Equal(t, config.Values{"PUSHOVER_TOKEN": "tok", "PUSHOVER_USER": "usr"}, config.Load(path))

	_, err = ta.run(t, "-m", "hello")
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{Token: "tok", User: "usr"}, ta.sender.creds[0])
}

// --- config clear ---

func TestConfigClear_NoProfile(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "config", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to clear")
}

func TestConfigClear_NoBlock(t *testing.T) {
	ta := newTestApp(t)
	testutil.WriteFile(t, filepath.Join(ta.home, ".zshrc"), "alias ll='ls -l'\n")

	out, err := ta.run(t, "config", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "no Pushover configuration found")
	assert.Equal(t, "alias ll='ls -l'\n", testutil.ReadFile(t, filepath.Join(ta.home, ".zshrc")))
}

func TestConfigClear_RemovesBlock(t *testing.T) {
	ta := newTestApp(t)
	rc := filepath.Join(ta.home, ".zshrc")
	testutil.WriteFile(t, rc, "alias ll='ls -l'\n")

	_, err := ta.run(t, "config", "set", "-t", "tok", "-u", "usr")
	require.NoError(t, err)

	out, err := ta.run(t, "config", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "removed from "+rc)
	assert.Contains(t, out, "unset PUSHOVER_TOKEN")

	content := testutil.ReadFile(t, rc)
	assert.Equal(t, "alias ll='ls -l'\n", content)
	assert.NotContains(t, content, "Pushover CLI Configuration")
}

// --- config test ---

func TestConfigTest_UsesEnvironmentOnly(t *testing.T) {
	ta := newTestApp(t)
	ta.writeConfig(t, "PUSHOVER_TOKEN=file-token\nPUSHOVER_USER=file-user\n")

	_, err := ta.run(t, "config", "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrMissingCredential))
	assert.Empty(t, ta.sender.requests)
}

func TestConfigTest_Success(t *testing.T) {
	ta := newTestApp(t)
	ta.env.Set("PUSHOVER_TOKEN", "env-token").Set("PUSHOVER_USER", "env-user")

	out, err := ta.run(t, "config", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration test passed")

	require.Len(t, ta.sender.requests, 1)
	assert.Equal(t, config.Credentials{Token: "env-token", User: "env-user"}, ta.sender.creds[0])
	assert.Equal(t, "Configuration test", ta.sender.requests[0].Title)
	assert.Equal(t, 0, ta.sender.requests[0].Priority)
}

func TestConfigTest_Failure(t *testing.T) {
	ta := newTestApp(t)
	ta.env.Set("PUSHOVER_TOKEN", "env-token").Set("PUSHOVER_USER", "env-user")
	ta.sender.result = pushover.Result{Detail: "connection error: dial tcp: no such host"}

	_, err := ta.run(t, "config", "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrNotDelivered))
	assert.Contains(t, err.Error(), "no such host")
}

// --- doctor ---

func TestDoctor_ReportsMissingCredentials(t *testing.T) {
	ta := newTestApp(t)

	out, err := ta.run(t, "doctor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrChecksFailed))
	assert.Equal(t, cli.ExitFailure, cli.MapExitCode(err))
	assert.Contains(t, out, "[FAIL] credentials")
	assert.Contains(t, out, "[!!] shell_profile")
	assert.Contains(t, out, "Fix: pushover config set")
}

func TestDoctor_WarningsDoNotFail(t *testing.T) {
	ta := newTestApp(t)
	ta.writeConfig(t, "PUSHOVER_TOKEN=file-token\nPUSHOVER_USER=file-user\n")

	out, err := ta.run(t, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[!!] PUSHOVER_TOKEN")
	assert.Contains(t, out, "[OK] credentials")
}

func TestDoctor_Healthy(t *testing.T) {
	ta := newTestApp(t)
	ta.env.Set("PUSHOVER_TOKEN", "t").Set("PUSHOVER_USER", "u")
	_, err := ta.run(t, "config", "set", "-t", "t", "-u", "u")
	require.NoError(t, err)

	out, err := ta.run(t, "doctor")
	require.NoError(t, err)
	assert.NotContains(t, out, "[FAIL]")
	assert.NotContains(t, out, "[!!]")
}

func TestMapExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.MapExitCode(nil))
	assert.Equal(t, cli.ExitFailure, cli.MapExitCode(cli.ErrNotDelivered))
	assert.Equal(t, cli.ExitFailure, cli.MapExitCode(errors.New("anything")))
}
