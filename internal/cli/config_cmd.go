package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/pushover"
	"github.com/hbjs97/pushover-cli/internal/shell"
)

// config test가 보내는 고정 알림이다.
const (
	testTitle   = "Configuration test"
	testMessage = "Pushover CLI configuration test"
)

// 대화형 입력 프롬프트 제목이다.
const (
	promptToken = "Pushover application token"
	promptUser  = "Pushover user key"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted Pushover credentials",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(
		a.newConfigShowCmd(),
		a.newConfigSetCmd(),
		a.newConfigClearCmd(),
		a.newConfigTestCmd(),
	)
	return cmd
}

func (a *App) newConfigShowCmd() *cobra.Command {
	var shellName string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the detected shell, profile and current credentials (masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow(cmd.OutOrStdout(), shell.Name(shellName))
		},
	}
	cmd.Flags().StringVar(&shellName, "shell", "", "shell type (bash, zsh, fish); detected from $SHELL when empty")
	return cmd
}

func (a *App) runConfigShow(out io.Writer, sh shell.Name) error {
	m := a.shellManager()
	if sh == "" {
		sh = m.DetectShell()
	}
	profile, err := m.ProfilePath(sh)
	if err != nil {
		return fmt.Errorf("cli.config.show: %w", err)
	}

	block := "no Pushover block"
	if ok, err := m.HasBlock(sh); err == nil && ok {
		block = "Pushover block installed"
	}

	fmt.Fprintln(out, "Pushover CLI configuration")
	fmt.Fprintf(out, "shell:   %s\n", shell.ParseName(string(sh)))
	fmt.Fprintf(out, "profile: %s (%s)\n", profile, block)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "environment:")
	for _, key := range []string{config.KeyToken, config.KeyUser} {
		printMasked(out, key, a.Env.Getenv(key))
	}

	path, err := a.configPath()
	if err != nil {
		return fmt.Errorf("cli.config.show: %w", err)
	}
	if values := config.Load(path); len(values) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "config file (%s):\n", path)
		for _, key := range []string{config.KeyToken, config.KeyUser} {
			if v := values.Get(key); v != "" {
				printMasked(out, key, v)
			}
		}
	}
	return nil
}

func printMasked(out io.Writer, key, value string) {
	if value == "" {
		fmt.Fprintf(out, "  %s: (not set)\n", key)
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", key, MaskValue(value))
}

func (a *App) newConfigSetCmd() *cobra.Command {
	var token, user, shellName string
	var toFile bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Persist credentials in your shell profile (prompts for missing values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(cmd.OutOrStdout(), token, user, shell.Name(shellName), toFile)
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "Pushover application token")
	cmd.Flags().StringVarP(&user, "user", "u", "", "Pushover user key")
	cmd.Flags().StringVar(&shellName, "shell", "", "shell type (bash, zsh, fish); detected from $SHELL when empty")
	cmd.Flags().BoolVar(&toFile, "file", false, "write to the config file instead of the shell profile")
	return cmd
}

func (a *App) runConfigSet(out io.Writer, token, user string, sh shell.Name, toFile bool) error {
	var err error
	if token == "" {
		if token, err = a.Prompter.Input(promptToken, true); err != nil {
			return fmt.Errorf("cli.config.set: %w", err)
		}
	}
	if user == "" {
		if user, err = a.Prompter.Input(promptUser, false); err != nil {
			return fmt.Errorf("cli.config.set: %w", err)
		}
	}
	if token == "" || user == "" {
		return fmt.Errorf("cli.config.set: both token and user key are required: %w", ErrMissingCredential)
	}
	creds := config.Credentials{Token: token, User: user}

	if toFile {
		path, err := a.configPath()
		if err != nil {
			return fmt.Errorf("cli.config.set: %w", err)
		}
		if err := config.Update(path, config.Values{config.KeyToken: token, config.KeyUser: user}); err != nil {
			return fmt.Errorf("cli.config.set: %w", err)
		}
		fmt.Fprintf(out, "credentials saved to %s\n", path)
		return nil
	}

	path, err := a.shellManager().Persist(creds, sh)
	if err != nil {
		return fmt.Errorf("cli.config.set: %w", err)
	}
	fmt.Fprintf(out, "credentials saved to %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Open a new terminal, or apply them to the current session with:")
	fmt.Fprintf(out, "  %s\n", shell.SourceHint(path))
	return nil
}

func (a *App) newConfigClearCmd() *cobra.Command {
	var shellName string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove persisted credentials from your shell profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigClear(cmd.OutOrStdout(), shell.Name(shellName))
		},
	}
	cmd.Flags().StringVar(&shellName, "shell", "", "shell type (bash, zsh, fish); detected from $SHELL when empty")
	return cmd
}

func (a *App) runConfigClear(out io.Writer, sh shell.Name) error {
	m := a.shellManager()
	if sh == "" {
		sh = m.DetectShell()
	}
	res, err := m.Clear(sh)
	if err != nil {
		return fmt.Errorf("cli.config.clear: %w", err)
	}

	switch {
	case !res.Existed:
		fmt.Fprintf(out, "%s does not exist; nothing to clear\n", res.Path)
	case res.Removed:
		fmt.Fprintf(out, "Pushover configuration removed from %s\n", res.Path)
		fmt.Fprintln(out, "New terminals will no longer see the credentials. To clear the current session run:")
		fmt.Fprint(out, shell.Unsets(shell.ParseName(string(sh))))
	default:
		fmt.Fprintf(out, "no Pushover configuration found in %s\n", res.Path)
	}
	return nil
}

func (a *App) newConfigTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a test notification using the environment credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigTest(cmd)
		},
	}
}

// runConfigTest는 환경변수 자격 증명만 사용한다 (설정 파일 fallback 없음).
func (a *App) runConfigTest(cmd *cobra.Command) error {
	creds := config.Credentials{
		Token: a.Env.Getenv(config.KeyToken),
		User:  a.Env.Getenv(config.KeyUser),
	}
	if creds.Token == "" || creds.User == "" {
		return fmt.Errorf("cli.config.test: %s and %s must be set in the environment; run pushover config set: %w",
			config.KeyToken, config.KeyUser, ErrMissingCredential)
	}

	res := a.Client.Send(cmd.Context(), creds, pushover.Request{Message: testMessage, Title: testTitle})
	if !res.Delivered {
		return fmt.Errorf("configuration test failed: %w: %s", ErrNotDelivered, res.Detail)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "configuration test passed: notification sent")
	return nil
}
