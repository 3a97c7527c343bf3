package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/logging"
	"github.com/hbjs97/pushover-cli/internal/prompt"
	"github.com/hbjs97/pushover-cli/internal/pushover"
	"github.com/hbjs97/pushover-cli/internal/shell"
	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// Sender는 알림 전송을 추상화한다. 프로덕션에서는 *pushover.Client를 사용한다.
type Sender interface {
	Send(ctx context.Context, creds config.Credentials, req pushover.Request) pushover.Result
}

// App은 CLI 명령이 공유하는 의존성이다. 테스트에서는 각 필드를 fake로 교체한다.
type App struct {
	Env      sysenv.Env
	Prompter prompt.Prompter
	Client   Sender
	// CfgPath는 --config 플래그 값이다. ~는 실행 시 확장된다.
	CfgPath string
	Verbose bool
}

// NewApp은 실제 환경을 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Env:      sysenv.OS{},
		Prompter: &prompt.HuhPrompter{},
		Client:   pushover.New(),
	}
}

const rootExample = `  pushover -m "Hello World"
  pushover -m "Disk almost full" --title "System alert" --priority 1
  pushover config set                    # persist credentials in your shell profile
  pushover config show                   # show current configuration
  pushover config test                   # send a test notification

Credential sources (highest precedence first):
  1. -t/--token and -u/--user flags
  2. PUSHOVER_TOKEN and PUSHOVER_USER environment variables (pushover config set)
  3. the config file (~/.pushover_config)

Priorities:
  -2  lowest (no sound)
  -1  low (quiet)
   0  normal (default)
   1  high (bypasses quiet hours)
   2  emergency (requires acknowledgement)`

// NewRootCmd는 pushover CLI의 루트 명령을 생성한다.
// 하위 명령 없이 실행하면 알림을 전송한다.
func (a *App) NewRootCmd() *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:           "pushover",
		Short:         "Send Pushover notifications from the command line",
		Example:       rootExample,
		Version:       pushover.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if a.Verbose {
				level = "debug"
			}
			logging.Init(cmd.ErrOrStderr(), level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSend(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("pushover-cli {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "debug logging to stderr")
	bindSendFlags(cmd, opts)

	cmd.AddCommand(
		a.newSendCmd(),
		a.newConfigCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// configPath는 ~를 확장한 설정 파일 경로를 반환한다.
func (a *App) configPath() (string, error) {
	return config.ExpandPath(a.CfgPath, a.Env)
}

func (a *App) shellManager() *shell.Manager {
	return shell.NewManager(a.Env)
}
