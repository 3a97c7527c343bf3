package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/pushover-cli/internal/config"
	"github.com/hbjs97/pushover-cli/internal/logging"
	"github.com/hbjs97/pushover-cli/internal/pushover"
)

// sendOptions는 send 플래그 값이다.
type sendOptions struct {
	message  string
	token    string
	user     string
	title    string
	priority int
	url      string
	urlTitle string
	device   string
	sound    string
}

func (o *sendOptions) request() pushover.Request {
	return pushover.Request{
		Message:  o.message,
		Title:    o.title,
		Priority: o.priority,
		URL:      o.url,
		URLTitle: o.urlTitle,
		Device:   o.device,
		Sound:    o.sound,
	}
}

func bindSendFlags(cmd *cobra.Command, opts *sendOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.message, "message", "m", "", "message to send (required)")
	f.StringVarP(&opts.token, "token", "t", "", "Pushover application token")
	f.StringVarP(&opts.user, "user", "u", "", "Pushover user key")
	f.StringVar(&opts.title, "title", "", "notification title")
	f.IntVar(&opts.priority, "priority", pushover.PriorityNormal, "priority from -2 to 2")
	f.StringVar(&opts.url, "url", "", "supplementary URL")
	f.StringVar(&opts.urlTitle, "url-title", "", "title for the supplementary URL")
	f.StringVar(&opts.device, "device", "", "target device name")
	f.StringVar(&opts.sound, "sound", "", "notification sound")
	_ = cmd.MarkFlagRequired("message") // 플래그가 방금 등록되었으므로 실패하지 않음
}

func (a *App) newSendCmd() *cobra.Command {
	opts := &sendOptions{}
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSend(cmd, opts)
		},
	}
	bindSendFlags(cmd, opts)
	return cmd
}

// runSend는 자격 증명을 결정하고 알림을 한 번 전송한다.
func (a *App) runSend(cmd *cobra.Command, opts *sendOptions) error {
	if err := pushover.ValidatePriority(opts.priority); err != nil {
		return fmt.Errorf("cli.send: %w", err)
	}

	path, err := a.configPath()
	if err != nil {
		return fmt.Errorf("cli.send: %w", err)
	}
	logging.Get().Debug().Str("config", path).Msg("loading config file")

	creds, err := config.Resolve(
		config.Credentials{Token: opts.token, User: opts.user},
		a.Env,
		config.Load(path),
	)
	if err != nil {
		return err
	}

	res := a.Client.Send(cmd.Context(), creds, opts.request())
	if !res.Delivered {
		return fmt.Errorf("%w: %s", ErrNotDelivered, res.Detail)
	}
	logging.Get().Debug().Str("request", res.RequestID).Msg("delivered")
	fmt.Fprintln(cmd.OutOrStdout(), res.Detail)
	return nil
}
