package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/analytics"
	"github.com/MrSnakeDoc/sharelink/internal/app"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/launch"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/notify"
	"github.com/MrSnakeDoc/sharelink/internal/opener"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
)

type openOptions struct {
	UserAgent string
	PrintOnly bool
}

func addOpen(topLevel *cobra.Command) {
	po := &profileOptions{}
	oo := &openOptions{}

	cmd := &cobra.Command{
		Use:       "open [share|contact]",
		Short:     "Open a WhatsApp link in the browser",
		ValidArgs: []string{string(domain.ActionShare), string(domain.ActionContact)},
		Long: `Opens the link with the system URL handler and shows a status toast.
When no handler is available (or with --print) the link is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := parseAction(args)
			if err != nil {
				return err
			}
			cfg := config.Load()
			p, err := po.resolve(cfg)
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.PrettyLog)
			defer func() { _ = log.Sync() }()

			var nav launch.Navigator = opener.NewBrowser(cmd.OutOrStdout())
			if oo.PrintOnly {
				nav = opener.NewPrinter(cmd.OutOrStdout())
			}
			center := notify.New(notify.NewTerminalPresenter(cmd.ErrOrStderr()),
				notify.WithDuration(cfg.ToastDuration))

			l := launch.New(launch.Config{
				Profiles:      profile.NewHolder(p),
				Links:         app.LinkBuilder(cfg),
				Navigator:     nav,
				Notifier:      center,
				Recorder:      analytics.NewLogRecorder(log.Named("analytics")),
				Logger:        log,
				FallbackDelay: cfg.FallbackDelay,
			})

			return runOpen(cmd.Context(), l, center, action, oo.UserAgent, cmd.ErrOrStderr())
		},
	}

	addProfileArgs(cmd, po)
	cmd.Flags().StringVar(&oo.UserAgent, "user-agent", "", "classify the device from this User-Agent (empty = desktop)")
	cmd.Flags().BoolVar(&oo.PrintOnly, "print", false, "print the link instead of opening a browser")
	topLevel.AddCommand(cmd)
}

// runOpen launches the action, then stays up until the fallback has run and
// the toast has been dismissed.
func runOpen(ctx context.Context, l *launch.Launcher, center *notify.Center, action domain.Action, userAgent string, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var res launch.Result
	if action == domain.ActionContact {
		res = l.Contact(ctx)
	} else {
		res = l.Share(ctx, userAgent)
	}
	if res.Fallback {
		fmt.Fprintln(errOut, "warning: profile incomplete, shared the short message")
	}

	l.Wait()
	waitHidden(ctx, center, 50*time.Millisecond)
	return nil
}

func waitHidden(ctx context.Context, center *notify.Center, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for center.Visible() {
		select {
		case <-ctx.Done():
			center.Dismiss()
			return
		case <-ticker.C:
		}
	}
}
