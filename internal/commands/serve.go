package commands

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/app"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

func addServe(topLevel *cobra.Command) {
	po := &profileOptions{}
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /share and /contact redirects, the JSON API and metrics",
		Example: `
SHARELINK_REDIS_ADDR=localhost:6379 sharelink serve --profile profile.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if po.Path != "" {
				cfg.ProfileFile = po.Path
			}
			if listen != "" {
				cfg.ListenPort = listen
			}

			log := logger.New(cfg.LogLevel, cfg.PrettyLog)
			defer func() { _ = log.Sync() }()

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	addProfileArgs(cmd, po)
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default $SHARELINK_LISTEN_PORT or :8080)")
	topLevel.AddCommand(cmd)
}
