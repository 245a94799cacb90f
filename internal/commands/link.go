package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/app"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/launch"
)

func addLink(topLevel *cobra.Command) {
	po := &profileOptions{}
	var userAgent string

	cmd := &cobra.Command{
		Use:       "link [share|contact]",
		Short:     "Print a WhatsApp link",
		ValidArgs: []string{string(domain.ActionShare), string(domain.ActionContact)},
		Example: `
sharelink link share --user-agent "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
sharelink link contact
`,
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

			t := launch.Resolve(app.LinkBuilder(cfg), p, action, userAgent)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Link.URL)
			return err
		},
	}

	addProfileArgs(cmd, po)
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "classify the device from this User-Agent (empty = desktop)")
	topLevel.AddCommand(cmd)
}
