package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/message"
)

func addMessage(topLevel *cobra.Command) {
	po := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Print the share message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := po.resolve(config.Load())
			if err != nil {
				return err
			}
			msg := message.Compose(p)
			if msg.Fallback() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: profile incomplete, using the short message:", p.Validate())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.String())
			return err
		},
	}

	addProfileArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
