// Package commands holds the sharelink command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/sharelink/internal/app"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/version"
)

// profileOptions is shared by every command that reads the event profile.
type profileOptions struct {
	Path string
}

func addProfileArgs(cmd *cobra.Command, po *profileOptions) {
	cmd.Flags().StringVarP(&po.Path, "profile", "p", "",
		"path to profile.yaml (default $SHARELINK_PROFILE_FILE, else the built-in profile)")
}

// resolve applies the flag over the environment.
func (po *profileOptions) resolve(cfg *config.Config) (domain.EventProfile, error) {
	if po.Path != "" {
		cfg.ProfileFile = po.Path
	}
	return app.LoadProfile(cfg.ProfileFile)
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sharelink",
		Short:         "WhatsApp share and contact links for an event page.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addServe(topLevel)
	addMessage(topLevel)
	addLink(topLevel)
	addOpen(topLevel)
	addProfile(topLevel)
}

// parseAction accepts "share" (default) or "contact".
func parseAction(args []string) (domain.Action, error) {
	if len(args) == 0 {
		return domain.ActionShare, nil
	}
	switch a := domain.Action(args[0]); a {
	case domain.ActionShare, domain.ActionContact:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action %q, want %q or %q", args[0], domain.ActionShare, domain.ActionContact)
	}
}
