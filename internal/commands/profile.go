package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
)

func addProfile(topLevel *cobra.Command) {
	po := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Validate and print the effective profile as YAML",
		Long: `Prints the profile that serve, message, link and open would use.
Without --profile or $SHARELINK_PROFILE_FILE this is the built-in profile,
a good starting point for a profile.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := po.resolve(config.Load())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(profile.FromProfile(p)); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	addProfileArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
