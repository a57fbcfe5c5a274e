package cmd

import (
	"github.com/Daskott/aidline/server"
	"github.com/spf13/cobra"
)

func createServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start an aidline server",
		Long: `The aidline server exposes the profile, contacts, SOS & chat over a JSON API,
for the mobile & web clients.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			server.Start(config, isDevEnv)
			return nil
		},
	}
}
