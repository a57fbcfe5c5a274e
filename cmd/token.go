package cmd

import (
	"time"

	"github.com/Daskott/aidline/server/auth"
	"github.com/Daskott/aidline/server/auth/key"
	"github.com/spf13/cobra"
)

func createTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a token for the aidline server API",
		Long: `Print a token for the aidline server API, signed with the configured key.
Use it as 'Authorization: Bearer <token>' in scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			keyPair, err := key.NewKeyPair([]byte(config.Aidline.PrivateKeyPem))
			if err != nil {
				return err
			}

			token, err := auth.EncodeJWT(auth.OwnerClaims(time.Now()), keyPair)
			if err != nil {
				return err
			}

			cmd.Println(token)
			return nil
		},
	}
}
