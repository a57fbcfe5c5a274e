package cmd

import (
	"bufio"
	"strings"

	"github.com/Daskott/aidline/server/auth"
	"github.com/spf13/cobra"
)

func createPasswdCmd() *cobra.Command {
	var passwordArg string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Hash a password for 'aidline.ownerPasswordHash'",
		Long: `Hash a password for 'aidline.ownerPasswordHash' in the config file.
The password is read from --password, or from the first line of stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password := passwordArg
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return formattedError("a password is required")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			if strings.TrimSpace(password) == "" || strings.Contains(password, " ") {
				return formattedError("password can't be empty or contain spaces")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			cmd.Println(hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&passwordArg, "password", "p", "", "password to hash")
	return cmd
}
