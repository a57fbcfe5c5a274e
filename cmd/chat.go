package cmd

import (
	"bufio"
	"strings"

	"github.com/Daskott/aidline/colors"
	"github.com/spf13/cobra"
)

const CHAT_GREETING = "Ask the health assistant anything. Your medical profile is shared with it.\n" +
	"Type 'exit' or press Ctrl+D to leave."

func createChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the health assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			a, err := setupApp(ctx)
			if err != nil {
				return err
			}

			// Leaving the chat drops the transcript
			defer a.Chat.Reset()

			cmd.Println(CHAT_GREETING)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				cmd.Print(colors.Blue("> "))
				if !scanner.Scan() {
					break
				}

				text := scanner.Text()
				if strings.TrimSpace(text) == "exit" {
					break
				}

				reply, err := a.Chat.Send(ctx, text)
				if err != nil {
					return err
				}

				// blank lines get no reply
				if reply != nil {
					cmd.Printf("%s %s\n", colors.Green("assistant:"), reply.Text)
				}
			}
			cmd.Println()

			return scanner.Err()
		},
	}
}
