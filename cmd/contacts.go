package cmd

import (
	"github.com/Daskott/aidline/addressbook"
	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/models"
	"github.com/spf13/cobra"
)

func createContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Pick the contacts to alert in an emergency",
	}

	cmd.AddCommand(createContactsListCmd(), createContactsToggleCmd())
	return cmd
}

func createContactsListCmd() *cobra.Command {
	var (
		searchArg    string
		selectedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts from your address book, marking the selected ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(commandContext(cmd))
			if err != nil {
				return err
			}

			selected, err := models.LoadSelectedContacts()
			if err != nil {
				return err
			}

			contacts := a.Book.List()
			if selectedOnly {
				contacts = selected
			}

			contacts = addressbook.Filter(contacts, searchArg)
			if len(contacts) == 0 {
				cmd.Println("No contacts found")
				return nil
			}

			for _, contact := range contacts {
				mark := "[ ]"
				if models.IsSelected(selected, contact.ID) {
					mark = colors.Green("[x]")
				}

				cmd.Printf("%s %-4v %-24s %s\n", mark, contact.ID, contact.Name, contact.FirstPhoneNumber())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&searchArg, "search", "s", "", "only show contacts whose name or number contains this")
	cmd.Flags().BoolVar(&selectedOnly, "selected", false, "only show selected emergency contacts")

	return cmd
}

func createContactsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Add a contact to, or remove it from, your emergency contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(commandContext(cmd))
			if err != nil {
				return err
			}

			contact, err := a.Book.Find(args[0])
			if err != nil {
				return formattedError("%v: %v", err, args[0])
			}

			selected, err := models.ToggleSelectedContact(contact)
			if err != nil {
				return err
			}

			if models.IsSelected(selected, contact.ID) {
				cmd.Printf("%s added to emergency contacts\n", contact.Name)
			} else {
				cmd.Printf("%s removed from emergency contacts\n", contact.Name)
			}

			return nil
		},
	}
}
