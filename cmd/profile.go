package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Daskott/aidline/models"
	"github.com/spf13/cobra"
)

// profileFlags maps each flag to the profile field it sets
var profileFlags = []struct {
	name  string
	usage string
	field func(*models.MedicalProfile) *string
}{
	{"name", "your full name", func(p *models.MedicalProfile) *string { return &p.Name }},
	{"age", "your age", func(p *models.MedicalProfile) *string { return &p.Age }},
	{"blood-type", "your blood type e.g. O+", func(p *models.MedicalProfile) *string { return &p.BloodType }},
	{"allergies", "known allergies", func(p *models.MedicalProfile) *string { return &p.Allergies }},
	{"medications", "medications you take", func(p *models.MedicalProfile) *string { return &p.Medications }},
	{"conditions", "medical conditions", func(p *models.MedicalProfile) *string { return &p.Conditions }},
	{"home-address", "home address", func(p *models.MedicalProfile) *string { return &p.HomeAddress }},
	{"work-address", "work address", func(p *models.MedicalProfile) *string { return &p.WorkAddress }},
	{"other-locations", "other places you're often at", func(p *models.MedicalProfile) *string { return &p.OtherLocations }},
	{"special-needs", "anything responders should know", func(p *models.MedicalProfile) *string { return &p.SpecialNeeds }},
}

func createProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your medical profile",
	}

	cmd.AddCommand(createProfileShowCmd(), createProfileSetCmd())
	return cmd
}

func createProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print your medical profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setupApp(commandContext(cmd)); err != nil {
				return err
			}

			profile, err := models.LoadProfile()
			if err != nil {
				return err
			}

			return printJSON(cmd, profile)
		},
	}
}

func createProfileSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of your medical profile",
		Long: `Update fields of your medical profile. Only the fields passed as flags change,
e.g. aidline profile set --blood-type "O-" --allergies "penicillin"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			for _, flag := range profileFlags {
				changed = changed || cmd.Flags().Changed(flag.name)
			}

			if !changed {
				return fmt.Errorf("at least one profile flag is required")
			}

			if _, err := setupApp(commandContext(cmd)); err != nil {
				return err
			}

			profile, err := models.LoadProfile()
			if err != nil {
				return err
			}

			for _, flag := range profileFlags {
				if cmd.Flags().Changed(flag.name) {
					value, _ := cmd.Flags().GetString(flag.name)
					*flag.field(profile) = value
				}
			}

			err = models.SaveProfile(profile)
			if err != nil {
				return err
			}

			cmd.Println("Profile saved successfully")
			return nil
		},
	}

	for _, flag := range profileFlags {
		cmd.Flags().String(flag.name, "", flag.usage)
	}

	return cmd
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(out))
	return nil
}
