package cmd

import (
	"errors"

	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/intent"
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/sos"
	"github.com/spf13/cobra"
)

func createSOSCmd() *cobra.Command {
	var (
		latArg      float64
		lngArg      float64
		accuracyArg float64
	)

	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Text your location to your emergency contacts, then call for help",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") != cmd.Flags().Changed("lng") {
				return formattedError("--lat & --lng must be set together")
			}

			a, err := setupApp(commandContext(cmd))
			if err != nil {
				return err
			}

			var fix *location.Fix
			if cmd.Flags().Changed("lat") {
				fix = &location.Fix{Latitude: latArg, Longitude: lngArg, Accuracy: accuracyArg}
				if err := validate.Struct(fix); err != nil {
					return formattedError("invalid location: %v", err)
				}
			}

			selected, err := models.LoadSelectedContacts()
			if err != nil {
				return err
			}

			if len(selected) == 0 {
				cmd.Printf("%s %s\n", colors.WarningLabel, sos.NO_CONTACTS_WARNING)
			}

			dispatcher, recorder := a.NewDispatcher()
			report, err := dispatcher.Dispatch(commandContext(cmd), a.Locator(fix, ""), selected)
			if errors.Is(err, location.ErrPermissionDenied) {
				return formattedError("%v", location.ErrPermissionDenied)
			}

			if err != nil {
				return formattedError(sos.DISPATCH_FAILED_MSG)
			}

			cmd.Printf("Location: %s\n", report.Location.MapsURL())
			cmd.Printf("Sent %v emergency message(s) & called %s\n", report.MessagesSent, report.CalledNumber)
			printIntents(cmd, recorder)

			return nil
		},
	}

	cmd.Flags().Float64Var(&latArg, "lat", 0, "your latitude")
	cmd.Flags().Float64Var(&lngArg, "lng", 0, "your longitude")
	cmd.Flags().Float64Var(&accuracyArg, "accuracy", 0, "accuracy of the location in meters")

	cmd.AddCommand(createSOSStatusCmd(), createSOSCallCmd())
	return cmd
}

func createSOSStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what pressing SOS will do & the emergency services you can call",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setupApp(commandContext(cmd)); err != nil {
				return err
			}

			selected, err := models.LoadSelectedContacts()
			if err != nil {
				return err
			}

			panel := sos.Instructions(len(selected))
			cmd.Println(panel.Instructions)
			if panel.Warning != "" {
				cmd.Printf("\n%s %s\n", colors.WarningLabel, panel.Warning)
			}

			cmd.Println("\nEmergency Services:")
			for _, service := range panel.Services {
				cmd.Printf("  %-18s %-11s %s\n", colors.Bold(service.Name), service.Number, service.Description)
			}

			return nil
		},
	}
}

func createSOSCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <number>",
		Short: "Call one of the emergency services",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(commandContext(cmd))
			if err != nil {
				return err
			}

			dispatcher, recorder := a.NewDispatcher()
			err = dispatcher.CallService(args[0])
			if err != nil {
				return formattedError("%v", err)
			}

			cmd.Printf("Called %s\n", args[0])
			printIntents(cmd, recorder)

			return nil
		},
	}
}

// printIntents lists the URIs to open on the device, when texts & calls
// weren't placed by the server itself
func printIntents(cmd *cobra.Command, recorder *intent.Recorder) {
	if recorder == nil {
		return
	}

	cmd.Println("\nOpen on your phone:")
	for _, uri := range recorder.URIs() {
		cmd.Printf("  %s\n", uri)
	}
}
