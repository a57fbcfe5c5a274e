package sos

import "fmt"

const NO_CONTACTS_WARNING = "No emergency contacts selected. Please add contacts in the Contacts tab."

type EmergencyService struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

var emergencyServices = []EmergencyService{
	{Name: "Private Ambulance", Number: "9311314442", Description: "Quick response private ambulance service"},
	{Name: "Police", Number: "100", Description: "Emergency police services"},
	{Name: "Fire", Number: "101", Description: "Fire emergency services"},
	{Name: "Women Helpline", Number: "1091", Description: "24/7 women emergency helpline"},
}

func Services() []EmergencyService {
	return append([]EmergencyService{}, emergencyServices...)
}

func FindService(number string) (EmergencyService, bool) {
	for _, service := range emergencyServices {
		if service.Number == number {
			return service, true
		}
	}
	return EmergencyService{}, false
}

// Panel is what the SOS screen shows above & below the SOS button
type Panel struct {
	Instructions  string             `json:"instructions"`
	Warning       string             `json:"warning,omitempty"`
	SelectedCount int                `json:"selected_count"`
	Services      []EmergencyService `json:"services"`
}

func Instructions(selectedCount int) Panel {
	panel := Panel{
		Instructions: fmt.Sprintf("Press the SOS button in case of emergency. This will:"+
			"\n1. Share your location with %v selected emergency contacts"+
			"\n2. Call emergency services", selectedCount),
		SelectedCount: selectedCount,
		Services:      Services(),
	}

	if selectedCount == 0 {
		panel.Warning = NO_CONTACTS_WARNING
	}

	return panel
}
