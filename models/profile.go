package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MedicalProfile is stored whole under PROFILE_KEY. Every field is free text.
type MedicalProfile struct {
	Name           string `json:"name" mapstructure:"name"`
	Age            string `json:"age" mapstructure:"age"`
	BloodType      string `json:"bloodType" mapstructure:"bloodType"`
	Allergies      string `json:"allergies" mapstructure:"allergies"`
	Medications    string `json:"medications" mapstructure:"medications"`
	Conditions     string `json:"conditions" mapstructure:"conditions"`
	HomeAddress    string `json:"homeAddress" mapstructure:"homeAddress"`
	WorkAddress    string `json:"workAddress" mapstructure:"workAddress"`
	OtherLocations string `json:"otherLocations" mapstructure:"otherLocations"`
	SpecialNeeds   string `json:"specialNeeds" mapstructure:"specialNeeds"`
}

// LoadProfile returns the saved profile, or an empty one if nothing
// is saved or the saved value can't be parsed.
func LoadProfile() (*MedicalProfile, error) {
	profile, err := FindProfile()
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return &MedicalProfile{}, nil
	}

	return profile, nil
}

// FindProfile is like LoadProfile but returns nil when there is no
// usable saved profile.
func FindProfile() (*MedicalProfile, error) {
	value, found, err := GetItem(PROFILE_KEY)
	if err != nil {
		return nil, errors.Wrap(err, "FindProfile")
	}

	if !found {
		return nil, nil
	}

	profile := MedicalProfile{}
	err = json.Unmarshal([]byte(value), &profile)
	if err != nil {
		logg.Warnf("ignoring unreadable %s: %v", PROFILE_KEY, err)
		return nil, nil
	}

	return &profile, nil
}

func SaveProfile(profile *MedicalProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "SaveProfile")
	}

	return errors.Wrap(SetItem(PROFILE_KEY, string(data)), "SaveProfile")
}
