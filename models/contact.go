package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type PhoneNumber struct {
	ID     string `json:"id,omitempty" mapstructure:"id"`
	Label  string `json:"label,omitempty" mapstructure:"label"`
	Number string `json:"number" mapstructure:"number"`
}

// Contact is an address book entry. It's kept exactly as read from the
// address book, the app only records which ones are selected.
type Contact struct {
	ID           string        `json:"id" mapstructure:"id"`
	Name         string        `json:"name" mapstructure:"name"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty" mapstructure:"phoneNumbers"`
}

// FirstPhoneNumber returns "" if the contact has no number
func (contact Contact) FirstPhoneNumber() string {
	if len(contact.PhoneNumbers) == 0 {
		return ""
	}
	return contact.PhoneNumbers[0].Number
}

// LoadSelectedContacts returns the saved emergency contacts, or an empty
// list when nothing is saved or the saved value can't be parsed.
func LoadSelectedContacts() ([]Contact, error) {
	value, found, err := GetItem(SELECTED_CONTACTS_KEY)
	if err != nil {
		return nil, errors.Wrap(err, "LoadSelectedContacts")
	}

	contacts := []Contact{}
	if !found {
		return contacts, nil
	}

	err = json.Unmarshal([]byte(value), &contacts)
	if err != nil {
		logg.Warnf("ignoring unreadable %s: %v", SELECTED_CONTACTS_KEY, err)
		return []Contact{}, nil
	}

	return contacts, nil
}

func SaveSelectedContacts(contacts []Contact) error {
	if contacts == nil {
		contacts = []Contact{}
	}

	data, err := json.Marshal(contacts)
	if err != nil {
		return errors.Wrap(err, "SaveSelectedContacts")
	}

	return errors.Wrap(SetItem(SELECTED_CONTACTS_KEY, string(data)), "SaveSelectedContacts")
}

// ToggleSelectedContact removes 'contact' from the selected list if a contact
// with the same id is in it, otherwise appends it. The whole list is then saved.
func ToggleSelectedContact(contact Contact) ([]Contact, error) {
	selected, err := LoadSelectedContacts()
	if err != nil {
		return nil, err
	}

	selected = ToggleContact(selected, contact)

	err = SaveSelectedContacts(selected)
	if err != nil {
		return nil, err
	}

	return selected, nil
}

// ToggleContact returns a new list with 'contact' added or removed by id
func ToggleContact(selected []Contact, contact Contact) []Contact {
	result := []Contact{}

	if !IsSelected(selected, contact.ID) {
		result = append(result, selected...)
		return append(result, contact)
	}

	for _, c := range selected {
		if c.ID != contact.ID {
			result = append(result, c)
		}
	}

	return result
}

func IsSelected(selected []Contact, id string) bool {
	for _, c := range selected {
		if c.ID == id {
			return true
		}
	}
	return false
}
