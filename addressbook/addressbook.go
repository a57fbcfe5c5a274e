// Package addressbook stands in for the device address book: a YAML or
// JSON file with a top level 'contacts' list, read once at start up.
package addressbook

import (
	"errors"
	"strings"

	"github.com/Daskott/aidline/models"
	pkgErrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

var ErrContactNotFound = errors.New("contact not found")

type Book struct {
	contacts []models.Contact
}

// Load reads the address book file at 'path'. An empty path gives an empty book.
func Load(path string) (*Book, error) {
	contacts := []models.Contact{}
	if path == "" {
		return New(contacts), nil
	}

	config := viper.New()
	config.SetConfigFile(path)

	err := config.ReadInConfig()
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "unable to read address book %s", path)
	}

	err = config.UnmarshalKey("contacts", &contacts)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "unable to parse contacts in %s", path)
	}

	return New(contacts), nil
}

func New(contacts []models.Contact) *Book {
	return &Book{contacts: contacts}
}

// List returns every contact that has at least one phone number, in file order
func (book *Book) List() []models.Contact {
	result := []models.Contact{}
	for _, contact := range book.contacts {
		if len(contact.PhoneNumbers) > 0 {
			result = append(result, contact)
		}
	}
	return result
}

func (book *Book) Find(id string) (models.Contact, error) {
	for _, contact := range book.List() {
		if contact.ID == id {
			return contact, nil
		}
	}
	return models.Contact{}, ErrContactNotFound
}

// Filter returns the contacts whose name or first phone number contains
// 'query', ignoring case. An empty query matches everything.
func Filter(contacts []models.Contact, query string) []models.Contact {
	if query == "" {
		return contacts
	}

	query = strings.ToLower(query)
	result := []models.Contact{}
	for _, contact := range contacts {
		if strings.Contains(strings.ToLower(contact.Name), query) ||
			strings.Contains(strings.ToLower(contact.FirstPhoneNumber()), query) {
			result = append(result, contact)
		}
	}
	return result
}
