package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	peter   = Contact{ID: "1", Name: "Peter Parker", PhoneNumbers: []PhoneNumber{{Number: "+12345678900"}}}
	strange = Contact{ID: "2", Name: "Stephen Strange", PhoneNumbers: []PhoneNumber{{Number: "+32345678900"}}}
	wanda   = Contact{ID: "3", Name: "Wanda", PhoneNumbers: []PhoneNumber{{Number: "555"}, {Number: "666"}}}
)

func TestToggleContact(t *testing.T) {
	selected := []Contact{}

	selected = ToggleContact(selected, peter)
	selected = ToggleContact(selected, strange)
	assert.Equal(t, []Contact{peter, strange}, selected, "Should append in toggle order")

	selected = ToggleContact(selected, peter)
	assert.Equal(t, []Contact{strange}, selected, "Should remove a selected contact")

	// Same id, different details: still treated as the same contact
	selected = ToggleContact(selected, Contact{ID: "2", Name: "Doctor"})
	assert.Empty(t, selected)
}

func TestToggleParity(t *testing.T) {
	InitializeTestDb()

	for toggles := 0; toggles <= 5; toggles++ {
		t.Run(fmt.Sprintf("%v toggles", toggles), func(t *testing.T) {
			assert.Nil(t, SaveSelectedContacts([]Contact{strange}))

			for i := 0; i < toggles; i++ {
				_, err := ToggleSelectedContact(peter)
				assert.Nil(t, err)
			}

			selected, err := LoadSelectedContacts()
			assert.Nil(t, err)
			assert.Equal(t, toggles%2 == 1, IsSelected(selected, peter.ID))
			assert.True(t, IsSelected(selected, strange.ID), "Other contacts should be left alone")

			seen := map[string]bool{}
			for _, c := range selected {
				assert.False(t, seen[c.ID], "Selected list should have no duplicate ids")
				seen[c.ID] = true
			}
		})
	}
}

func TestLoadSelectedContacts(t *testing.T) {
	InitializeTestDb()

	selected, err := LoadSelectedContacts()
	assert.Nil(t, err)
	assert.Empty(t, selected, "Should be empty when nothing is saved")

	assert.Nil(t, SaveSelectedContacts([]Contact{wanda, peter}))
	selected, err = LoadSelectedContacts()
	assert.Nil(t, err)
	assert.Equal(t, []Contact{wanda, peter}, selected, "Should keep order & all phone numbers")

	assert.Nil(t, SetItem(SELECTED_CONTACTS_KEY, "[{"))
	selected, err = LoadSelectedContacts()
	assert.Nil(t, err)
	assert.Empty(t, selected, "Parse failures should be treated as nothing saved")
}

func TestFirstPhoneNumber(t *testing.T) {
	assert.Equal(t, "555", wanda.FirstPhoneNumber())
	assert.Equal(t, "", Contact{ID: "4", Name: "No phone"}.FirstPhoneNumber())
}
