package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKVEntry(t *testing.T) {
	InitializeTestDb()

	_, found, err := GetItem("missing")
	assert.Nil(t, err)
	assert.False(t, found, "Should not find a key that was never set")

	assert.Nil(t, SetItem("greeting", "hello"))
	value, found, err := GetItem("greeting")
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", value)

	assert.Nil(t, SetItem("greeting", "hi again"), "Should overwrite an existing key")
	value, _, err = GetItem("greeting")
	assert.Nil(t, err)
	assert.Equal(t, "hi again", value)

	assert.Nil(t, RemoveItem("greeting"))
	_, found, err = GetItem("greeting")
	assert.Nil(t, err)
	assert.False(t, found, "Should not find a removed key")
}
