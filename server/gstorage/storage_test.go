package gstorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "aidline.db", ObjectName("", "aidline.db"))
	assert.Equal(t, "aidline-dev/aidline.db", ObjectName("aidline-dev", "aidline.db"))
	assert.Equal(t, "aidline-dev/aidline.db", ObjectName("aidline-dev/", "aidline.db"))
}
