package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmsURI(t *testing.T) {
	cases := []struct {
		platform string
		expected string
	}{
		{PLATFORM_WEB, "sms:12345?body=help%20me!"},
		{PLATFORM_ANDROID, "sms:12345?body=help%20me!"},
		{PLATFORM_IOS, "sms:12345&body=help%20me!"},
	}

	for _, c := range cases {
		t.Run(c.platform, func(t *testing.T) {
			assert.Equal(t, c.expected, SmsURI(c.platform, "12345", "help me!"))
		})
	}
}

func TestLauncher(t *testing.T) {
	recorder := &Recorder{}
	launcher := NewLauncher(PLATFORM_IOS, recorder)

	assert.Nil(t, launcher.SendMessage("+1555", "a&b"))
	assert.Nil(t, launcher.Call("911"))

	assert.Equal(t, []string{"sms:+1555&body=a%26b", "tel:911"}, recorder.URIs())
}
