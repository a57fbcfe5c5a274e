// Package intent builds the sms: and tel: URIs a phone hands to the OS to
// open the message composer or the dialer.
package intent

import (
	"fmt"
	"sync"

	"github.com/Daskott/aidline/utils"
)

const (
	PLATFORM_WEB     = "web"
	PLATFORM_ANDROID = "android"
	PLATFORM_IOS     = "ios"
)

// Opener hands a URI to whatever can open it
type Opener interface {
	Open(uri string) error
}

type Launcher struct {
	platform string
	opener   Opener
}

func NewLauncher(platform string, opener Opener) *Launcher {
	return &Launcher{platform: platform, opener: opener}
}

// SendMessage opens the SMS composer for 'to' with 'msg' filled in.
// Nothing confirms the message was actually sent.
func (l *Launcher) SendMessage(to, msg string) error {
	return l.opener.Open(SmsURI(l.platform, to, msg))
}

// Call opens the dialer for 'number'
func (l *Launcher) Call(number string) error {
	return l.opener.Open(TelURI(number))
}

// SmsURI returns sms:<number>?body=<msg>, using '&' as the separator on iOS
func SmsURI(platform, number, msg string) string {
	separator := "?"
	if platform == PLATFORM_IOS {
		separator = "&"
	}

	return fmt.Sprintf("sms:%s%sbody=%s", number, separator, utils.EncodeURIComponent(msg))
}

func TelURI(number string) string {
	return "tel:" + number
}

// Recorder is an Opener that keeps every URI it's given, so they can be
// returned to a client to open on the device.
type Recorder struct {
	mu   sync.Mutex
	uris []string
}

func (r *Recorder) Open(uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, uri)
	return nil
}

func (r *Recorder) URIs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.uris...)
}
