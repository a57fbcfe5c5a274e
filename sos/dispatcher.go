package sos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/intent"
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/logger"
)

const (
	MESSAGE_PREFIX = "EMERGENCY! I need help! My current location: "

	// DISPATCH_FAILED_MSG is what the user sees when any part of a dispatch fails
	DISPATCH_FAILED_MSG = "Error: Could not send emergency messages or make the call"
)

var logg = logger.NewLogger()

// ErrDispatchFailed wraps every error returned by Dispatch
var ErrDispatchFailed = errors.New(DISPATCH_FAILED_MSG)

type Messenger interface {
	SendMessage(to, msg string) error
}

type Caller interface {
	Call(number string) error
}

type Dispatcher struct {
	messenger       Messenger
	caller          Caller
	emergencyNumber string
	messageDelay    time.Duration
	sleep           func(time.Duration)
}

// NewDispatcher returns a dispatcher that texts through 'messenger' and calls
// 'emergencyNumber' through 'caller'. On every platform except web it waits
// 'messageDelay' after each message, so the OS composer has time to come up.
func NewDispatcher(messenger Messenger, caller Caller, emergencyNumber, platform string, messageDelay time.Duration) *Dispatcher {
	if platform == intent.PLATFORM_WEB {
		messageDelay = 0
	}

	return &Dispatcher{
		messenger:       messenger,
		caller:          caller,
		emergencyNumber: emergencyNumber,
		messageDelay:    messageDelay,
		sleep:           time.Sleep,
	}
}

type Report struct {
	Location     location.Fix `json:"location"`
	Message      string       `json:"message"`
	MessagesSent int          `json:"messages_sent"`
	CalledNumber string       `json:"called_number"`
}

// Dispatch gets the current location from 'locator', texts it to every contact
// that has a phone number, one after the other, and then calls the emergency number.
//
// The first failure stops everything after it, including the call. Messages
// already handed off are not undone.
func (d *Dispatcher) Dispatch(ctx context.Context, locator location.Locator, contacts []models.Contact) (*Report, error) {
	fix, err := locator.Locate(ctx)
	if err != nil {
		return nil, d.failed(err)
	}

	report := &Report{Location: fix, Message: Message(fix)}

	for _, contact := range contacts {
		phoneNumber := contact.FirstPhoneNumber()
		if phoneNumber == "" {
			continue
		}

		err = d.messenger.SendMessage(phoneNumber, report.Message)
		if err != nil {
			return report, d.failed(err)
		}
		report.MessagesSent++

		if d.messageDelay > 0 {
			d.sleep(d.messageDelay)
		}
	}

	err = d.caller.Call(d.emergencyNumber)
	if err != nil {
		return report, d.failed(err)
	}
	report.CalledNumber = d.emergencyNumber

	logg.Infof(colors.Yellow("[sos] ")+"sent %v message(s) and called %v", report.MessagesSent, d.emergencyNumber)
	return report, nil
}

// CallService calls one of the emergency services directly
func (d *Dispatcher) CallService(number string) error {
	if _, ok := FindService(number); !ok {
		return fmt.Errorf("%v is not a known emergency service", number)
	}
	return d.caller.Call(number)
}

// Message is the text sent to every emergency contact
func Message(fix location.Fix) string {
	return MESSAGE_PREFIX + fix.MapsURL()
}

func (d *Dispatcher) failed(err error) error {
	logg.Errorf(colors.Red("[sos] ")+"Error in SOS: %v", err)
	return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
}
