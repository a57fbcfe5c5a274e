package sos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Daskott/aidline/intent"
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/stretchr/testify/assert"
)

type sentMessage struct {
	to  string
	msg string
}

// recordingPhone is a Messenger & Caller that records every side effect in order
type recordingPhone struct {
	messages []sentMessage
	calls    []string
	events   []string
	failOn   string
}

func (p *recordingPhone) SendMessage(to, msg string) error {
	if to == p.failOn {
		return errors.New("composer crashed")
	}
	p.messages = append(p.messages, sentMessage{to, msg})
	p.events = append(p.events, "sms:"+to)
	return nil
}

func (p *recordingPhone) Call(number string) error {
	if number == p.failOn {
		return errors.New("no signal")
	}
	p.calls = append(p.calls, number)
	p.events = append(p.events, "tel:"+number)
	return nil
}

func contact(id, name string, numbers ...string) models.Contact {
	c := models.Contact{ID: id, Name: name}
	for _, n := range numbers {
		c.PhoneNumbers = append(c.PhoneNumbers, models.PhoneNumber{Number: n})
	}
	return c
}

func TestDispatchSingleContact(t *testing.T) {
	phone := &recordingPhone{}
	dispatcher := NewDispatcher(phone, phone, "9311314442", intent.PLATFORM_WEB, 0)

	report, err := dispatcher.Dispatch(
		context.Background(),
		location.NewStatic(location.Fix{Latitude: 10.0, Longitude: 20.0}),
		[]models.Contact{contact("1", "A", "12345")},
	)
	assert.Nil(t, err)

	expectedMsg := "EMERGENCY! I need help! My current location: https://www.google.com/maps?q=10,20"
	assert.Equal(t, []sentMessage{{"12345", expectedMsg}}, phone.messages)
	assert.Equal(t, []string{"9311314442"}, phone.calls)
	assert.Equal(t, expectedMsg, report.Message)
	assert.Equal(t, 1, report.MessagesSent)
	assert.Equal(t, "9311314442", report.CalledNumber)
}

func TestDispatchOrderAndSkips(t *testing.T) {
	phone := &recordingPhone{}
	dispatcher := NewDispatcher(phone, phone, "911", intent.PLATFORM_ANDROID, 500*time.Millisecond)

	sleeps := []time.Duration{}
	dispatcher.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)
		phone.events = append(phone.events, "sleep")
	}

	contacts := []models.Contact{
		contact("1", "A", "111", "112"),
		contact("2", "No phone"),
		contact("3", "C", "333"),
	}

	report, err := dispatcher.Dispatch(context.Background(), location.NewStatic(location.Fix{Latitude: 1, Longitude: 2}), contacts)
	assert.Nil(t, err)
	assert.Equal(t, 2, report.MessagesSent)
	assert.Equal(t, []string{"sms:111", "sleep", "sms:333", "sleep", "tel:911"}, phone.events,
		"Should text the first number of each contact in order, wait after each, then call")
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, sleeps)
}

func TestDispatchWithNoContactsStillCalls(t *testing.T) {
	phone := &recordingPhone{}
	dispatcher := NewDispatcher(phone, phone, "9311314442", intent.PLATFORM_IOS, 0)

	report, err := dispatcher.Dispatch(context.Background(), location.NewStatic(location.Fix{}), []models.Contact{})
	assert.Nil(t, err)
	assert.Empty(t, phone.messages)
	assert.Equal(t, []string{"9311314442"}, phone.calls)
	assert.Equal(t, 0, report.MessagesSent)
}

func TestDispatchFailures(t *testing.T) {
	fix := location.NewStatic(location.Fix{Latitude: 1, Longitude: 1})
	contacts := []models.Contact{contact("1", "A", "111"), contact("2", "B", "222"), contact("3", "C", "333")}

	t.Run("location denied aborts before any message", func(t *testing.T) {
		phone := &recordingPhone{}
		dispatcher := NewDispatcher(phone, phone, "911", intent.PLATFORM_WEB, 0)

		var denied *location.Static
		report, err := dispatcher.Dispatch(context.Background(), denied, contacts)
		assert.ErrorIs(t, err, ErrDispatchFailed)
		assert.ErrorIs(t, err, location.ErrPermissionDenied)
		assert.Nil(t, report)
		assert.Empty(t, phone.events)
	})

	t.Run("failed message aborts the rest & the call", func(t *testing.T) {
		phone := &recordingPhone{failOn: "222"}
		dispatcher := NewDispatcher(phone, phone, "911", intent.PLATFORM_WEB, 0)

		report, err := dispatcher.Dispatch(context.Background(), fix, contacts)
		assert.ErrorIs(t, err, ErrDispatchFailed)
		assert.Equal(t, DISPATCH_FAILED_MSG+": composer crashed", err.Error())
		assert.Equal(t, []string{"sms:111"}, phone.events)
		assert.Equal(t, 1, report.MessagesSent)
		assert.Equal(t, "", report.CalledNumber)
	})

	t.Run("failed call", func(t *testing.T) {
		phone := &recordingPhone{failOn: "911"}
		dispatcher := NewDispatcher(phone, phone, "911", intent.PLATFORM_WEB, 0)

		_, err := dispatcher.Dispatch(context.Background(), fix, contacts)
		assert.ErrorIs(t, err, ErrDispatchFailed)
		assert.Len(t, phone.messages, 3)
	})
}

func TestDispatchThroughIntents(t *testing.T) {
	recorder := &intent.Recorder{}
	launcher := intent.NewLauncher(intent.PLATFORM_IOS, recorder)
	dispatcher := NewDispatcher(launcher, launcher, "9311314442", intent.PLATFORM_IOS, 0)

	_, err := dispatcher.Dispatch(context.Background(),
		location.NewStatic(location.Fix{Latitude: 10, Longitude: 20}),
		[]models.Contact{contact("1", "A", "12345")})
	assert.Nil(t, err)

	assert.Equal(t, []string{
		"sms:12345&body=EMERGENCY!%20I%20need%20help!%20My%20current%20location%3A%20https%3A%2F%2Fwww.google.com%2Fmaps%3Fq%3D10%2C20",
		"tel:9311314442",
	}, recorder.URIs())
}

func TestCallService(t *testing.T) {
	phone := &recordingPhone{}
	dispatcher := NewDispatcher(phone, phone, "9311314442", intent.PLATFORM_WEB, 0)

	assert.Nil(t, dispatcher.CallService("101"))
	assert.NotNil(t, dispatcher.CallService("12345"), "Should only call known services")
	assert.Equal(t, []string{"101"}, phone.calls)
}

func TestInstructions(t *testing.T) {
	panel := Instructions(0)
	assert.Equal(t, NO_CONTACTS_WARNING, panel.Warning)
	assert.Contains(t, panel.Warning, "No emergency contacts selected")
	assert.Contains(t, panel.Instructions, "Share your location with 0 selected emergency contacts")
	assert.Len(t, panel.Services, 4)

	panel = Instructions(2)
	assert.Empty(t, panel.Warning)
	assert.Contains(t, panel.Instructions, "with 2 selected")
}
