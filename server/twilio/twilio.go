package twilio

import (
	"encoding/xml"
	"fmt"

	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/server/logger"
	"github.com/Daskott/aidline/shared"
	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const CALL_ANNOUNCEMENT = "This is an automated emergency call placed by aidline. The caller has triggered an S O S and may need help."

var logg = logger.NewLogger()

type ClientWrapper struct {
	client *twilio.RestClient
	config shared.TwilioConfig
}

func NewClient(config shared.TwilioConfig) *ClientWrapper {
	client := twilio.NewRestClientWithParams(twilio.RestClientParams{
		Username: config.AccountSid,
		Password: config.AuthToken,
	})

	return &ClientWrapper{
		client: client,
		config: config,
	}
}

// SendMessage sends 'msg' as an SMS to 'to', through the messaging service
// if one is configured, else from the configured number
func (cw *ClientWrapper) SendMessage(to, msg string) error {
	params := &openapi.CreateMessageParams{}
	if cw.config.MessagingServiceSid != "" {
		params.SetMessagingServiceSid(cw.config.MessagingServiceSid)
	} else {
		params.SetFrom(cw.config.Number)
	}
	params.SetTo(to)
	params.SetBody(msg)

	resp, err := cw.client.ApiV2010.CreateMessage(params)
	if err != nil {
		return errors.Wrapf(err, "unable to send sms to %v", to)
	}

	if resp.ErrorMessage != nil {
		return fmt.Errorf("unable to send sms to %v: %v", to, *resp.ErrorMessage)
	}

	logg.Infof(colors.Blue("[twilio] sms queued for %v"), to)
	return nil
}

// Call places a voice call to 'number' that reads out CALL_ANNOUNCEMENT
func (cw *ClientWrapper) Call(number string) error {
	twiml, err := sayTwiml(CALL_ANNOUNCEMENT)
	if err != nil {
		return err
	}

	params := &openapi.CreateCallParams{}
	params.SetTo(number)
	params.SetFrom(cw.config.Number)
	params.SetTwiml(twiml)

	resp, err := cw.client.ApiV2010.CreateCall(params)
	if err != nil {
		return errors.Wrapf(err, "unable to call %v", number)
	}

	if resp.Sid != nil {
		logg.Infof(colors.Blue("[twilio] call %v placed to %v"), *resp.Sid, number)
	}
	return nil
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Say     string   `xml:"Say"`
}

func sayTwiml(text string) (string, error) {
	body, err := xml.Marshal(&twimlResponse{Say: text})
	if err != nil {
		return "", errors.Wrap(err, "unable to build twiml")
	}
	return string(body), nil
}
