// Package app builds the collaborators shared by the CLI & the HTTP server
// from a loaded config.
package app

import (
	"context"
	"time"

	"github.com/Daskott/aidline/addressbook"
	"github.com/Daskott/aidline/chat"
	"github.com/Daskott/aidline/googleservice"
	"github.com/Daskott/aidline/intent"
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/auth/key"
	"github.com/Daskott/aidline/server/twilio"
	"github.com/Daskott/aidline/shared"
	"github.com/Daskott/aidline/sos"
	"github.com/pkg/errors"
)

const DISPATCHER_TWILIO = "twilio"

type App struct {
	Config  shared.Config
	Book    *addressbook.Book
	GeoIP   *location.GeoIP
	Gemini  googleservice.GeminiAPIInterface
	Chat    *chat.Session
	KeyPair *key.KeyPair

	// Twilio is nil unless texts & calls go through twilio, in which case
	// no intents are produced
	Twilio *twilio.ClientWrapper
}

// New wires every collaborator described by 'config'. The db is expected
// to be open already.
func New(ctx context.Context, config shared.Config) (*App, error) {
	book, err := addressbook.Load(config.AddressBook.Path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load address book")
	}

	keyPair, err := key.NewKeyPair([]byte(config.Aidline.PrivateKeyPem))
	if err != nil {
		return nil, err
	}

	gemini, err := googleservice.NewGeminiAPI(ctx, config.Gemini.APIKey, config.Gemini.Model)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:  config,
		Book:    book,
		Gemini:  gemini,
		Chat:    chat.NewSession(gemini, models.FindProfile),
		KeyPair: keyPair,
	}

	if config.Location.GeoIPDbPath != "" {
		a.GeoIP, err = location.NewGeoIP(config.Location.GeoIPDbPath)
		if err != nil {
			return nil, err
		}
	}

	if config.SOS.Dispatcher == DISPATCHER_TWILIO {
		a.Twilio = twilio.NewClient(config.Twilio)
	}

	return a, nil
}

// NewDispatcher returns a dispatcher for one SOS. When intents are used, the
// returned recorder holds the sms: & tel: URIs it produced, otherwise it's nil.
func (a *App) NewDispatcher() (*sos.Dispatcher, *intent.Recorder) {
	delay := time.Duration(a.Config.SOS.MessageDelayMs) * time.Millisecond

	if a.Twilio != nil {
		return sos.NewDispatcher(a.Twilio, a.Twilio, a.Config.SOS.EmergencyNumber, a.Config.SOS.Platform, delay), nil
	}

	recorder := &intent.Recorder{}
	launcher := intent.NewLauncher(a.Config.SOS.Platform, recorder)
	return sos.NewDispatcher(launcher, launcher, a.Config.SOS.EmergencyNumber, a.Config.SOS.Platform, delay), recorder
}

// Locator prefers a fix reported by the client & falls back to a GeoIP
// lookup of 'clientIP' when a GeoIP db is configured
func (a *App) Locator(fix *location.Fix, clientIP string) location.Locator {
	chain := location.Chain{}

	if fix != nil {
		chain = append(chain, location.NewStatic(*fix))
	}

	if a.GeoIP != nil && clientIP != "" {
		chain = append(chain, a.GeoIP.ForIP(clientIP))
	}

	return chain
}

func (a *App) Close() error {
	if a.GeoIP != nil {
		return a.GeoIP.Close()
	}
	return nil
}
