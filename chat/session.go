// Package chat relays messages from the user to the health assistant and
// keeps the transcript for as long as the session lives. Nothing is persisted.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/googleservice"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/logger"
	"github.com/google/uuid"
)

const FALLBACK_REPLY = "Sorry, I encountered an error. Please try again."

var (
	logg = logger.NewLogger()

	ErrBusy = errors.New("a message is already being answered")
)

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfileFinder returns the user's profile, or nil if they have none
type ProfileFinder func() (*models.MedicalProfile, error)

type Session struct {
	gemini      googleservice.GeminiAPIInterface
	findProfile ProfileFinder
	now         func() time.Time

	mu       sync.Mutex
	messages []Message
	loading  bool
}

func NewSession(gemini googleservice.GeminiAPIInterface, findProfile ProfileFinder) *Session {
	return &Session{
		gemini:      gemini,
		findProfile: findProfile,
		now:         time.Now,
	}
}

// Send adds 'text' to the transcript, asks the assistant & adds its reply.
// Blank text is ignored. Only one message can be in flight at a time, a
// second Send while waiting for a reply returns ErrBusy.
func (s *Session) Send(ctx context.Context, text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.loading = true
	s.messages = append(s.messages, s.newMessage(text, true))
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	reply, err := s.ask(ctx, text)
	if err != nil {
		logg.Errorf(colors.Red("[chat] ")+"Error: %v", err)
		reply = FALLBACK_REPLY
	}

	botMessage := s.newMessage(reply, false)

	s.mu.Lock()
	s.messages = append(s.messages, botMessage)
	s.mu.Unlock()

	return &botMessage, nil
}

// Loading reports whether a message is waiting for a reply
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.messages...)
}

// Reset drops the transcript
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *Session) ask(ctx context.Context, text string) (string, error) {
	var profile *models.MedicalProfile
	var err error

	if s.findProfile != nil {
		profile, err = s.findProfile()
		if err != nil {
			logg.Warnf(colors.Yellow("[chat] ")+"Error loading profile: %v", err)
			profile = nil
		}
	}

	prompt, err := Prompt(profile, text)
	if err != nil {
		return "", err
	}

	return s.gemini.GenerateContent(ctx, prompt)
}

func (s *Session) newMessage(text string, isUser bool) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: s.now().UTC(),
	}
}

// Prompt is the text sent to the assistant: the profile as indented JSON,
// when there is one, followed by the user's message.
func Prompt(profile *models.MedicalProfile, text string) (string, error) {
	if profile == nil {
		return "User Message: " + text, nil
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", err
	}

	return "Here is the user's profile information:\n" + string(profileJSON) + "\n\nUser Message: " + text, nil
}
