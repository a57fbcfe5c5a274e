package googleservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

var (
	ErrMissingAPIKey = errors.New("gemini api key is not set")
	ErrEmptyResponse = errors.New("gemini returned no text")
)

type GeminiAPIInterface interface {
	// GenerateContent sends 'prompt' as a single user turn & returns the text of the reply
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiAPI struct {
	service *generativelanguage.Service
	model   string
}

// NewGeminiAPI returns a client for 'model' (e.g. gemini-2.0-flash). With an
// empty apiKey the client is still returned, but every request fails with
// ErrMissingAPIKey.
func NewGeminiAPI(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiAPI, error) {
	gemini := &GeminiAPI{model: model}
	if apiKey == "" {
		return gemini, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGeminiAPI: %v", err)
	}
	gemini.service = service

	return gemini, nil
}

func (gemini *GeminiAPI) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if gemini.service == nil {
		return "", ErrMissingAPIKey
	}

	request := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}

	resp, err := gemini.service.Models.GenerateContent(modelResourceName(gemini.model), request).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return responseText(resp)
}

// responseText joins the text parts of the first candidate
func responseText(resp *generativelanguage.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	text := strings.Builder{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return text.String(), nil
}

func modelResourceName(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}
