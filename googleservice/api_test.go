package googleservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
)

func TestGenerateContent(t *testing.T) {
	var requestPath string
	var requestBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requestPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&requestBody)

		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Drink "},{"text":"water."}]}}]}`))
	}))
	defer srv.Close()

	gemini, err := NewGeminiAPI(context.Background(), "test-key", "gemini-2.0-flash",
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	assert.Nil(t, err)

	reply, err := gemini.GenerateContent(context.Background(), "User Message: I feel dizzy")
	assert.Nil(t, err)
	assert.Equal(t, "Drink water.", reply)

	assert.True(t, strings.HasSuffix(requestPath, "models/gemini-2.0-flash:generateContent"), requestPath)
	contents := requestBody["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	assert.Equal(t, "User Message: I feel dizzy", parts[0].(map[string]interface{})["text"])
}

func TestGenerateContentErrors(t *testing.T) {
	gemini, err := NewGeminiAPI(context.Background(), "", "gemini-2.0-flash")
	assert.Nil(t, err)

	_, err = gemini.GenerateContent(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	gemini, err = NewGeminiAPI(context.Background(), "test-key", "models/gemini-2.0-flash",
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	assert.Nil(t, err)

	_, err = gemini.GenerateContent(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestModelResourceName(t *testing.T) {
	assert.Equal(t, "models/gemini-2.0-flash", modelResourceName("gemini-2.0-flash"))
	assert.Equal(t, "models/gemini-pro", modelResourceName("models/gemini-pro"))
}
