package server

import (
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/auth"
	"github.com/Daskott/aidline/sos"
)

type RequestContextKey string

type DecodedJWT struct {
	Claims   *auth.AidlineTokenClaims
	ErrorMsg string
}

type ResponsePayload struct {
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type ChatRequest struct {
	Text string `json:"text"`
}

// SOSRequest carries the fix reported by the client. Both coordinates are
// optional as a pair, without them the server falls back to GeoIP.
type SOSRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Accuracy  float64  `json:"accuracy" validate:"min=0"`
}

func (req SOSRequest) partialFix() bool {
	return (req.Latitude == nil) != (req.Longitude == nil)
}

func (req SOSRequest) fix() *location.Fix {
	if req.Latitude == nil || req.Longitude == nil {
		return nil
	}

	return &location.Fix{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
	}
}

type SOSResponse struct {
	*sos.Report
	Intents []string `json:"intents,omitempty"`
}

type ContactView struct {
	models.Contact
	Selected bool `json:"selected"`
}
