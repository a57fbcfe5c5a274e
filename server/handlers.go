package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/Daskott/aidline/addressbook"
	"github.com/Daskott/aidline/chat"
	"github.com/Daskott/aidline/location"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/auth"
	"github.com/Daskott/aidline/server/auth/key"
	"github.com/Daskott/aidline/sos"
	"github.com/gorilla/mux"
)

func health(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Add("Content-Type", "application/json")
	writeResponse(rw, ResponsePayload{Success: true}, http.StatusOK)
}

func logIn(rw http.ResponseWriter, r *http.Request) {
	data := LoginRequest{}
	if errs := decodeBody(r, &data); errs != nil {
		writeResponse(rw, ResponsePayload{Errors: errs}, http.StatusBadRequest)
		return
	}

	if !auth.CheckPasswordHash(data.Password, aidline.Config.Aidline.OwnerPasswordHash) {
		writeResponse(rw, ResponsePayload{Errors: []string{"password is invalid"}}, http.StatusUnauthorized)
		return
	}

	token, err := auth.EncodeJWT(auth.OwnerClaims(time.Now()), aidline.KeyPair)
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, map[string]string{"token": token})
}

func jwks(rw http.ResponseWriter, r *http.Request) {
	keyPairJWK, err := aidline.KeyPair.JWK()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, key.ExportJWKAsJWKS(keyPairJWK))
}

// ---------------------------------------------------------------------------------//
// Profile
// --------------------------------------------------------------------------------//

func findProfile(rw http.ResponseWriter, r *http.Request) {
	profile, err := models.LoadProfile()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, profile)
}

func updateProfile(rw http.ResponseWriter, r *http.Request) {
	profile := models.MedicalProfile{}
	if errs := decodeBody(r, &profile); errs != nil {
		writeResponse(rw, ResponsePayload{Errors: errs}, http.StatusBadRequest)
		return
	}

	err := models.SaveProfile(&profile)
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, profile)
}

// ---------------------------------------------------------------------------------//
// Contacts
// --------------------------------------------------------------------------------//

func listContacts(rw http.ResponseWriter, r *http.Request) {
	selected, err := models.LoadSelectedContacts()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	contacts := addressbook.Filter(aidline.Book.List(), r.URL.Query().Get("search"))

	views := make([]ContactView, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, ContactView{Contact: contact, Selected: models.IsSelected(selected, contact.ID)})
	}

	writeData(rw, views)
}

func listSelectedContacts(rw http.ResponseWriter, r *http.Request) {
	selected, err := models.LoadSelectedContacts()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, selected)
}

func toggleContact(rw http.ResponseWriter, r *http.Request) {
	contact, err := aidline.Book.Find(mux.Vars(r)["id"])
	if errors.Is(err, addressbook.ErrContactNotFound) {
		writeError(rw, err, http.StatusNotFound)
		return
	}

	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	selected, err := models.ToggleSelectedContact(contact)
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, selected)
}

// ---------------------------------------------------------------------------------//
// SOS
// --------------------------------------------------------------------------------//

func sosPanel(rw http.ResponseWriter, r *http.Request) {
	selected, err := models.LoadSelectedContacts()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	writeData(rw, sos.Instructions(len(selected)))
}

func triggerSOS(rw http.ResponseWriter, r *http.Request) {
	data := SOSRequest{}
	if errs := decodeBody(r, &data); errs != nil {
		writeResponse(rw, ResponsePayload{Errors: errs}, http.StatusBadRequest)
		return
	}

	if data.partialFix() {
		writeResponse(rw, ResponsePayload{Errors: []string{"latitude & longitude must be sent together"}}, http.StatusBadRequest)
		return
	}

	selected, err := models.LoadSelectedContacts()
	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	dispatcher, recorder := aidline.NewDispatcher()
	report, err := dispatcher.Dispatch(r.Context(), aidline.Locator(data.fix(), clientIP(r)), selected)

	if errors.Is(err, location.ErrPermissionDenied) {
		writeResponse(rw, ResponsePayload{Errors: []string{location.ErrPermissionDenied.Error()}}, http.StatusUnprocessableEntity)
		return
	}

	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{sos.DISPATCH_FAILED_MSG}, Data: report}, http.StatusBadGateway)
		return
	}

	response := SOSResponse{Report: report}
	if recorder != nil {
		response.Intents = recorder.URIs()
	}

	writeData(rw, response)
}

func callService(rw http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	if _, ok := sos.FindService(number); !ok {
		writeResponse(rw, ResponsePayload{Errors: []string{"unknown emergency service"}}, http.StatusNotFound)
		return
	}

	dispatcher, recorder := aidline.NewDispatcher()
	err := dispatcher.CallService(number)
	if err != nil {
		writeError(rw, err, http.StatusBadGateway)
		return
	}

	response := map[string]interface{}{"called_number": number}
	if recorder != nil {
		response["intents"] = recorder.URIs()
	}

	writeData(rw, response)
}

// ---------------------------------------------------------------------------------//
// Chat
// --------------------------------------------------------------------------------//

func chatMessages(rw http.ResponseWriter, r *http.Request) {
	writeData(rw, map[string]interface{}{
		"messages": aidline.Chat.Messages(),
		"loading":  aidline.Chat.Loading(),
	})
}

func sendChatMessage(rw http.ResponseWriter, r *http.Request) {
	data := ChatRequest{}
	if errs := decodeBody(r, &data); errs != nil {
		writeResponse(rw, ResponsePayload{Errors: errs}, http.StatusBadRequest)
		return
	}

	reply, err := aidline.Chat.Send(r.Context(), data.Text)
	if errors.Is(err, chat.ErrBusy) {
		writeError(rw, err, http.StatusConflict)
		return
	}

	if err != nil {
		writeError(rw, err, http.StatusInternalServerError)
		return
	}

	// Blank messages are ignored, so there's no reply
	writeData(rw, map[string]interface{}{
		"reply":    reply,
		"messages": aidline.Chat.Messages(),
	})
}

func resetChat(rw http.ResponseWriter, r *http.Request) {
	aidline.Chat.Reset()
	writeResponse(rw, ResponsePayload{Success: true}, http.StatusOK)
}
