package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Daskott/aidline/server/auth"
	"github.com/Daskott/aidline/server/work"
	"github.com/go-playground/validator"
)

var validate = validator.New()

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func writeResponse(rw http.ResponseWriter, payLoad ResponsePayload, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		logg.Error(payLoad.Errors)
	} else if statusCode >= http.StatusBadRequest {
		logg.Info(payLoad.Errors)
	}

	if payLoad.Errors == nil {
		payLoad.Errors = []string{}
	}

	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(payLoad)
}

func writeData(rw http.ResponseWriter, data interface{}) {
	writeResponse(rw, ResponsePayload{Success: true, Data: data}, http.StatusOK)
}

func writeError(rw http.ResponseWriter, err error, statusCode int) {
	writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusCode)
}

// decodeBody decodes the request body into 'data' & validates it. An empty
// body leaves 'data' untouched.
func decodeBody(r *http.Request, data interface{}) []string {
	err := json.NewDecoder(r.Body).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return []string{err.Error()}
	}

	errs := validate.Struct(data)
	if errs != nil {
		return strings.Split(errs.Error(), "\n")
	}

	return nil
}

// clientIP returns the address the request came from, preferring the first
// hop in X-Forwarded-For when behind a proxy
func clientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ---------------------------------------------------------------------------------//
// Middleware Helper functions
// --------------------------------------------------------------------------------//

func decodeAndVerifyAuthHeader(authHeaderValue string) DecodedJWT {
	authHeaderList := strings.Split(authHeaderValue, "Bearer ")
	if len(authHeaderList) < 2 {
		return DecodedJWT{ErrorMsg: "no token provided"}
	}

	tokenClaims, err := auth.DecodeJWT(authHeaderList[1], aidline.KeyPair)
	if err != nil {
		return DecodedJWT{ErrorMsg: "invalid token provided"}
	}

	if tokenClaims.Subject != auth.OWNER_SUBJECT {
		return DecodedJWT{ErrorMsg: "invalid token provided"}
	}

	return DecodedJWT{Claims: tokenClaims}
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Aidline server is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(workerPool *work.WorkerPoolAdapter, server *http.Server) {
	// Stop all scheduled jobs
	workerPool.Stop()

	if storageConf.EnableSqliteBackupAndSync {
		if err := backupSqliteDb(nil); err != nil {
			logg.Error(err)
		}
	}

	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Aidline server shutdown failed:%+s", err)
	}

	logg.Infof("Aidline server stopped properly")
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
