package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	MB            = 1 << 20
	maxUploadSize = 50 * MB

	requestTimeout = 10 * time.Second
	uploadTimeout  = 2 * time.Minute
)

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	json.NewEncoder(rw).Encode(v)
}

// errorJSON writes failures from the media surface, which uses an "error"
// field.
func errorJSON(rw http.ResponseWriter, status int, msg string) {
	writeJSON(rw, status, map[string]string{"error": msg})
}

// messageJSON writes confirmations and failures that carry a "message"
// field.
func messageJSON(rw http.ResponseWriter, status int, msg string) {
	writeJSON(rw, status, map[string]string{"message": msg})
}
