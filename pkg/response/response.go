// Package response writes the JSON shapes the SOIL API uses on the wire.
//
// Success responses carry the entity (or array) directly, with no envelope.
// Failures are either {"error": msg} (cart and product endpoints) or
// {"message": msg} (review, follow, and user endpoints).
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with status 200.
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Status writes v with an explicit status code.
func Status(w http.ResponseWriter, status int, v interface{}) {
	write(w, status, v)
}

// Message writes a 200 {"message": msg} acknowledgement.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, map[string]string{"message": msg})
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"error": msg})
}

// Fail writes {"message": msg} with the given status.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"message": msg})
}

func write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
