package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the standard error envelope for all API errors.
// Message carries human-readable context alongside the error itself;
// the dashboard surfaces both.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JSON writes a JSON response with the given status code. The data is
// serialized and Content-Type is set automatically. If encoding fails,
// the error is logged; headers are already committed at that point.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[httputil] JSON encode error: %v", err)
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error writes a JSON error response with a context message.
func Error(w http.ResponseWriter, status int, err error, message string) {
	JSON(w, status, ErrorResponse{Error: err.Error(), Message: message})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, err error, message string) {
	Error(w, http.StatusBadRequest, err, message)
}

// InternalError writes a 500 error. The error message is embedded in the
// body: this API serves an internal dashboard, and the original contract
// returns the failure reason to the caller.
func InternalError(w http.ResponseWriter, err error, message string) {
	log.Printf("[httputil] internal error: %v", err)
	Error(w, http.StatusInternalServerError, err, message)
}

// Decode reads JSON from the request body into dst.
// Returns false and writes a 400 response if parsing fails.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, err, "invalid JSON body")
		return false
	}
	return true
}
