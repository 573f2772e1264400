// internal/httputil/json.go
package httputil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// jsonLogger is a package-level logger for encoding errors. Use SetJSONLogger to configure.
var jsonLogger *zap.Logger

// SetJSONLogger configures the logger used for JSON encoding errors.
// This should be called once during application startup.
func SetJSONLogger(logger *zap.Logger) {
	jsonLogger = logger
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, the error is logged (if a logger is configured) because
// headers and status have already been sent and we can't send another response.
//
// Invalid status codes (outside 100-599) are clamped to 500 Internal Server Error.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if status < 100 || status > 599 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Can't send another response after headers are written.
		if jsonLogger != nil {
			jsonLogger.Error("json encoding failed after headers sent", zap.Error(err))
		}
	}
}

// JSONError writes a structured JSON error with an error code and message.
func JSONError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
