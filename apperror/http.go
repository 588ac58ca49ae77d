package apperror

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/user/changelog-api/logging"
)

// WriteJSON serializes `data` to JSON and writes it with the given `status`.
// Once the header is out an encoding failure can only be logged.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Avoid writing nil, which would result in a "null" response body.
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
}

// WriteError is the single translation step from an error to an HTTP response.
// Errors that are not *AppError are reported as an internal error; server-side
// failures are logged together with their underlying cause.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("internal server error", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(appErr),
		)
	}

	WriteJSON(w, r, status, appErr.ToResponse())
}
