package http

import (
	"encoding/json"
	"net/http"

	apperrors "fleetbook/pkg/errors"
)

// ErrorResponse is the failure body for every endpoint: a single
// human-readable detail message suitable for direct display.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an AppError to its HTTP status and detail body.
// Non-AppError failures surface as a generic 500.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	detail := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		detail = "Internal server error"
	}

	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{Detail: detail})
}

// WriteSuccess writes the payload as-is with HTTP 200. Endpoints of this
// API return bare objects and arrays, no envelope.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}
