package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/govalues/daxie"
)

// Error codes returned in the "error" field of error responses.
const (
	CodeBadRequest           = "bad_request"
	CodeInvalidFormat        = "invalid_format"
	CodeZeroAmount           = "zero_amount"
	CodeUnsupportedMagnitude = "unsupported_magnitude"
	CodeInternal             = "internal_error"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: CodeBadRequest, ErrorDescription: msg})
}

// writeError maps amount errors to 422 responses; anything else is an
// internal error and its message is not exposed.
func writeError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	if code == CodeInternal {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: code})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: code, ErrorDescription: err.Error()})
}

// errorCode classifies err by the daxie sentinel it wraps.
func errorCode(err error) string {
	switch {
	case errors.Is(err, daxie.ErrZeroAmount):
		return CodeZeroAmount
	case errors.Is(err, daxie.ErrUnsupportedMagnitude):
		return CodeUnsupportedMagnitude
	case errors.Is(err, daxie.ErrInvalidFormat):
		return CodeInvalidFormat
	}
	return CodeInternal
}

// outcome is the metrics label for a conversion result.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return errorCode(err)
}
