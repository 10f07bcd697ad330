// Package handler contains the JSON API handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/orderflow/internal/domain"
	"github.com/dukerupert/orderflow/internal/middleware"
)

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
// Every validation code maps to 400, including product_not_found: a
// missing product in an order request is the caller's mistake, not a
// missing API resource.
func ErrorCodeToHTTPStatus(code string) int {
	if domain.IsValidationCode(code) {
		return http.StatusBadRequest
	}

	switch code {
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ENETWORK:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorResponse writes a domain error as a JSON error response.
// Internal error details are logged, never sent to the client;
// ErrorMessage already substitutes a generic message for them.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())
	if status >= 500 {
		logger.Error("request failed", "code", code, "op", domain.ErrorOp(err), "error", err)
	} else {
		logger.Info("request rejected", "code", code, "op", domain.ErrorOp(err), "error", err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = domain.ErrorMessage(err)

	writeJSON(w, status, body)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding failures after WriteHeader cannot be reported to the
	// client; the connection is simply cut short.
	_ = json.NewEncoder(w).Encode(v)
}
