package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"techevents/internal/schema"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []schema.FieldViolation `json:"details,omitempty"`
}

// SuccessResponse is returned by operations that have no resource to echo back.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteValidationError writes a 400 with message and, when err carries field
// violations, the list of them under "details".
func WriteValidationError(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{Error: message}
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		resp.Details = ve.Violations
	}
	WriteJSON(w, http.StatusBadRequest, resp)
}

// WriteSuccess writes 200 {"success": true}.
func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
