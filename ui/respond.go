package ui

import (
	"net/http"

	"statviz/internal/errors"
)

// statusForError maps application error codes to HTTP statuses. Input
// problems are the client's fault; unsatisfiable or degenerate numeric
// states are valid requests the computation cannot honor.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeConfigInvalid:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeInsufficientData, errors.CodeDegenerateClass,
		errors.CodeUnsatisfiable, errors.CodeSingularSystem:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope for both servers.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorBody(err error) errorBody {
	return errorBody{Code: errors.GetCode(err), Message: err.Error()}
}
