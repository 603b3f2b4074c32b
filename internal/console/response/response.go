package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/query"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the body of every failed console request. Message is
// shown to the operator as is.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: query.StatusError.String(), Message: message})
}

// WriteValidation reports per-field input problems.
func WriteValidation(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Status:  query.StatusError.String(),
		Message: "invalid input",
		Fields:  fields,
	})
}

// Result is the JSON view of a query result. Data is always present.
type Result[T any] struct {
	Status    query.Status `json:"status"`
	Data      T            `json:"data"`
	Message   string       `json:"message,omitempty"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}

// WriteResult writes res with okStatus when it succeeded, 202 while it is
// still pending, and an error status derived from res.Err otherwise.
func WriteResult[T any](w http.ResponseWriter, okStatus int, res query.Result[T]) {
	body := Result[T]{Status: res.Status, Data: res.Data}
	if !res.UpdatedAt.IsZero() {
		body.UpdatedAt = &res.UpdatedAt
	}

	switch res.Status {
	case query.StatusSuccess:
		WriteJSON(w, okStatus, body)
	case query.StatusPending:
		WriteJSON(w, http.StatusAccepted, body)
	default:
		body.Message = res.Message()
		WriteJSON(w, ErrorStatus(res.Err), body)
	}
}

// ErrorStatus maps an API call failure to the console response status.
func ErrorStatus(err error) int {
	var httpErr *camalapi.HTTPError
	var connErr *camalapi.ConnectivityError

	switch {
	case errors.As(err, &httpErr):
		if httpErr.Status >= 400 {
			return httpErr.Status
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &connErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
