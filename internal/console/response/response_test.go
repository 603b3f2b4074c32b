package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/query"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "world", decode(t, w)["hello"])
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "something went wrong")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "something went wrong", body["message"])
	assert.NotContains(t, body, "fields")
}

func TestWriteValidation(t *testing.T) {
	w := httptest.NewRecorder()

	WriteValidation(w, map[string]string{"name": "required"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]any{"name": "required"}, body["fields"])
}

func TestWriteResult_Success(t *testing.T) {
	w := httptest.NewRecorder()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	WriteResult(w, http.StatusCreated, query.Result[[]int]{Status: query.StatusSuccess, Data: []int{1, 2}, UpdatedAt: at})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []any{1.0, 2.0}, body["data"])
	assert.Equal(t, "2024-03-01T10:00:00Z", body["updatedAt"])
	assert.NotContains(t, body, "message")
}

func TestWriteResult_PendingCarriesPlaceholder(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResult(w, http.StatusOK, query.Result[[]int]{Status: query.StatusPending, Data: []int{}})

	assert.Equal(t, http.StatusAccepted, w.Code)
	body := decode(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, []any{}, body["data"])
	assert.NotContains(t, body, "updatedAt")
}

func TestWriteResult_ErrorKeepsEnvelopeMessage(t *testing.T) {
	w := httptest.NewRecorder()
	err := &camalapi.HTTPError{Status: http.StatusConflict, Message: "La placa ya existe"}

	WriteResult(w, http.StatusOK, query.Result[[]int]{Status: query.StatusError, Data: []int{}, Err: err})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "La placa ya existe", body["message"])
	assert.Equal(t, []any{}, body["data"])
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api not found", &camalapi.HTTPError{Status: http.StatusNotFound}, http.StatusNotFound},
		{"api server error", &camalapi.HTTPError{Status: http.StatusInternalServerError}, http.StatusInternalServerError},
		{"connectivity", &camalapi.ConnectivityError{Method: "GET", Path: "people", Err: errors.New("refused")}, http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}
