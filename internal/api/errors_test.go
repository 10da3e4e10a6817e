package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dave-vazquez/lambda-posts/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped post not found", fmt.Errorf("lookup: %w", store.ErrPostNotFound), http.StatusNotFound},
		{"store error around not found", store.NewStoreError("post", "remove", "gone", store.ErrNotFound), http.StatusNotFound},
		{"invalid entity", store.ErrInvalidEntity, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestRespondStoreErrorNeverLeaksError(t *testing.T) {
	err := store.NewStoreError("user", "get", "failed to list users",
		errors.New(`ERROR: relation "users" does not exist (SQLSTATE 42P01) at db.internal:5432`))

	w := httptest.NewRecorder()
	respondStoreError(w, httptest.NewRequest(http.MethodGet, "/api/users", nil), err,
		MsgUserNotFound, "The users information could not be retrieved.")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"success":false,"message":"The users information could not be retrieved."}`,
		w.Body.String())
}
