package api

import (
	"net/http"

	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// MapErrorToStatusCode maps a store error to an HTTP status code.
// Only a missing entity is a client error; everything else is a 500.
func MapErrorToStatusCode(err error) int {
	if store.IsNotFoundError(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondStoreError writes the envelope for a failed store call.
// notFoundMsg is used when the entity is missing, serverMsg otherwise.
func respondStoreError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	notFoundMsg string,
	serverMsg string,
	opts ...shared.ResponseOption,
) {
	status := MapErrorToStatusCode(err)
	message := serverMsg
	if status == http.StatusNotFound {
		message = notFoundMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
