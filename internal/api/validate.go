package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// Middleware is the shape of every validator in this file.
type Middleware = func(http.Handler) http.Handler

// ValidateID returns middleware that resolves the {id} path parameter with
// lookup and attaches the entity to the request context as a *T.
//
// An id that is not a positive base-10 integer is answered exactly like an id
// that matches nothing: 404 with notFoundMsg. A lookup returning a nil entity
// without an error is also a 404. Any other lookup failure is a 500 with
// serverMsg. In all these cases next is not called.
func ValidateID[T any](
	lookup func(ctx context.Context, id int64) (*T, error),
	notFoundMsg string,
	serverMsg string,
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := getPathID(r, "id")
			if !ok {
				shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, notFoundMsg, nil,
					shared.WithElevatedLogLevel())
				return
			}

			entity, err := lookup(r.Context(), id)
			if err != nil {
				respondStoreError(w, r, err, notFoundMsg, serverMsg, shared.WithElevatedLogLevel())
				return
			}
			if entity == nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, notFoundMsg, nil,
					shared.WithElevatedLogLevel())
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithValue(r.Context(), entity)))
		})
	}
}

// ValidateBody returns middleware that decodes the JSON body into a B,
// checks its `validate` tags and attaches it to the request context as a *B.
// A malformed body or a missing field is answered with 400 and message.
func ValidateBody[B any](message string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := new(B)
			if err := shared.DecodeAndValidate(r, body); err != nil {
				logger.FromContext(r.Context()).Debug("request body rejected",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusBadRequest, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithValue(r.Context(), body)))
		})
	}
}

// ValidateUserID resolves {id} to a *domain.User.
func ValidateUserID(users store.UserStore) Middleware {
	return ValidateID[domain.User](users.GetByID, MsgUserNotFound, "The user information could not be retrieved.")
}

// ValidatePostID resolves {id} to a *domain.Post.
func ValidatePostID(posts store.PostStore) Middleware {
	return ValidateID[domain.Post](posts.GetByID, MsgPostNotFound, "The post information could not be retrieved.")
}

// ValidateUser requires a NewUserBody with a name.
func ValidateUser(next http.Handler) http.Handler {
	return ValidateBody[NewUserBody](MsgMissingName)(next)
}

// ValidatePost requires a NewPostBody with text.
func ValidatePost(next http.Handler) http.Handler {
	return ValidateBody[NewPostBody](MsgMissingText)(next)
}

// ValidateRequestBody requires an UpdatePostBody with text and a user id.
func ValidateRequestBody(next http.Handler) http.Handler {
	return ValidateBody[UpdatePostBody](MsgMissingPostAll)(next)
}

// fromContext fetches a value a validator attached. A missing value means
// the route was wired without its validator; the request gets a 500.
func fromContext[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	v, ok := shared.Value[T](r.Context())
	if !ok {
		var zero T
		logger.FromContext(r.Context()).Error("validated value missing from request context",
			slog.String("type", fmt.Sprintf("%T", zero)),
			slog.String("path", r.URL.Path))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "The request could not be processed.")
		return zero, false
	}
	return v, true
}
