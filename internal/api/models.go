package api

// Request body schemas. Validation is presence only: `required` rejects an
// empty string and a zero number.

// NewUserBody is the body of POST /users and PUT /users/{id}.
type NewUserBody struct {
	Name string `json:"name" validate:"required"`
}

// NewPostBody is the body of POST /users/{id}/posts. The owner comes from
// the path, never from the body.
type NewPostBody struct {
	Text string `json:"text" validate:"required"`
}

// UpdatePostBody is the body of PUT /posts/{id}. user_id must be a JSON
// number; a quoted id such as "3" fails decoding.
type UpdatePostBody struct {
	Text   string `json:"text"    validate:"required"`
	UserID int64  `json:"user_id" validate:"required"`
}

// Client-facing messages.
const (
	MsgUserNotFound   = "Could not find a user by that id."
	MsgPostNotFound   = "Could not find a post by that id."
	MsgMissingName    = "Please provide a name for the user."
	MsgMissingText    = "Please provide text for the post."
	MsgMissingPostAll = "Please provide text and a user id."
)

// Envelope keys for success responses.
const (
	keyUser  = "user"
	keyUsers = "users"
	keyPost  = "post"
	keyPosts = "posts"
)
