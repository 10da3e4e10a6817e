package domain

// Post is a piece of text written by a user.
type Post struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	UserID int64  `json:"user_id"`
}

// NewPost creates a Post owned by the given user.
// Returns an error if validation fails.
func NewPost(text string, userID int64) (*Post, error) {
	post := &Post{
		Text:   text,
		UserID: userID,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.Text == "" {
		return ErrEmptyText
	}
	if p.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}
