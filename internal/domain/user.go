package domain

import "unicode/utf8"

// MaxNameLength is the longest user name the store accepts.
const MaxNameLength = 128

// User represents someone who writes posts.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewUser creates a User with the given name. The ID is assigned by the store
// on insert. Returns an error if validation fails.
func NewUser(name string) (*User, error) {
	user := &User{Name: name}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(u.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
