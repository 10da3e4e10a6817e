package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Frodo Baggins")
	require.NoError(t, err)
	assert.Equal(t, "Frodo Baggins", user.Name)
	assert.Zero(t, user.ID, "ID is assigned by the store")

	_, err = NewUser("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{"valid", User{Name: "Samwise Gamgee"}, nil},
		{"whitespace counts as present", User{Name: " "}, nil},
		{"empty name", User{}, ErrEmptyName},
		{"max length", User{Name: strings.Repeat("a", MaxNameLength)}, nil},
		{"too long", User{Name: strings.Repeat("a", MaxNameLength+1)}, ErrNameTooLong},
		{"multibyte at max length", User{Name: strings.Repeat("é", MaxNameLength)}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, errors.Is(err, ErrValidation), "should wrap ErrValidation")
		})
	}
}
