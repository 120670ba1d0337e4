package models

import "github.com/google/uuid"

// fakeUserID is the fixed identity served to every request until an
// identity provider is plugged in.
var fakeUserID = uuid.MustParse("00000000-0000-7000-8000-000000000001")

// CurrentUser describes the identity on whose behalf a request is handled.
// It is bound to the request context for the whole lifetime of the request.
type CurrentUser struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`
}

// FakeUser returns the development identity attached to every inbound request.
func FakeUser() CurrentUser {
	return CurrentUser{
		ID:       fakeUserID,
		Username: "fake_user",
	}
}

// IsZero reports whether u carries no identity.
func (u CurrentUser) IsZero() bool {
	return u.ID == uuid.Nil && u.Username == ""
}
