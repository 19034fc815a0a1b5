package core

import "time"

// User represents an identity record in the credential store.
//
// Username is the unique key and is immutable after signup. PasswordHash is
// never serialized; login responses carry the same struct and rely on the
// json tags to keep the digest out of the body.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayImage *string   `json:"display_image,omitempty"`
	Wallpaper    *string   `json:"wallpaper,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
