package core

import "encoding/json"

// SignUpInput contains the data needed to register a new user.
// Profile fields are optional at signup.
type SignUpInput struct {
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	DisplayImage *string `json:"display_image,omitempty"`
	Wallpaper    *string `json:"wallpaper,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

func (in SignUpInput) Validate() error {
	if in.Username == "" {
		return ErrUsernameRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// SignInInput contains the credentials for authentication.
type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in SignInInput) Validate() error {
	if in.Username == "" {
		return ErrUsernameRequired
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ProfilePatch is a partial update of the owner-mutable profile fields.
// Nil means "leave unchanged".
type ProfilePatch struct {
	DisplayImage *string `json:"display_image,omitempty"`
	Wallpaper    *string `json:"wallpaper,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

func (p ProfilePatch) Empty() bool {
	return p.DisplayImage == nil && p.Wallpaper == nil && p.Bio == nil
}

// QuizInput contains the data needed to upload a new quiz.
// UploadedBy is never taken from the body; the service stamps the caller.
type QuizInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   json.RawMessage `json:"questions"`
	Image       *string         `json:"image,omitempty"`
}

func (in QuizInput) Validate() error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

// QuizPatch is a partial update of an existing quiz. Nil means "leave
// unchanged".
type QuizPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Questions   json.RawMessage `json:"questions,omitempty"`
	Image       *string         `json:"image,omitempty"`
}

func (p QuizPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Questions == nil && p.Image == nil
}
