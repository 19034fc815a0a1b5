package core

import "errors"

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required")     // 400
	ErrPasswordRequired = errors.New("password is required")     // 400
	ErrTitleRequired    = errors.New("quiz title is required")   // 400
	ErrSelfFollow       = errors.New("cannot follow yourself")   // 400
	ErrEmptyUpdate      = errors.New("no updatable fields given") // 400
)

// Authentication errors
var (
	ErrUserExists         = errors.New("username already exists")    // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")             // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid password")           // 401 Unauthorized
	ErrMissingAuthHeader  = errors.New("missing authorization header") // 401
)

// Authorization errors
var (
	ErrNotOwner = errors.New("caller does not own this resource") // 403 Forbidden
)

// Content errors
var (
	ErrQuizNotFound = errors.New("quiz not found") // 404
)
