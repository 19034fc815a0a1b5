package core

import "context"

// Storage ports. The pgx adapter implements all of them; the service layer
// only ever sees these interfaces.

// UserStorage defines credential-store operations keyed by username.
//
// CreateUser must surface a storage-level uniqueness violation on username
// as ErrUserExists. The service performs an existence pre-check, but the
// unique index is the authoritative guard against concurrent signups.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateProfile(ctx context.Context, username string, patch ProfilePatch) (*User, error)
}

// FollowStorage defines the social-graph operations.
//
// AddFollow and RemoveFollow are atomic set-add / set-remove at the store
// layer; callers never read-modify-write the following set.
type FollowStorage interface {
	AddFollow(ctx context.Context, follower, followee string) error
	RemoveFollow(ctx context.Context, follower, followee string) error
	ListFollowing(ctx context.Context, follower string) ([]string, error)
}

// QuizStorage defines content-store operations for quiz records.
type QuizStorage interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	UpdateQuiz(ctx context.Context, id string, patch QuizPatch) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
}

type Storage interface {
	UserStorage
	FollowStorage
	QuizStorage
}
