package services

import (
	"context"
	"sync"

	"github.com/fewfast/HomieRanking-BackEnd/core"
)

// FakeUserStorage is a test-only fake implementing core.UserStorage. It
// enforces username uniqueness the way the real store's unique index does
// and exposes error fields for behavior injection.
type FakeUserStorage struct {
	users     map[string]*core.User
	mu        sync.RWMutex
	createErr error
	getErr    error
	updateErr error
}

var _ core.UserStorage = (*FakeUserStorage)(nil)

func NewFakeUserStorage() *FakeUserStorage {
	return &FakeUserStorage{
		users: make(map[string]*core.User),
	}
}

func (f *FakeUserStorage) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[u.Username]; exists {
		return core.ErrUserExists
	}

	if u.ID == "" {
		u.ID = "user-" + u.Username
	}
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func (f *FakeUserStorage) GetUserByUsername(_ context.Context, username string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *FakeUserStorage) ListUsers(_ context.Context) ([]*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	users := make([]*core.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		users = append(users, &copied)
	}
	return users, nil
}

func (f *FakeUserStorage) UpdateProfile(_ context.Context, username string, patch core.ProfilePatch) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, core.ErrUserNotFound
	}

	if patch.DisplayImage != nil {
		u.DisplayImage = patch.DisplayImage
	}
	if patch.Wallpaper != nil {
		u.Wallpaper = patch.Wallpaper
	}
	if patch.Bio != nil {
		u.Bio = patch.Bio
	}

	copied := *u
	return &copied, nil
}

// FakeFollowStorage is a test-only fake implementing core.FollowStorage with
// set semantics matching the real follows table.
type FakeFollowStorage struct {
	follows map[string]map[string]bool // follower -> followee set
	mu      sync.RWMutex
	addErr  error
}

var _ core.FollowStorage = (*FakeFollowStorage)(nil)

func NewFakeFollowStorage() *FakeFollowStorage {
	return &FakeFollowStorage{
		follows: make(map[string]map[string]bool),
	}
}

func (f *FakeFollowStorage) AddFollow(_ context.Context, follower, followee string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.addErr != nil {
		return f.addErr
	}
	if f.follows[follower] == nil {
		f.follows[follower] = make(map[string]bool)
	}
	f.follows[follower][followee] = true
	return nil
}

func (f *FakeFollowStorage) RemoveFollow(_ context.Context, follower, followee string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.follows[follower], followee)
	return nil
}

func (f *FakeFollowStorage) ListFollowing(_ context.Context, follower string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	following := make([]string, 0, len(f.follows[follower]))
	for followee := range f.follows[follower] {
		following = append(following, followee)
	}
	return following, nil
}

// FakeQuizStorage is a test-only fake implementing core.QuizStorage.
type FakeQuizStorage struct {
	quizzes   map[string]*core.Quiz
	mu        sync.RWMutex
	createErr error
}

var _ core.QuizStorage = (*FakeQuizStorage)(nil)

func NewFakeQuizStorage() *FakeQuizStorage {
	return &FakeQuizStorage{
		quizzes: make(map[string]*core.Quiz),
	}
}

func (f *FakeQuizStorage) CreateQuiz(_ context.Context, q *core.Quiz) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	copied := *q
	f.quizzes[q.ID] = &copied
	return nil
}

func (f *FakeQuizStorage) GetQuizByID(_ context.Context, id string) (*core.Quiz, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	q, ok := f.quizzes[id]
	if !ok {
		return nil, core.ErrQuizNotFound
	}
	copied := *q
	return &copied, nil
}

func (f *FakeQuizStorage) ListQuizzes(_ context.Context) ([]*core.Quiz, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	quizzes := make([]*core.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		copied := *q
		quizzes = append(quizzes, &copied)
	}
	return quizzes, nil
}

func (f *FakeQuizStorage) UpdateQuiz(_ context.Context, id string, patch core.QuizPatch) (*core.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.quizzes[id]
	if !ok {
		return nil, core.ErrQuizNotFound
	}

	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.Questions != nil {
		q.Questions = patch.Questions
	}
	if patch.Image != nil {
		q.Image = patch.Image
	}

	copied := *q
	return &copied, nil
}

func (f *FakeQuizStorage) DeleteQuiz(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.quizzes[id]; !ok {
		return core.ErrQuizNotFound
	}
	delete(f.quizzes, id)
	return nil
}
