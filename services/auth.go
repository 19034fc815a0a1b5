package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

// AuthService orchestrates signup, login, token verification and the
// ownership predicate. It is stateless per request; the only shared state is
// the credential store and the token signing key.
type AuthService struct {
	store     core.UserStorage
	passwords core.PasswordHandler
	tokens    *token.Service
	logger    zerolog.Logger
}

func NewAuthService(store core.UserStorage, passwords core.PasswordHandler, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store:     store,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// SignUp registers a new user. It returns core.ErrUserExists for a duplicate
// username whether the duplicate is caught by the pre-check or by the store's
// unique index; two concurrent signups therefore resolve to exactly one
// created record. No token is issued; the caller logs in afterwards.
func (s *AuthService) SignUp(ctx context.Context, input core.SignUpInput) (*core.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetUserByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, core.ErrUserExists
	}

	hashed, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &core.User{
		Username:     input.Username,
		PasswordHash: hashed,
		DisplayImage: input.DisplayImage,
		Wallpaper:    input.Wallpaper,
		Bio:          input.Bio,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, core.ErrUserExists) {
			// Lost the race against a concurrent signup.
			return nil, core.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// SignInResult contains the authenticated user and a fresh bearer token.
type SignInResult struct {
	User        *core.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// SignIn authenticates a username/password pair. An unknown username is
// reported as core.ErrUserNotFound, a wrong password as
// core.ErrInvalidCredentials; the two are never conflated.
func (s *AuthService) SignIn(ctx context.Context, input core.SignInInput) (*SignInResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := s.passwords.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		s.logger.Info().Str("username", user.Username).Msg("login rejected")
		return nil, core.ErrInvalidCredentials
	}

	raw, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("login successful")
	return &SignInResult{
		User:        user,
		AccessToken: raw,
	}, nil
}

// Authorize is the gate used by every protected operation: it verifies the
// bearer token and extracts its claims.
func (s *AuthService) Authorize(raw string) (*token.Claims, error) {
	if raw == "" {
		return nil, core.ErrMissingAuthHeader
	}
	return s.tokens.Verify(raw)
}

// SignOut revokes the presented token. With revocation disabled it still
// succeeds, so clients can treat logout uniformly.
func (s *AuthService) SignOut(raw string) error {
	return s.tokens.Revoke(raw)
}

// AuthorizeOwnership is the single shared ownership predicate: the claim's
// identity must equal the resource's recorded owner. Protected mutations on
// owned resources reject a mismatch with core.ErrNotOwner (403), distinct
// from a failed token check (401).
func AuthorizeOwnership(claims *token.Claims, owner string) error {
	if claims == nil || claims.Username == "" || claims.Username != owner {
		return core.ErrNotOwner
	}
	return nil
}
