package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

// UserService covers profile reads, owner-gated profile updates and the
// follow/unfollow social graph.
type UserService struct {
	store   core.UserStorage
	follows core.FollowStorage
	logger  zerolog.Logger
}

func NewUserService(store core.UserStorage, follows core.FollowStorage, logger zerolog.Logger) *UserService {
	return &UserService{
		store:   store,
		follows: follows,
		logger:  logger.With().Str("service", "user").Logger(),
	}
}

// Profile returns the public projection of a user together with the
// usernames they follow.
func (s *UserService) Profile(ctx context.Context, username string) (*core.User, []string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, nil, core.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	following, err := s.Following(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	return user, following, nil
}

// Following lists the usernames the given user follows.
func (s *UserService) Following(ctx context.Context, username string) ([]string, error) {
	following, err := s.follows.ListFollowing(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return following, nil
}

func (s *UserService) List(ctx context.Context) ([]*core.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies a partial update to the owner-mutable profile
// fields. Only the owning user may mutate their profile; the username itself
// is immutable and not part of the patch.
func (s *UserService) UpdateProfile(ctx context.Context, claims *token.Claims, username string, patch core.ProfilePatch) (*core.User, error) {
	if err := AuthorizeOwnership(claims, username); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, core.ErrEmptyUpdate
	}

	user, err := s.store.UpdateProfile(ctx, username, patch)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("profile updated")
	return user, nil
}

// Follow adds target to the caller's following set. The add is atomic at the
// store, so repeating it (or racing it) never duplicates an entry.
func (s *UserService) Follow(ctx context.Context, claims *token.Claims, target string) error {
	if claims.Username == target {
		return core.ErrSelfFollow
	}

	if _, err := s.store.GetUserByUsername(ctx, target); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return core.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.follows.AddFollow(ctx, claims.Username, target); err != nil {
		return fmt.Errorf("failed to add follow: %w", err)
	}

	s.logger.Info().Str("follower", claims.Username).Str("followee", target).Msg("follow added")
	return nil
}

// Unfollow removes target from the caller's following set. Removing a user
// that was never followed is a successful no-op.
func (s *UserService) Unfollow(ctx context.Context, claims *token.Claims, target string) error {
	if _, err := s.store.GetUserByUsername(ctx, target); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return core.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.follows.RemoveFollow(ctx, claims.Username, target); err != nil {
		return fmt.Errorf("failed to remove follow: %w", err)
	}

	s.logger.Info().Str("follower", claims.Username).Str("followee", target).Msg("follow removed")
	return nil
}
