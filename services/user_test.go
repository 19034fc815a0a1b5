package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

func newUserService(t *testing.T, usernames ...string) (*UserService, *FakeUserStorage, *FakeFollowStorage) {
	t.Helper()
	users := NewFakeUserStorage()
	follows := NewFakeFollowStorage()
	for _, username := range usernames {
		if err := users.CreateUser(context.Background(), &core.User{
			Username:     username,
			PasswordHash: "hash",
		}); err != nil {
			t.Fatalf("setup CreateUser failed: %v", err)
		}
	}
	return NewUserService(users, follows, zerolog.Nop()), users, follows
}

func claimsFor(username string) *token.Claims {
	return &token.Claims{Username: username}
}

// Requirement: only the owning user may update their profile, and only the
// profile fields are mutable.
func TestUserServiceUpdateProfile(t *testing.T) {
	bio := "quiz enthusiast"
	image := "https://cdn.example.com/alice.png"

	tests := []struct {
		name    string
		claims  *token.Claims
		target  string
		patch   core.ProfilePatch
		wantErr error
	}{
		{
			name:   "owner updates bio and image",
			claims: claimsFor("alice"),
			target: "alice",
			patch:  core.ProfilePatch{Bio: &bio, DisplayImage: &image},
		},
		{
			name:    "non-owner is forbidden",
			claims:  claimsFor("mallory"),
			target:  "alice",
			patch:   core.ProfilePatch{Bio: &bio},
			wantErr: core.ErrNotOwner,
		},
		{
			name:    "empty patch is invalid",
			claims:  claimsFor("alice"),
			target:  "alice",
			patch:   core.ProfilePatch{},
			wantErr: core.ErrEmptyUpdate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _, _ := newUserService(t, "alice", "mallory")

			updated, err := service.UpdateProfile(context.Background(), test.claims, test.target, test.patch)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("UpdateProfile() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateProfile() error = %v", err)
			}
			if updated.Bio == nil || *updated.Bio != bio {
				t.Error("bio should be updated")
			}
			if updated.Username != "alice" {
				t.Error("username must remain immutable")
			}
		})
	}
}

// Requirement: updating a nonexistent profile reports not found, not an
// internal fault.
func TestUserServiceUpdateProfileUnknownUser(t *testing.T) {
	service, _, _ := newUserService(t)
	bio := "ghost"

	_, err := service.UpdateProfile(context.Background(), claimsFor("ghost"), "ghost", core.ProfilePatch{Bio: &bio})
	if !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}

// Requirement: follow then unfollow returns the following set to its
// pre-follow state, and unfollowing a never-followed user succeeds.
func TestUserServiceFollowUnfollowRoundTrip(t *testing.T) {
	service, _, _ := newUserService(t, "alice", "bob")
	ctx := context.Background()
	alice := claimsFor("alice")

	if err := service.Follow(ctx, alice, "bob"); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	_, following, err := service.Profile(ctx, "alice")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if len(following) != 1 || following[0] != "bob" {
		t.Fatalf("following = %v, want [bob]", following)
	}

	// Following twice is an atomic set-add, not an append.
	if err := service.Follow(ctx, alice, "bob"); err != nil {
		t.Fatalf("repeat Follow failed: %v", err)
	}
	_, following, _ = service.Profile(ctx, "alice")
	if len(following) != 1 {
		t.Fatalf("following = %v, want a single entry", following)
	}

	if err := service.Unfollow(ctx, alice, "bob"); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}
	_, following, _ = service.Profile(ctx, "alice")
	if len(following) != 0 {
		t.Fatalf("following = %v, want empty", following)
	}

	// Never-followed target: unconditional removal still succeeds.
	if err := service.Unfollow(ctx, alice, "bob"); err != nil {
		t.Errorf("Unfollow of never-followed user should succeed, got %v", err)
	}
}

func TestUserServiceFollowValidation(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr error
	}{
		{name: "self-follow is rejected", target: "alice", wantErr: core.ErrSelfFollow},
		{name: "unknown target is not found", target: "ghost", wantErr: core.ErrUserNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _, _ := newUserService(t, "alice")

			err := service.Follow(context.Background(), claimsFor("alice"), test.target)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Follow() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestUserServiceProfileUnknownUser(t *testing.T) {
	service, _, _ := newUserService(t)

	_, _, err := service.Profile(context.Background(), "ghost")
	if !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("Profile() error = %v, want ErrUserNotFound", err)
	}
}
