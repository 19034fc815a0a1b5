package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fewfast/HomieRanking-BackEnd/core"
)

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	query := `INSERT INTO users (username, password_hash, display_image, wallpaper, bio)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	err := a.pool.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.DisplayImage, user.Wallpaper, user.Bio,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrUserExists
		}
		return err
	}
	return nil
}

func (a *Adapter) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	q := `SELECT id, username, password_hash, display_image, wallpaper, bio, created_at, updated_at
	      FROM users WHERE username = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.DisplayImage, &user.Wallpaper, &user.Bio,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) ListUsers(ctx context.Context) ([]*core.User, error) {
	q := `SELECT id, username, password_hash, display_image, wallpaper, bio, created_at, updated_at
	      FROM users ORDER BY created_at`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		user := &core.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.PasswordHash,
			&user.DisplayImage, &user.Wallpaper, &user.Bio,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (a *Adapter) UpdateProfile(ctx context.Context, username string, patch core.ProfilePatch) (*core.User, error) {
	q := `UPDATE users
	      SET display_image = COALESCE($1, display_image),
	          wallpaper     = COALESCE($2, wallpaper),
	          bio           = COALESCE($3, bio),
	          updated_at    = now()
	      WHERE username = $4
	      RETURNING id, username, password_hash, display_image, wallpaper, bio, created_at, updated_at`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, patch.DisplayImage, patch.Wallpaper, patch.Bio, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.DisplayImage, &user.Wallpaper, &user.Bio,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
