package pgx

import "context"

// AddFollow is an atomic set-add: the composite primary key plus
// ON CONFLICT DO NOTHING make repeats and races harmless.
func (a *Adapter) AddFollow(ctx context.Context, follower, followee string) error {
	q := `INSERT INTO follows (follower, followee) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := a.pool.Exec(ctx, q, follower, followee)
	return err
}

// RemoveFollow is an unconditional set-remove; deleting a pair that was
// never followed succeeds.
func (a *Adapter) RemoveFollow(ctx context.Context, follower, followee string) error {
	q := `DELETE FROM follows WHERE follower = $1 AND followee = $2`
	_, err := a.pool.Exec(ctx, q, follower, followee)
	return err
}

func (a *Adapter) ListFollowing(ctx context.Context, follower string) ([]string, error) {
	q := `SELECT followee FROM follows WHERE follower = $1 ORDER BY created_at`

	rows, err := a.pool.Query(ctx, q, follower)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var following []string
	for rows.Next() {
		var followee string
		if err := rows.Scan(&followee); err != nil {
			return nil, err
		}
		following = append(following, followee)
	}
	return following, rows.Err()
}
