// Package pgx implements the core storage ports on PostgreSQL.
package pgx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fewfast/HomieRanking-BackEnd/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

// unique_violation, https://www.postgresql.org/docs/current/errcodes-appendix.html
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-index violation. The
// signup path relies on this to turn a lost insert race into ErrUserExists.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
