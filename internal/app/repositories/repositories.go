package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. Every call
// acquires a pooled connection for one statement and releases it when the
// statement (or its Rows) is closed.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	AwardRepository   *AwardRepository
}

// NewRepositories initializes all repositories. queryTimeout bounds every
// statement; zero disables the bound.
func NewRepositories(db DBTX, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db, queryTimeout),
		AwardRepository:   NewAwardRepository(db, queryTimeout),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
