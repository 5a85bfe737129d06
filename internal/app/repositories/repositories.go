package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows; entity repositories
// alias it behind entity-specific names.
var ErrNotFound = errors.New("record not found")

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories use.
// Binding a repository to a pgx.Tx lets the checkout path run every
// statement inside one database transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all repository instances
type Repositories struct {
	ItemRepository        *ItemRepository
	VendorRepository      *VendorRepository
	UserRepository        *UserRepository
	TransactionRepository *TransactionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ItemRepository:        NewItemRepository(db),
		VendorRepository:      NewVendorRepository(db),
		UserRepository:        NewUserRepository(db),
		TransactionRepository: NewTransactionRepository(db),
	}
}
