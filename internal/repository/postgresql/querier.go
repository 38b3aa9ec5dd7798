package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx stores a transaction in the context so repository calls made inside
// it run against the transaction instead of the pool.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns either the ambient transaction or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
