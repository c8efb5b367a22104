package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DBTxKey is the context key under which an open transaction is stored.
const DBTxKey contextKey = "db_tx"

// TxFromContext retrieves the current transaction from context, or nil if
// no transaction is open. Repositories check this before falling back to
// the tenant-scoped connection.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(DBTxKey).(pgx.Tx)
	return tx
}

// WithTx begins a transaction on the tenant-scoped connection stored in
// ctx and returns a derived context carrying the transaction. Repository
// calls made with the returned context run inside the transaction. The
// caller is responsible for Commit or Rollback on the returned tx.
func WithTx(ctx context.Context) (context.Context, pgx.Tx, error) {
	conn := ConnFromContext(ctx)
	if conn == nil {
		return ctx, nil, fmt.Errorf("no database connection in context")
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return ctx, nil, fmt.Errorf("begin transaction: %w", err)
	}

	return context.WithValue(ctx, DBTxKey, tx), tx, nil
}
