// Package repository runs the store queries for each entity on bun.
//
// Lookups by id return sql.ErrNoRows when nothing matches. Update and
// Delete read the row and write it inside one transaction.
package repository

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// inTx runs fn in a transaction on db that commits when fn returns nil.
func inTx(ctx context.Context, db *bun.DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, fn)
}
