package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql used by the history store. Both
// *sql.DB and *sql.Tx satisfy it, so repositories work inside transactions.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
